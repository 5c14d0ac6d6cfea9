package scheduler

import "time"

// Weekday indices used to locate the Fri/Sat/Sun weekend window (spec.md §6).
const (
	WeekdayMon = 0
	WeekdayTue = 1
	WeekdayWed = 2
	WeekdayThu = 3
	WeekdayFri = 4
	WeekdaySat = 5
	WeekdaySun = 6
)

// Configuration defaults, per spec.md §6. Every value here is overridable at
// construction through the matching Options field; these constants are only
// what DefaultOptions (and normalize's zero-value fallback) fill in.
const (
	DefaultPeriodsPerHour         = 2
	DefaultShiftStartInterval     = 1
	DefaultShiftInPeriods         = 16
	DefaultMinShiftPeriods        = 8
	DefaultMaxShiftPeriods        = 16
	DefaultWeeklyMaximumShifts    = 5
	DefaultMaxConsecutiveWorkdays = 7
	DefaultOptAccuracy            = 0.15
	DefaultSolveTimeLimit         = 30 * time.Second
	studentMinShiftHours          = 2 // IS_IN_SCHOOL lowers MIN_SHIFT to 2 hours worth of periods.
)

// Weights holds the objective's four term weights (spec.md §4.4). They must
// sum to 1.0; an invalid set falls back to DefaultWeights with a logged
// warning (spec.md §7.1).
type Weights struct {
	Preference      float64
	DayPairsOff     float64
	WeekendsOff     float64
	ExcessWorkforce float64
}

// DefaultWeights splits the objective evenly across its four terms.
func DefaultWeights() Weights {
	return Weights{
		Preference:      0.25,
		DayPairsOff:     0.25,
		WeekendsOff:     0.25,
		ExcessWorkforce: 0.25,
	}
}

// Sum returns the sum of the four weights.
func (w Weights) Sum() float64 {
	return w.Preference + w.DayPairsOff + w.WeekendsOff + w.ExcessWorkforce
}

// Valid reports whether the weights sum to 1.0 within a small tolerance.
func (w Weights) Valid() bool {
	const tolerance = 1e-6
	sum := w.Sum()
	return sum > 1-tolerance && sum < 1+tolerance
}

// Options configures one Scheduler construction (spec.md §6). Every
// scheduling-specific constant spec.md §6 marks "must be overridable at
// construction" has a field here; a zero value falls back to the matching
// Default* constant in normalize.
type Options struct {
	// Weights are the objective's term weights; zero-value falls back to
	// DefaultWeights if invalid.
	Weights Weights

	// StartDay is the weekday index (WeekdayMon..WeekdaySun) day 0 of the
	// schedule falls on.
	StartDay int

	// ShiftStartInterval is the stride, in periods, between candidate shift
	// start times (spec.md §4.2).
	ShiftStartInterval int

	// PeriodsPerHour is the number of periods in one hour (spec.md §3); a
	// period's length is 1/PeriodsPerHour hours.
	PeriodsPerHour int

	// MinShiftPeriods and MaxShiftPeriods bound candidate shift length in
	// periods (spec.md §4.2); IS_IN_SCHOOL employees use a lower minimum
	// regardless of this value (see minShiftFor).
	MinShiftPeriods int
	MaxShiftPeriods int

	// WeeklyMaximumShifts is the fallback weekly shift cap (C6) used when an
	// employee's own MaxShifts is unset.
	WeeklyMaximumShifts int

	// MaxConsecutiveWorkdays bounds the longest run of worked days (C7).
	MaxConsecutiveWorkdays int

	// Accuracy is the solver's relative optimality gap (spec.md §4.6).
	Accuracy float64

	// TimeLimit bounds the solver's wall-clock budget.
	TimeLimit time.Duration

	// Seed seeds the deterministic random stream used to pick the weekly
	// paired-day-off reward index (spec.md §4.4, §9).
	Seed int64

	// Debug enables verbose construction/solve logging.
	Debug bool
}

// DefaultOptions returns an Options populated with spec.md §6's defaults.
func DefaultOptions() Options {
	return Options{
		Weights:                DefaultWeights(),
		StartDay:               WeekdayMon,
		ShiftStartInterval:     DefaultShiftStartInterval,
		PeriodsPerHour:         DefaultPeriodsPerHour,
		MinShiftPeriods:        DefaultMinShiftPeriods,
		MaxShiftPeriods:        DefaultMaxShiftPeriods,
		WeeklyMaximumShifts:    DefaultWeeklyMaximumShifts,
		MaxConsecutiveWorkdays: DefaultMaxConsecutiveWorkdays,
		Accuracy:               DefaultOptAccuracy,
		TimeLimit:              DefaultSolveTimeLimit,
		Seed:                   1,
	}
}

// normalize fills in zero-valued fields with defaults and reports whether the
// supplied weights had to be replaced, so the caller can log the fallback
// (spec.md §7.1, §9).
func (o Options) normalize() (Options, bool) {
	fellBack := false
	if o.ShiftStartInterval <= 0 {
		o.ShiftStartInterval = DefaultShiftStartInterval
	}
	if o.PeriodsPerHour <= 0 {
		o.PeriodsPerHour = DefaultPeriodsPerHour
	}
	if o.MinShiftPeriods <= 0 {
		o.MinShiftPeriods = DefaultMinShiftPeriods
	}
	if o.MaxShiftPeriods <= 0 {
		o.MaxShiftPeriods = DefaultMaxShiftPeriods
	}
	if o.WeeklyMaximumShifts <= 0 {
		o.WeeklyMaximumShifts = DefaultWeeklyMaximumShifts
	}
	if o.MaxConsecutiveWorkdays <= 0 {
		o.MaxConsecutiveWorkdays = DefaultMaxConsecutiveWorkdays
	}
	if o.Accuracy <= 0 {
		o.Accuracy = DefaultOptAccuracy
	}
	if o.TimeLimit <= 0 {
		o.TimeLimit = DefaultSolveTimeLimit
	}
	if !o.Weights.Valid() {
		o.Weights = DefaultWeights()
		fellBack = true
	}
	return o, fellBack
}

package scheduler

import "github.com/freedakipad/shiftsolve/pkg/model"

// minShiftFor returns MIN_SHIFT_IN_PERIODS, lowered for students per
// spec.md §3: IS_IN_SCHOOL employees may take shifts as short as
// 2*PERIODS_PER_HOUR periods.
func minShiftFor(e *model.Employee, opts Options) int {
	if e.Capability.Has(model.CapabilityInSchool) {
		return studentMinShiftHours * opts.PeriodsPerHour
	}
	return opts.MinShiftPeriods
}

// enumerateShifts populates e.Shifts with every admissible contiguous window
// for each day of demand, per spec.md §4.2. opts supplies MIN_SHIFT_IN_PERIODS,
// MAX_SHIFT_IN_PERIODS, and SHIFT_START_INTERVAL (the stride).
func enumerateShifts(e *model.Employee, demand model.DemandMatrix, opts Options) {
	minShift := minShiftFor(e, opts)
	days := demand.Days()
	e.Shifts = make([][]model.Shift, days)

	for d := 0; d < days; d++ {
		periodsOnDay := demand.PeriodsOn(d)
		var windows []model.Shift
		for length := minShift; length <= opts.MaxShiftPeriods; length++ {
			for start := 0; start+length <= periodsOnDay; start += opts.ShiftStartInterval {
				if admissible(e, d, start, length) {
					windows = append(windows, model.Shift{Start: start, End: start + length})
				}
			}
		}
		e.Shifts[d] = windows
	}
}

// admissible reports whether no period in [start, start+length) is marked
// UNAVAILABLE for employee e on day d.
func admissible(e *model.Employee, d, start, length int) bool {
	for p := start; p < start+length; p++ {
		if e.PreferenceAt(d, p) == model.PreferenceUnavailable {
			return false
		}
	}
	return true
}

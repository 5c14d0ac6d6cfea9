package scheduler

import (
	"github.com/freedakipad/shiftsolve/pkg/apperr"
	"github.com/freedakipad/shiftsolve/pkg/mipsolve"
	"github.com/freedakipad/shiftsolve/pkg/model"
)

// buildConstraints emits every coverage, capability, labor-law, and
// fairness-linearization constraint in spec.md §4.5 (C1-C11). opts supplies
// the overridable WEEKLY_MAXIMUM_SHIFTS and MAX_CONSECUTIVE_WORKDAYS bounds.
func buildConstraints(problem mipsolve.Problem, employees []*model.Employee, vars *Variables, demand model.DemandMatrix, opts Options) error {
	nDays := demand.Days()

	coverage(problem, employees, vars, demand)
	if err := openingClosing(problem, employees, vars, demand); err != nil {
		return err
	}
	oneShiftOrOff(problem, employees, vars, nDays)
	weeklyHours(problem, employees, vars, nDays)
	weeklyShiftCount(problem, employees, vars, nDays, opts.WeeklyMaximumShifts)
	consecutiveDayCap(problem, employees, vars, nDays, opts.MaxConsecutiveWorkdays)
	pairedDaysOffLinearization(problem, employees, vars, nDays)
	weekendLinearization(problem, employees, vars)
	requiredWeekends(problem, employees, vars)

	return nil
}

// coverage emits C1: for every (day, period), assigned shifts plus slack
// equal demand exactly. A zero-demand period still gets the constraint so y
// is tied to the headcount on duty rather than left free.
func coverage(problem mipsolve.Problem, employees []*model.Employee, vars *Variables, demand model.DemandMatrix) {
	nDays := demand.Days()
	for d := 0; d < nDays; d++ {
		for p := 0; p < demand.PeriodsOn(d); p++ {
			terms := []mipsolve.Term{{Coefficient: -1, Variable: vars.Y[d][p]}}
			for _, e := range employees {
				for k, shift := range e.Shifts[d] {
					if shift.Contains(p) {
						terms = append(terms, mipsolve.Term{Coefficient: 1, Variable: vars.X[e.ID][d][k]})
					}
				}
			}
			problem.NewConstraint(mipsolve.Equal, float64(demand[d][p]), terms...)
		}
	}
}

// openingClosing emits C2 and C3: every day needs at least one employee
// capable of, and assigned to, open and close. An empty candidate set for
// either is a construction error surfaced before solving (spec.md §4.5).
func openingClosing(problem mipsolve.Problem, employees []*model.Employee, vars *Variables, demand model.DemandMatrix) error {
	nDays := demand.Days()
	for d := 0; d < nDays; d++ {
		lastPeriod := demand.PeriodsOn(d) - 1

		var openers, closers []mipsolve.Term
		for _, e := range employees {
			for k, shift := range e.Shifts[d] {
				if shift.Contains(0) && e.Capability.Has(model.CapabilityCanOpen) {
					openers = append(openers, mipsolve.Term{Coefficient: 1, Variable: vars.X[e.ID][d][k]})
				}
				if lastPeriod >= 0 && shift.Contains(lastPeriod) && e.Capability.Has(model.CapabilityCanClose) {
					closers = append(closers, mipsolve.Term{Coefficient: 1, Variable: vars.X[e.ID][d][k]})
				}
			}
		}

		if len(openers) == 0 {
			return apperr.ConstructionError("no employee capable of opening on day with a nonzero schedule").WithField("day", d)
		}
		if len(closers) == 0 {
			return apperr.ConstructionError("no employee capable of closing on day with a nonzero schedule").WithField("day", d)
		}

		problem.NewConstraint(mipsolve.GreaterThanOrEqual, 1, openers...)
		problem.NewConstraint(mipsolve.GreaterThanOrEqual, 1, closers...)
	}
	return nil
}

// oneShiftOrOff emits C4: an employee works exactly one shift or has the day
// off. A day with no candidate shifts collapses this to d_{e,d}=1 (spec.md
// §4.5 tie-breaks).
func oneShiftOrOff(problem mipsolve.Problem, employees []*model.Employee, vars *Variables, nDays int) {
	for _, e := range employees {
		for d := 0; d < nDays; d++ {
			terms := []mipsolve.Term{{Coefficient: 1, Variable: vars.D[e.ID][d]}}
			for k := range e.Shifts[d] {
				terms = append(terms, mipsolve.Term{Coefficient: 1, Variable: vars.X[e.ID][d][k]})
			}
			problem.NewConstraint(mipsolve.Equal, 1, terms...)
		}
	}
}

// weekBlocks returns the last-day index of every complete 7-day block in
// [0, nDays), i.e. every d with d%7==6.
func weekBlocks(nDays int) []int {
	var ends []int
	for d := 6; d < nDays; d += 7 {
		ends = append(ends, d)
	}
	return ends
}

// weeklyHours emits C5: total worked periods per 7-day block stay within
// [min_hours, max_hours], or equal min_hours when min_hours==max_hours.
func weeklyHours(problem mipsolve.Problem, employees []*model.Employee, vars *Variables, nDays int) {
	for _, e := range employees {
		for _, weekEnd := range weekBlocks(nDays) {
			var terms []mipsolve.Term
			for d := weekEnd - 6; d <= weekEnd; d++ {
				for k, shift := range e.Shifts[d] {
					terms = append(terms, mipsolve.Term{
						Coefficient: float64(shift.Len()),
						Variable:    vars.X[e.ID][d][k],
					})
				}
			}
			if e.MinHours == e.MaxHours {
				problem.NewConstraint(mipsolve.Equal, float64(e.MinHours), terms...)
				continue
			}
			problem.NewConstraint(mipsolve.GreaterThanOrEqual, float64(e.MinHours), terms...)
			problem.NewConstraint(mipsolve.LessThanOrEqual, float64(e.MaxHours), terms...)
		}
	}
}

// weeklyShiftCount emits C6: at most max_shifts worked shifts per 7-day
// block. An employee with no MaxShifts of its own falls back to
// weeklyMaximumShifts (spec.md §6's DEFAULT_WEEKLY_MAXIMUM_SHIFTS).
func weeklyShiftCount(problem mipsolve.Problem, employees []*model.Employee, vars *Variables, nDays int, weeklyMaximumShifts int) {
	for _, e := range employees {
		maxShifts := e.MaxShifts
		if maxShifts <= 0 {
			maxShifts = weeklyMaximumShifts
		}
		for _, weekEnd := range weekBlocks(nDays) {
			var terms []mipsolve.Term
			for d := weekEnd - 6; d <= weekEnd; d++ {
				for k := range e.Shifts[d] {
					terms = append(terms, mipsolve.Term{Coefficient: 1, Variable: vars.X[e.ID][d][k]})
				}
			}
			problem.NewConstraint(mipsolve.LessThanOrEqual, float64(maxShifts), terms...)
		}
	}
}

// consecutiveDayCap emits C7: no run of more than maxConsecutiveWorkdays
// worked days, accounting for a streak already in progress before day 0.
func consecutiveDayCap(problem mipsolve.Problem, employees []*model.Employee, vars *Variables, nDays int, maxConsecutiveWorkdays int) {
	for _, e := range employees {
		streakStart := maxConsecutiveWorkdays - e.Streak
		for d := streakStart; d < nDays; d++ {
			if d < 0 {
				continue
			}
			first := d - maxConsecutiveWorkdays
			if first < 0 {
				first = 0
			}
			var terms []mipsolve.Term
			for i := first; i <= d; i++ {
				terms = append(terms, mipsolve.Term{Coefficient: 1, Variable: vars.D[e.ID][i]})
			}
			problem.NewConstraint(mipsolve.GreaterThanOrEqual, 1, terms...)
		}
	}
}

// andLinearization emits the three constraints that force z to equal the
// logical AND of the given variables: z <= x_i for each x_i, and
// z >= sum(x_i) - (n-1) (spec.md §9).
func andLinearization(problem mipsolve.Problem, z mipsolve.Variable, operands ...mipsolve.Variable) {
	for _, x := range operands {
		problem.NewConstraint(mipsolve.LessThanOrEqual, 0,
			mipsolve.Term{Coefficient: 1, Variable: z},
			mipsolve.Term{Coefficient: -1, Variable: x},
		)
	}
	terms := []mipsolve.Term{{Coefficient: 1, Variable: z}}
	for _, x := range operands {
		terms = append(terms, mipsolve.Term{Coefficient: -1, Variable: x})
	}
	problem.NewConstraint(mipsolve.GreaterThanOrEqual, float64(1-len(operands)), terms...)
}

// pairedDaysOffLinearization emits C8: p_{e,d} = AND(d_{e,d}, d_{e,d+1}).
func pairedDaysOffLinearization(problem mipsolve.Problem, employees []*model.Employee, vars *Variables, nDays int) {
	for _, e := range employees {
		for d := 0; d+1 < nDays; d++ {
			andLinearization(problem, vars.P[e.ID][d], vars.D[e.ID][d], vars.D[e.ID][d+1])
		}
	}
}

// weekendLinearization emits C9: a full weekend's w is the AND of its two
// underlying pairs, via andLinearization; a half weekend's w equals its
// single pair directly.
func weekendLinearization(problem mipsolve.Problem, employees []*model.Employee, vars *Variables) {
	for _, e := range employees {
		for j, w := range vars.Weekends {
			wv := vars.W[e.ID][j]
			switch {
			case w.full():
				pa := vars.P[e.ID][w.pairA]
				pb := vars.P[e.ID][w.pairB]
				andLinearization(problem, wv, pa, pb)
			case w.hasPairA:
				pa := vars.P[e.ID][w.pairA]
				problem.NewConstraint(mipsolve.Equal, 0,
					mipsolve.Term{Coefficient: 1, Variable: wv},
					mipsolve.Term{Coefficient: -1, Variable: pa},
				)
			case w.hasPairB:
				pb := vars.P[e.ID][w.pairB]
				problem.NewConstraint(mipsolve.Equal, 0,
					mipsolve.Term{Coefficient: 1, Variable: wv},
					mipsolve.Term{Coefficient: -1, Variable: pb},
				)
			}
		}
	}
}

// requiredWeekends emits C10 and C11: hard-required single weekends off, and
// group minima ("at least k of these weekends off").
func requiredWeekends(problem mipsolve.Problem, employees []*model.Employee, vars *Variables) {
	for _, e := range employees {
		for _, j := range e.Weekends.Single {
			problem.NewConstraint(mipsolve.Equal, 1, mipsolve.Term{Coefficient: 1, Variable: vars.W[e.ID][j]})
		}
		for _, group := range e.Weekends.Groups {
			var terms []mipsolve.Term
			for _, j := range group.Weekends {
				terms = append(terms, mipsolve.Term{Coefficient: 1, Variable: vars.W[e.ID][j]})
			}
			problem.NewConstraint(mipsolve.GreaterThanOrEqual, float64(group.Min), terms...)
		}
	}
}

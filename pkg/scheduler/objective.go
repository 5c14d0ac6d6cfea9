package scheduler

import (
	"math/rand"

	"github.com/freedakipad/shiftsolve/pkg/mipsolve"
	"github.com/freedakipad/shiftsolve/pkg/model"
)

// prefFactor returns model.PreferenceViolationWeight if any period of shift
// is marked UNDESIRABLE for e on day d, else 1 (spec.md §4.4).
func prefFactor(e *model.Employee, d int, shift model.Shift) float64 {
	for p := shift.Start; p < shift.End; p++ {
		if e.PreferenceAt(d, p) == model.PreferenceUndesirable {
			return model.PreferenceViolationWeight
		}
	}
	return 1
}

// buildObjective assembles the minimized linear objective from its four
// weighted terms (spec.md §4.4) and hands it to problem.
//
// Term 2's weekly paired-day-off reward picks one random pair per employee
// per week; rng must be seeded by the caller for reproducibility (spec.md
// §9).
func buildObjective(problem mipsolve.Problem, employees []*model.Employee, vars *Variables, demand model.DemandMatrix, weights Weights, rng *rand.Rand) {
	var terms []mipsolve.Term
	nDays := demand.Days()

	for _, e := range employees {
		for d := 0; d < nDays; d++ {
			for k, shift := range e.Shifts[d] {
				factor := prefFactor(e, d, shift)
				terms = append(terms, mipsolve.Term{
					Coefficient: weights.Preference * factor,
					Variable:    vars.X[e.ID][d][k],
				})
			}
		}

		for weekEnd := 6; weekEnd < nDays; weekEnd += 7 {
			low, high := weekEnd-6, weekEnd-1
			if weekEnd == nDays-1 {
				// Final week of the schedule: the source also admits the
				// pair anchored at the last day itself. That pair requires
				// day+1 < nDays, which never holds when day is the last
				// day, so this widened range never actually contributes an
				// extra candidate — kept here for fidelity to spec.md §4.4
				// and documented as an accepted quirk in DESIGN.md.
				high = weekEnd
			}
			i := low + rng.Intn(high-low+1)
			if pv, ok := vars.P[e.ID][i]; ok {
				terms = append(terms, mipsolve.Term{
					Coefficient: -weights.DayPairsOff,
					Variable:    pv,
				})
			}
		}

		for j := range vars.Weekends {
			terms = append(terms, mipsolve.Term{
				Coefficient: -weights.WeekendsOff,
				Variable:    vars.W[e.ID][j],
			})
		}
	}

	for d := 0; d < nDays; d++ {
		for p := 0; p < demand.PeriodsOn(d); p++ {
			terms = append(terms, mipsolve.Term{
				Coefficient: weights.ExcessWorkforce,
				Variable:    vars.Y[d][p],
			})
		}
	}

	problem.SetObjective(terms...)
}

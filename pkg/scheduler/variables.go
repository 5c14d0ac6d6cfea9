package scheduler

import (
	"github.com/freedakipad/shiftsolve/pkg/mipsolve"
	"github.com/freedakipad/shiftsolve/pkg/model"
)

// Variables holds every decision variable handle the constraint and
// objective builders need, indexed the way spec.md §4.3 names them.
type Variables struct {
	// X[eid][day][k] — employee eid works shift k on day.
	X map[int]map[int]map[int]mipsolve.Variable
	// D[eid][day] — employee eid has day off.
	D map[int]map[int]mipsolve.Variable
	// P[eid][day] — AND(D[eid][day], D[eid][day+1]).
	P map[int]map[int]mipsolve.Variable
	// W[eid][weekend] — employee eid has weekend fully off.
	W map[int]map[int]mipsolve.Variable
	// Y[day][period] — excess staffing.
	Y map[int]map[int]mipsolve.Variable

	// Weekends is the schedule-wide weekend grouping computed once for all
	// employees (spec.md §4.3); W[eid][j] corresponds to Weekends[j].
	Weekends []weekend
}

// buildVariables creates every decision variable for the roster against the
// given demand and weekend grouping, populating the Variables index.
func buildVariables(problem mipsolve.Problem, employees []*model.Employee, demand model.DemandMatrix, weekends []weekend) (*Variables, error) {
	vars := &Variables{
		X:        make(map[int]map[int]map[int]mipsolve.Variable),
		D:        make(map[int]map[int]mipsolve.Variable),
		P:        make(map[int]map[int]mipsolve.Variable),
		W:        make(map[int]map[int]mipsolve.Variable),
		Y:        make(map[int]map[int]mipsolve.Variable),
		Weekends: weekends,
	}

	nDays := demand.Days()

	for _, e := range employees {
		vars.X[e.ID] = make(map[int]map[int]mipsolve.Variable, nDays)
		vars.D[e.ID] = make(map[int]mipsolve.Variable, nDays)
		vars.P[e.ID] = make(map[int]mipsolve.Variable)
		vars.W[e.ID] = make(map[int]mipsolve.Variable, len(weekends))

		for d := 0; d < nDays; d++ {
			shifts := e.Shifts[d]
			vars.X[e.ID][d] = make(map[int]mipsolve.Variable, len(shifts))
			for k := range shifts {
				v, err := problem.NewVariable(encodeX(e.ID, d, k), 0, 1, mipsolve.Binary)
				if err != nil {
					return nil, err
				}
				vars.X[e.ID][d][k] = v
			}

			dv, err := problem.NewVariable(encodeD(e.ID, d), 0, 1, mipsolve.Binary)
			if err != nil {
				return nil, err
			}
			vars.D[e.ID][d] = dv
		}

		for d := 0; d+1 < nDays; d++ {
			pv, err := problem.NewVariable(encodeP(e.ID, d), 0, 1, mipsolve.Binary)
			if err != nil {
				return nil, err
			}
			vars.P[e.ID][d] = pv
		}

		for j := range weekends {
			wv, err := problem.NewVariable(encodeW(e.ID, j), 0, 1, mipsolve.Binary)
			if err != nil {
				return nil, err
			}
			vars.W[e.ID][j] = wv
		}
	}

	// Excess staffing is bounded above by the roster size: no more than
	// every employee could ever be on duty at once.
	excessUpperBound := float64(len(employees))
	for d := 0; d < nDays; d++ {
		periods := demand.PeriodsOn(d)
		vars.Y[d] = make(map[int]mipsolve.Variable, periods)
		for p := 0; p < periods; p++ {
			yv, err := problem.NewVariable(encodeY(d, p), 0, excessUpperBound, mipsolve.Integer)
			if err != nil {
				return nil, err
			}
			vars.Y[d][p] = yv
		}
	}

	return vars, nil
}

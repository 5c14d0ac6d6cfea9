package scheduler

import (
	"fmt"
	"io"
	"sort"

	"github.com/freedakipad/shiftsolve/pkg/mipsolve"
	"github.com/freedakipad/shiftsolve/pkg/model"
)

// assignmentThreshold is the value above which a binary variable is treated
// as set to 1, matching the pack's convention for reading solver output.
const assignmentThreshold = 0.9

// Assignment is one employee's realized shift on one day.
type Assignment struct {
	EmployeeID int
	Day        int
	Shift      model.Shift
}

// EmployeeSummary is one employee's decoded results from a solved Result.
type EmployeeSummary struct {
	EmployeeID   int
	Assignments  []Assignment
	DaysOff      []int
	WeeklyHours  map[int]int // week index (0-based) -> periods worked
}

// Schedule is a solved Result decoded back into human terms (spec.md §4.6).
type Schedule struct {
	RunID      string
	Status     mipsolve.Status
	Objective  float64
	Employees  []EmployeeSummary
	TotalExcess int
}

// Decode walks every x/d/y variable in result.Vars, reading result.Solution,
// and reconstructs a Schedule. Each x handle is looked up in result.Vars by
// (employee, day, shift index) and paired with the employee's own frozen
// shift list; variable names are not parsed here (see ParseAssignment).
func Decode(employees []*model.Employee, demand model.DemandMatrix, result *Result) *Schedule {
	byID := make(map[int]*model.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	schedule := &Schedule{
		RunID:     result.RunID,
		Status:    result.Status,
		Objective: result.Objective,
	}

	for _, e := range employees {
		summary := EmployeeSummary{EmployeeID: e.ID, WeeklyHours: make(map[int]int)}

		for d := 0; d < demand.Days(); d++ {
			for k, shift := range e.Shifts[d] {
				v := result.Vars.X[e.ID][d][k]
				if result.Solution.Value(v) > assignmentThreshold {
					summary.Assignments = append(summary.Assignments, Assignment{EmployeeID: e.ID, Day: d, Shift: shift})
					summary.WeeklyHours[d/7] += shift.Len()
				}
			}
			if dv, ok := result.Vars.D[e.ID][d]; ok && result.Solution.Value(dv) > assignmentThreshold {
				summary.DaysOff = append(summary.DaysOff, d)
			}
		}

		sort.Slice(summary.Assignments, func(i, j int) bool { return summary.Assignments[i].Day < summary.Assignments[j].Day })
		schedule.Employees = append(schedule.Employees, summary)
	}

	for d := 0; d < demand.Days(); d++ {
		for p := 0; p < demand.PeriodsOn(d); p++ {
			schedule.TotalExcess += int(result.Solution.Value(result.Vars.Y[d][p]) + 0.5)
		}
	}

	return schedule
}

// Render prints the schedule the way spec.md §4.6 describes: per employee,
// realized shifts, weekly hours, and day-off indices; globally, total
// excess periods, objective value, and solver status.
func Render(w io.Writer, schedule *Schedule) {
	fmt.Fprintf(w, "run %s: status=%s objective=%.4f\n", schedule.RunID, schedule.Status, schedule.Objective)
	for _, summary := range schedule.Employees {
		fmt.Fprintf(w, "  employee %d:\n", summary.EmployeeID)
		for _, a := range summary.Assignments {
			fmt.Fprintf(w, "    day %d: shift [%d,%d)\n", a.Day, a.Shift.Start, a.Shift.End)
		}
		weeks := make([]int, 0, len(summary.WeeklyHours))
		for wk := range summary.WeeklyHours {
			weeks = append(weeks, wk)
		}
		sort.Ints(weeks)
		for _, wk := range weeks {
			fmt.Fprintf(w, "    week %d: %d periods worked\n", wk, summary.WeeklyHours[wk])
		}
		fmt.Fprintf(w, "    days off: %v\n", summary.DaysOff)
	}
	fmt.Fprintf(w, "  total excess periods: %d\n", schedule.TotalExcess)
}

// ParseAssignment decodes an 'x' variable name, the inverse of encodeX, for
// callers that only hold raw variable names (e.g. a debug dump) rather than
// a Result.
func ParseAssignment(name string) (eid, day, k int, err error) {
	return parseX(name)
}

package scheduler

import (
	"testing"

	"github.com/freedakipad/shiftsolve/pkg/model"
)

func TestEnumerateShiftsRespectsUnavailability(t *testing.T) {
	demand := model.DemandMatrix{make([]int, 16)} // one day, 16 periods (8h)
	e := &model.Employee{
		ID: 1,
		Preferences: map[int]map[int]model.Preference{
			0: {3: model.PreferenceUnavailable},
		},
	}

	enumerateShifts(e, demand, DefaultOptions())

	for _, shift := range e.Shifts[0] {
		if shift.Contains(3) {
			t.Errorf("shift %+v covers period 3, which is UNAVAILABLE", shift)
		}
	}
	if len(e.Shifts[0]) == 0 {
		t.Fatal("expected at least one admissible shift avoiding period 3")
	}
}

func TestEnumerateShiftsStudentLowersMinimum(t *testing.T) {
	demand := model.DemandMatrix{make([]int, 16)}
	student := &model.Employee{ID: 1, Capability: model.CapabilityInSchool}
	regular := &model.Employee{ID: 2}

	enumerateShifts(student, demand, DefaultOptions())
	enumerateShifts(regular, demand, DefaultOptions())

	shortestStudent := shortestShiftLength(student.Shifts[0])
	shortestRegular := shortestShiftLength(regular.Shifts[0])

	if shortestStudent >= shortestRegular {
		t.Errorf("student's shortest shift (%d) should be shorter than a regular employee's (%d)", shortestStudent, shortestRegular)
	}
	if shortestStudent != studentMinShiftHours*DefaultPeriodsPerHour {
		t.Errorf("student's shortest shift = %d, want %d", shortestStudent, studentMinShiftHours*DefaultPeriodsPerHour)
	}
}

func TestEnumerateShiftsEmptyWhenDayTooShort(t *testing.T) {
	demand := model.DemandMatrix{make([]int, 4)} // shorter than MIN_SHIFT_IN_PERIODS
	e := &model.Employee{ID: 1}

	enumerateShifts(e, demand, DefaultOptions())

	if len(e.Shifts[0]) != 0 {
		t.Errorf("expected no admissible shifts on a day shorter than the minimum shift, got %v", e.Shifts[0])
	}
}

func shortestShiftLength(shifts []model.Shift) int {
	if len(shifts) == 0 {
		return -1
	}
	min := shifts[0].Len()
	for _, s := range shifts[1:] {
		if s.Len() < min {
			min = s.Len()
		}
	}
	return min
}

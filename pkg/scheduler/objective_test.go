package scheduler

import (
	"math/rand"
	"testing"

	"github.com/freedakipad/shiftsolve/pkg/model"
)

func TestPrefFactor(t *testing.T) {
	e := &model.Employee{
		Preferences: map[int]map[int]model.Preference{
			0: {5: model.PreferenceUndesirable},
		},
	}
	covering := model.Shift{Start: 4, End: 8}
	clean := model.Shift{Start: 0, End: 4}

	if got := prefFactor(e, 0, covering); got != model.PreferenceViolationWeight {
		t.Errorf("prefFactor over an UNDESIRABLE period = %v, want %v", got, model.PreferenceViolationWeight)
	}
	if got := prefFactor(e, 0, clean); got != 1 {
		t.Errorf("prefFactor over a clean shift = %v, want 1", got)
	}
}

func TestBuildObjectiveIsDeterministicForAFixedSeed(t *testing.T) {
	demand := oneWeekDemand(16, 1)
	employees := []*model.Employee{
		{ID: 1, MinHours: 0, MaxHours: 32, MaxShifts: 5, Capability: model.CapabilityCanOpen | model.CapabilityCanClose},
	}
	weights := DefaultWeights()

	run := func(seed int64) []string {
		for _, e := range employees {
			enumerateShifts(e, demand, DefaultOptions())
		}
		weekends := enumerateWeekends(WeekdayMon, demand.Days())
		problem := newFakeProblem()
		vars, err := buildVariables(problem, employees, demand, weekends)
		if err != nil {
			t.Fatalf("buildVariables: %v", err)
		}
		rng := rand.New(rand.NewSource(seed))
		buildObjective(problem, employees, vars, demand, weights, rng)

		names := make([]string, len(problem.objective))
		for i, term := range problem.objective {
			names[i] = term.Variable.Name()
		}
		return names
	}

	a := run(7)
	b := run(7)
	if len(a) != len(b) {
		t.Fatalf("objective term count differs across runs with the same seed: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("term %d differs across runs with the same seed: %q vs %q", i, a[i], b[i])
		}
	}
}

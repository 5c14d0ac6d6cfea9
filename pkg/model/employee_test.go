package model

import "testing"

func TestEmployeePreferenceAtDefaultsToNormal(t *testing.T) {
	e := &Employee{}
	if got := e.PreferenceAt(0, 0); got != PreferenceNormal {
		t.Errorf("PreferenceAt on an employee with no preferences = %v, want PreferenceNormal", got)
	}
}

func TestEmployeePreferenceAt(t *testing.T) {
	e := &Employee{
		Preferences: map[int]map[int]Preference{
			2: {5: PreferenceUnavailable},
		},
	}
	if got := e.PreferenceAt(2, 5); got != PreferenceUnavailable {
		t.Errorf("PreferenceAt(2,5) = %v, want PreferenceUnavailable", got)
	}
	if got := e.PreferenceAt(2, 6); got != PreferenceNormal {
		t.Errorf("PreferenceAt(2,6) = %v, want PreferenceNormal", got)
	}
	if got := e.PreferenceAt(3, 5); got != PreferenceNormal {
		t.Errorf("PreferenceAt(3,5) = %v, want PreferenceNormal", got)
	}
}

func TestEmployeeDescribeIsStable(t *testing.T) {
	e := &Employee{
		ID:         10000001,
		Name:       "alice",
		Contract:   FullTime,
		MinHours:   76,
		MaxHours:   80,
		MaxShifts:  5,
		Capability: CapabilityCanOpen | CapabilityHasKeys,
		Streak:     2,
		Weekends:   WeekendsConfig{Single: []int{0}},
	}
	a := e.Describe()
	b := e.Describe()
	if a != b {
		t.Errorf("Describe() is not stable across calls: %q vs %q", a, b)
	}
	if a == "" {
		t.Error("Describe() returned an empty string")
	}
}

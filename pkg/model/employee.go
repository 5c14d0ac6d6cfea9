// Package model defines the scheduling engine's core domain types.
package model

import "fmt"

// WeekendGroup requires at least Min of the listed weekend indices off.
type WeekendGroup struct {
	Min      int
	Weekends []int
}

// WeekendsConfig holds an employee's required-weekends-off configuration.
type WeekendsConfig struct {
	// Single lists weekend indices the employee must have entirely off.
	Single []int
	// Groups lists "at least k of these weekends off" requirements.
	Groups []WeekendGroup
}

// Employee is one roster member and the demand they must satisfy.
//
// Shifts is derived by the shift enumerator (see pkg/scheduler) and frozen
// for the duration of one solve; it is not meant to be hand-populated.
type Employee struct {
	ID       int
	Name     string
	Contract Contract

	MinHours   int // periods
	MaxHours   int // periods
	MaxShifts  int // shifts per 7-day window
	Seniority  float64
	Capability Capability
	Streak     int // consecutive days already worked before day 0

	Weekends    WeekendsConfig
	Preferences map[int]map[int]Preference // day -> period -> preference

	// Shifts[d] holds every admissible candidate shift window for day d,
	// populated by the shift enumerator before a solve.
	Shifts [][]Shift
}

// PreferenceAt returns the preference recorded for (day, period), defaulting
// to PreferenceNormal when unset.
func (e *Employee) PreferenceAt(day, period int) Preference {
	if byPeriod, ok := e.Preferences[day]; ok {
		return byPeriod[period]
	}
	return PreferenceNormal
}

// Describe renders a stable textual description of the employee, the format
// the reporter uses: id, name, contract, hours range, max shifts,
// capabilities, streak, weekends, preference count.
func (e *Employee) Describe() string {
	prefCount := 0
	for _, byPeriod := range e.Preferences {
		prefCount += len(byPeriod)
	}
	return fmt.Sprintf(
		"employee %d (%s): %s contract, %d-%d periods/week, max %d shifts/week, "+
			"capabilities=[%s], streak=%d, weekends(single=%v groups=%v), %d preference entries",
		e.ID, e.Name, e.Contract, e.MinHours, e.MaxHours, e.MaxShifts,
		e.Capability, e.Streak, e.Weekends.Single, e.Weekends.Groups, prefCount,
	)
}

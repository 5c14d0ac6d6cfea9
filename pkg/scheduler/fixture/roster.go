// Package fixture generates synthetic employee rosters for testing and demo
// purposes. Per spec.md §1, only its contract with the core — a finished
// model.Roster — matters; the generation algorithm itself is not part of the
// optimization model.
package fixture

import (
	"math"
	"math/rand"

	"github.com/freedakipad/shiftsolve/pkg/model"
)

// randomChances mirrors the source fixture generator's sampling
// probabilities (grounded in original_source/src/constants.py RANDOM_CHANCES).
var randomChances = struct {
	Absence     float64
	Preference  float64
	OpenAndClose float64
	Weekend     float64
}{
	Absence:      0.05,
	Preference:   0.06,
	OpenAndClose: 0.87,
	Weekend:      0.1,
}

// streakWeights reproduces the source's weighted streak distribution:
// [6]+2*[5]+3*[4]+4*[3]+5*[2]+6*[1]+7*[0].
var streakWeights = buildStreakWeights()

func buildStreakWeights() []int {
	counts := map[int]int{6: 1, 5: 2, 4: 3, 3: 4, 2: 5, 1: 6, 0: 7}
	var out []int
	for _, streak := range []int{6, 5, 4, 3, 2, 1, 0} {
		for i := 0; i < counts[streak]; i++ {
			out = append(out, streak)
		}
	}
	return out
}

const (
	periodsPerHour = 2

	fullTimeMinHours = 38 * periodsPerHour
	fullTimeMaxHours = 40 * periodsPerHour

	partTimeMinFloor = 15 * periodsPerHour
	partTimeMaxCeil  = 30 * periodsPerHour

	lowHoursShiftCapThreshold    = 15 * periodsPerHour
	mediumHoursShiftCapThreshold = 20 * periodsPerHour

	// extrasFactor adds ~7% extra employees on top of the count needed to
	// meet demand hours, for a more probably feasible roster (spec.md §9
	// fixes the source's off-by-one extras counter with this fixed factor).
	extrasFactor = 1.07

	weekendGroupSliceLength = 5
)

// Generate builds a synthetic roster against demand. If count is nil, the
// roster size is computed once up front: the headcount needed to cover the
// schedule's average weekly total demand at the average contracted load,
// padded by a fixed ~7% margin (spec.md §9). If count is non-nil, exactly
// that many employees are generated. Either way fewer are generated if the
// id generator is exhausted first.
//
// rng must be seeded by the caller for reproducibility.
func Generate(demand model.DemandMatrix, count *int, fixedHours bool, startDay int, rng *rand.Rand) (*model.Roster, error) {
	roster := model.NewRoster()

	totalWeeklyHours := totalDemandHours(demand)

	targetCount := math.MaxInt32
	if count != nil {
		targetCount = *count
	} else {
		// Rough headcount needed to meet total hours at the average
		// contracted load (full-time ~39h, part-time ~22.5h), then padded.
		avgContractHours := float64(fullTimeMinHours+fullTimeMaxHours+partTimeMinFloor+partTimeMaxCeil) / 4
		neededForHours := totalWeeklyHours / avgContractHours
		targetCount = int(math.Ceil(neededForHours * extrasFactor))
	}

	seniorsCreated := 0

	for i := 0; i < targetCount; i++ {
		e, err := createRandomEmployee(roster, demand, fixedHours, startDay, rng)
		if err != nil {
			break // id generator exhausted; stop with what was built.
		}
		if e.Seniority != 0 {
			seniorsCreated++
		}
		if err := roster.Add(e); err != nil {
			break
		}
	}

	if seniorsCreated == 0 && roster.Count() > 0 {
		employees := roster.Employees()
		employees[rng.Intn(len(employees))].Seniority = 1
	}

	return roster, nil
}

// totalDemandHours sums one week's worth of period-demand (spec.md's
// fixture uses the schedule's average weekly total as its feasibility
// target).
func totalDemandHours(demand model.DemandMatrix) float64 {
	days := demand.Days()
	if days == 0 {
		return 0
	}
	weeks := float64(days) / 7
	total := 0
	for _, periods := range demand {
		for _, v := range periods {
			total += v
		}
	}
	return float64(total) / weeks
}

func createRandomEmployee(roster *model.Roster, demand model.DemandMatrix, fixedHours bool, startDay int, rng *rand.Rand) (*model.Employee, error) {
	id, err := roster.GenerateEmployeeID(rng)
	if err != nil {
		return nil, err
	}

	contract := model.FullTime
	if rng.Intn(2) == 1 {
		contract = model.PartTime
	}

	var minHours, maxHours int
	if contract == model.FullTime {
		minHours = fullTimeMinHours
		maxHours = fullTimeMaxHours
		if fixedHours {
			maxHours = minHours
		}
	} else {
		minHours = partTimeMinFloor + 2*rng.Intn((partTimeMaxCeil-partTimeMinFloor)/2)
		if minHours >= partTimeMaxCeil {
			minHours = partTimeMaxCeil - 2
		}
		span := (partTimeMaxCeil - minHours) / 2
		maxHours = minHours
		if span > 0 {
			maxHours = minHours + 2*rng.Intn(span)
		}
		if fixedHours {
			minHours = maxHours
		}
	}

	// Corrected ordering (spec.md §9): the source tests `< 20` before `< 15`,
	// making the 3-shift cap unreachable. Testing the tighter bound first
	// restores it.
	maxShifts := 5
	switch {
	case maxHours < lowHoursShiftCapThreshold:
		maxShifts = 3
	case maxHours < mediumHoursShiftCapThreshold:
		maxShifts = 4
	}

	seniority := 0.0
	if rng.Float64() < 0.05 {
		seniority = 1
	}

	var capability model.Capability
	if rng.Float64() < randomChances.OpenAndClose {
		capability |= model.CapabilityCanOpen | model.CapabilityCanClose
	}

	streak := streakWeights[rng.Intn(len(streakWeights))]

	weekends := buildWeekends(demand, startDay, rng)
	preferences := buildPreferences(demand, rng)

	return &model.Employee{
		ID:          id,
		Name:        randomName(rng),
		Contract:    contract,
		MinHours:    minHours,
		MaxHours:    maxHours,
		MaxShifts:   maxShifts,
		Seniority:   seniority,
		Capability:  capability,
		Streak:      streak,
		Weekends:    weekends,
		Preferences: preferences,
	}, nil
}

func buildWeekends(demand model.DemandMatrix, startDay int, rng *rand.Rand) model.WeekendsConfig {
	weeks := demand.Days() / 7
	var cfg model.WeekendsConfig

	if rng.Float64() < randomChances.Weekend && weeks > 0 {
		upper := weeks
		if startDay == 6 { // WEEKDAY_SUN
			upper--
		}
		if upper > 0 {
			cfg.Single = []int{rng.Intn(upper)}
		}
	}

	if weeks > 3 {
		for start := 0; start < weeks; start += weekendGroupSliceLength {
			end := start + weekendGroupSliceLength
			if end > weeks {
				end = weeks
			}
			if rng.Float64() < randomChances.Weekend {
				min := 1
				if rng.Intn(2) == 1 {
					min = 2
				}
				group := model.WeekendGroup{Min: min}
				for w := start; w < end; w++ {
					group.Weekends = append(group.Weekends, w)
				}
				cfg.Groups = append(cfg.Groups, group)
			}
		}
	}

	return cfg
}

func buildPreferences(demand model.DemandMatrix, rng *rand.Rand) map[int]map[int]model.Preference {
	prefs := make(map[int]map[int]model.Preference)
	for d := 0; d < demand.Days(); d++ {
		periods := demand.PeriodsOn(d)
		if periods == 0 {
			continue
		}
		roll := rng.Float64()
		switch {
		case roll < randomChances.Absence:
			period := rng.Intn(periods)
			prefs[d] = map[int]model.Preference{period: model.PreferenceUnavailable}
		case roll < randomChances.Absence+randomChances.Preference:
			period := rng.Intn(periods)
			prefs[d] = map[int]model.Preference{period: model.PreferenceUndesirable}
		}
	}
	return prefs
}

const nameAlphabet = "abcdefghijklmnopqrstuvwxyz"

func randomName(rng *rand.Rand) string {
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = nameAlphabet[rng.Intn(len(nameAlphabet))]
	}
	return string(buf)
}

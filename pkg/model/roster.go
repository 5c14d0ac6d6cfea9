package model

import (
	"math/rand"

	"github.com/freedakipad/shiftsolve/pkg/apperr"
)

// idLowerBound and idUpperBound bound the 8-digit random employee ids spec.md
// §3 calls for: uniformly drawn from [1e7, 1e8).
const (
	idLowerBound = 10_000_000
	idUpperBound = 100_000_000

	// maxIDGenerationTries caps the bounded retry loop used to find a free
	// random id before giving up and reporting CodeIDExhausted.
	maxIDGenerationTries = 2500
)

// Roster holds the employees participating in one solve.
type Roster struct {
	employees map[int]*Employee
	order     []int // insertion order, for stable iteration/reporting
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{employees: make(map[int]*Employee)}
}

// Add inserts e into the roster. It returns CodeDuplicateID if e.ID is
// already present.
func (r *Roster) Add(e *Employee) error {
	if _, exists := r.employees[e.ID]; exists {
		return apperr.New(apperr.CodeDuplicateID, "employee id already present").
			WithField("id", e.ID)
	}
	r.employees[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

// Remove deletes the employee with the given id, if present.
func (r *Roster) Remove(id int) {
	if _, exists := r.employees[id]; !exists {
		return
	}
	delete(r.employees, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get looks up an employee by id.
func (r *Roster) Get(id int) (*Employee, bool) {
	e, ok := r.employees[id]
	return e, ok
}

// Count returns the number of employees in the roster.
func (r *Roster) Count() int {
	return len(r.employees)
}

// Employees returns the roster's employees in insertion order.
func (r *Roster) Employees() []*Employee {
	out := make([]*Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.employees[id])
	}
	return out
}

// has reports whether id is already assigned within the roster.
func (r *Roster) has(id int) bool {
	_, ok := r.employees[id]
	return ok
}

// GenerateEmployeeID draws a random 8-digit id in [idLowerBound, idUpperBound)
// that is not already present in the roster, retrying up to
// maxIDGenerationTries times before giving up. rng must not be nil; callers
// own its seeding so id generation stays deterministic under a fixed seed.
func (r *Roster) GenerateEmployeeID(rng *rand.Rand) (int, error) {
	for try := 0; try < maxIDGenerationTries; try++ {
		candidate := idLowerBound + rng.Intn(idUpperBound-idLowerBound)
		if !r.has(candidate) {
			return candidate, nil
		}
	}
	return 0, apperr.IDExhausted(maxIDGenerationTries)
}

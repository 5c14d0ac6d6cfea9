package scheduler

import (
	"time"

	"github.com/freedakipad/shiftsolve/pkg/mipsolve"
)

// fakeVariable is a minimal mipsolve.Variable for tests that don't need a
// real solver.
type fakeVariable struct{ name string }

func (f fakeVariable) Name() string { return f.name }

// recordedConstraint captures one NewConstraint call for assertions.
type recordedConstraint struct {
	sense mipsolve.Sense
	rhs   float64
	terms []mipsolve.Term
}

// fakeProblem implements mipsolve.Problem by recording every call instead of
// forwarding to a solver, so constraint/objective builders can be tested
// without a live HiGHS dependency.
type fakeProblem struct {
	variables   map[string]mipsolve.Variable
	constraints []recordedConstraint
	objective   []mipsolve.Term
}

func newFakeProblem() *fakeProblem {
	return &fakeProblem{variables: make(map[string]mipsolve.Variable)}
}

func (p *fakeProblem) NewVariable(name string, lower, upper float64, category mipsolve.Category) (mipsolve.Variable, error) {
	v := fakeVariable{name: name}
	p.variables[name] = v
	return v, nil
}

func (p *fakeProblem) NewConstraint(sense mipsolve.Sense, rhs float64, terms ...mipsolve.Term) {
	p.constraints = append(p.constraints, recordedConstraint{sense: sense, rhs: rhs, terms: terms})
}

func (p *fakeProblem) SetObjective(terms ...mipsolve.Term) {
	p.objective = terms
}

func (p *fakeProblem) Solve(gapRel float64, timeLimit time.Duration) (mipsolve.Solution, error) {
	return &fakeSolution{}, nil
}

// fakeSolution is an all-zero solution, sufficient for builder-level tests
// that never call Run's solve step.
type fakeSolution struct{}

func (s *fakeSolution) Status() mipsolve.Status       { return mipsolve.StatusOptimal }
func (s *fakeSolution) Value(v mipsolve.Variable) float64 { return 0 }
func (s *fakeSolution) ObjectiveValue() float64       { return 0 }
func (s *fakeSolution) RunTime() time.Duration        { return 0 }

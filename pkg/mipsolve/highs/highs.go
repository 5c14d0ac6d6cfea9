// Package highs adapts github.com/nextmv-io/go-mip and its HiGHS backend to
// the mipsolve.Problem contract. This is the module's only dependency on a
// concrete solver; every other package builds against mipsolve's interfaces.
package highs

import (
	"fmt"
	"time"

	gohighs "github.com/nextmv-io/go-highs"
	gomip "github.com/nextmv-io/go-mip"

	"github.com/freedakipad/shiftsolve/pkg/mipsolve"
)

// Problem wraps a go-mip model, tracking variable handles by the names the
// scheduler package assigns so a Solution can be queried back by name.
type Problem struct {
	model     gomip.Model
	variables map[string]gomip.Var
}

// NewProblem creates an empty minimization problem.
func NewProblem() *Problem {
	m := gomip.NewModel()
	m.Objective().SetMinimize()
	return &Problem{model: m, variables: make(map[string]gomip.Var)}
}

// namedVariable pairs a go-mip variable with the stable name the scheduler
// package's encoding produced for it.
type namedVariable struct {
	name string
	v    gomip.Var
}

// Name implements mipsolve.Variable.
func (n namedVariable) Name() string { return n.name }

// NewVariable implements mipsolve.Problem.
func (p *Problem) NewVariable(name string, lower, upper float64, category mipsolve.Category) (mipsolve.Variable, error) {
	if _, exists := p.variables[name]; exists {
		return nil, fmt.Errorf("mipsolve/highs: variable %q already exists", name)
	}

	var v gomip.Var
	switch category {
	case mipsolve.Binary:
		v = p.model.NewBool()
	case mipsolve.Integer:
		v = p.model.NewInt(int64(lower), int64(upper))
	case mipsolve.Continuous:
		v = p.model.NewFloat(lower, upper)
	default:
		return nil, fmt.Errorf("mipsolve/highs: unknown variable category %d", category)
	}

	p.variables[name] = v
	return namedVariable{name: name, v: v}, nil
}

// NewConstraint implements mipsolve.Problem.
func (p *Problem) NewConstraint(sense mipsolve.Sense, rhs float64, terms ...mipsolve.Term) {
	constraint := p.model.NewConstraint(toGoMIPSense(sense), rhs)
	for _, t := range terms {
		constraint.NewTerm(t.Coefficient, asGoMIPVar(t.Variable))
	}
}

// SetObjective implements mipsolve.Problem.
func (p *Problem) SetObjective(terms ...mipsolve.Term) {
	objective := p.model.Objective()
	for _, t := range terms {
		objective.NewTerm(t.Coefficient, asGoMIPVar(t.Variable))
	}
}

// Solve implements mipsolve.Problem.
func (p *Problem) Solve(gapRel float64, timeLimit time.Duration) (mipsolve.Solution, error) {
	solver := gohighs.NewSolver(p.model)

	solved, err := solver.Solve(gomip.SolveOptions{
		Duration: timeLimit,
		MIP: gomip.MIPOptions{
			Gap: gomip.GapOptions{Relative: gapRel},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("mipsolve/highs: solve: %w", err)
	}

	return &solution{solved: solved, variables: p.variables}, nil
}

func toGoMIPSense(sense mipsolve.Sense) gomip.Sense {
	switch sense {
	case mipsolve.LessThanOrEqual:
		return gomip.LessThanOrEqual
	case mipsolve.GreaterThanOrEqual:
		return gomip.GreaterThanOrEqual
	default:
		return gomip.Equal
	}
}

func asGoMIPVar(v mipsolve.Variable) gomip.Var {
	return v.(namedVariable).v
}

// solution adapts gomip.Solution to mipsolve.Solution.
type solution struct {
	solved    gomip.Solution
	variables map[string]gomip.Var
}

// Status implements mipsolve.Solution.
func (s *solution) Status() mipsolve.Status {
	switch {
	case s.solved.IsOptimal():
		return mipsolve.StatusOptimal
	case s.solved.IsSubOptimal():
		return mipsolve.StatusSubOptimal
	case s.solved.HasValues():
		return mipsolve.StatusSubOptimal
	default:
		return mipsolve.StatusInfeasible
	}
}

// Value implements mipsolve.Solution.
func (s *solution) Value(v mipsolve.Variable) float64 {
	return s.solved.Value(asGoMIPVar(v))
}

// ObjectiveValue implements mipsolve.Solution.
func (s *solution) ObjectiveValue() float64 {
	return s.solved.ObjectiveValue()
}

// RunTime implements mipsolve.Solution.
func (s *solution) RunTime() time.Duration {
	return s.solved.RunTime()
}

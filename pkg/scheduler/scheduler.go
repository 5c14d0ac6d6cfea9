// Package scheduler builds and solves the workforce-scheduling integer
// linear program: shift enumeration, the five decision-variable families,
// the weighted objective, and the coverage/labor-law/fairness constraints
// (spec.md §4). It depends only on pkg/mipsolve's solver contract, never on
// a concrete solver backend.
package scheduler

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/freedakipad/shiftsolve/pkg/apperr"
	"github.com/freedakipad/shiftsolve/pkg/logger"
	"github.com/freedakipad/shiftsolve/pkg/mipsolve"
	"github.com/freedakipad/shiftsolve/pkg/model"
)

// ProblemFactory creates an empty solver problem. Production callers pass
// highs.NewProblem; tests can substitute a fake.
type ProblemFactory func() mipsolve.Problem

// Scheduler builds one optimization model from a roster and demand matrix
// and drives it through a solve (spec.md §6).
type Scheduler struct {
	roster  *model.Roster
	demand  model.DemandMatrix
	options Options
	newProblem ProblemFactory
	log     *logger.SolveLogger
}

// New constructs a Scheduler. opts is normalized against DefaultOptions; an
// invalid Weights value falls back to DefaultWeights with a logged warning
// (spec.md §7.1).
func New(roster *model.Roster, demand model.DemandMatrix, opts Options, newProblem ProblemFactory) (*Scheduler, error) {
	if err := demand.Validate(); err != nil {
		return nil, err
	}

	normalized, fellBack := opts.normalize()
	log := logger.NewSolveLogger()
	if fellBack {
		sum := opts.Weights.Sum()
		log.WeightsFallback(sum)
	}

	return &Scheduler{
		roster:     roster,
		demand:     demand,
		options:    normalized,
		newProblem: newProblem,
		log:        log,
	}, nil
}

// Result is one completed solve: the solution status, objective value, and
// the variable handles needed to decode it into a Schedule.
type Result struct {
	RunID     string
	Status    mipsolve.Status
	Objective float64
	RunTime   time.Duration
	Vars      *Variables
	Solution  mipsolve.Solution
}

// Run builds the model for the scheduler's roster and demand and solves it.
// timeLimit, if nonzero, overrides the Options time limit for this call.
func (s *Scheduler) Run(ctx context.Context, timeLimit time.Duration) (*Result, error) {
	if timeLimit <= 0 {
		timeLimit = s.options.TimeLimit
	}

	runID := uuid.NewString()
	employees := s.roster.Employees()
	s.log.StartSolve(runID, len(employees), s.demand.Days())

	for _, e := range employees {
		enumerateShifts(e, s.demand, s.options)
	}

	weekends := enumerateWeekends(s.options.StartDay, s.demand.Days())

	problem := s.newProblem()

	vars, err := buildVariables(problem, employees, s.demand, weekends)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeConstructionError, "building decision variables")
	}

	if err := buildConstraints(problem, employees, vars, s.demand, s.options); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(s.options.Seed))
	buildObjective(problem, employees, vars, s.demand, s.options.Weights, rng)

	solved, err := solveWithContext(ctx, problem, s.options.Accuracy, timeLimit)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeSolverError, "solver invocation failed")
	}

	status := solved.Status()
	result := &Result{
		RunID:     runID,
		Status:    status,
		Objective: solved.ObjectiveValue(),
		RunTime:   solved.RunTime(),
		Vars:      vars,
		Solution:  solved,
	}

	s.log.SolveComplete(runID, result.RunTime, status.String(), result.Objective)

	if status == mipsolve.StatusInfeasible {
		return result, apperr.NoFeasibleSolution("solver proved the model infeasible")
	}

	return result, nil
}

// solveWithContext runs the solver, returning early if ctx is already
// canceled. The solve call itself is a blocking out-of-process invocation
// bounded by timeLimit (spec.md §5); there is no mid-solve cancellation.
func solveWithContext(ctx context.Context, problem mipsolve.Problem, gapRel float64, timeLimit time.Duration) (mipsolve.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return problem.Solve(gapRel, timeLimit)
}

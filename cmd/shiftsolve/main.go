// Command shiftsolve builds and solves a workforce schedule from a
// synthetic demo roster and demand matrix, then prints the result.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/freedakipad/shiftsolve/internal/config"
	"github.com/freedakipad/shiftsolve/pkg/logger"
	"github.com/freedakipad/shiftsolve/pkg/mipsolve"
	"github.com/freedakipad/shiftsolve/pkg/mipsolve/highs"
	"github.com/freedakipad/shiftsolve/pkg/model"
	"github.com/freedakipad/shiftsolve/pkg/scheduler"
	"github.com/freedakipad/shiftsolve/pkg/scheduler/fixture"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading config:", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{Level: cfg.App.LogLevel, Format: "console"})

	fmt.Printf("shiftsolve v%s (%s, %s)\n", Version, BuildTime, GitCommit)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.WithError(err).Msg("solve failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	demand := demoDemand()

	rng := rand.New(rand.NewSource(1))
	roster, err := fixture.Generate(demand, nil, false, scheduler.WeekdayMon, rng)
	if err != nil {
		return err
	}

	opts := scheduler.DefaultOptions()
	opts.TimeLimit = cfg.Solver.DefaultTimeout
	opts.Accuracy = cfg.Solver.DefaultGapRel

	sched, err := scheduler.New(roster, demand, opts, func() mipsolve.Problem {
		return highs.NewProblem()
	})
	if err != nil {
		return err
	}

	result, err := sched.Run(ctx, 0)
	if err != nil && result == nil {
		return err
	}

	report := scheduler.Decode(roster.Employees(), demand, result)
	scheduler.Render(os.Stdout, report)

	return err
}

// demoDemand returns a single week of staffing demand, two periods/hour,
// heavier at midday, for the CLI's demonstration run.
func demoDemand() model.DemandMatrix {
	day := make([]int, 32) // 16 operating hours at 2 periods/hour
	for p := range day {
		switch {
		case p < 8 || p >= 28:
			day[p] = 1
		default:
			day[p] = 2
		}
	}
	demand := make(model.DemandMatrix, 7)
	for d := range demand {
		demand[d] = append([]int(nil), day...)
	}
	return demand
}

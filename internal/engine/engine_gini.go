package engine

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
)

const defaultPollInterval = 50 * time.Millisecond

type giniEngine struct {
	poll time.Duration
}

// NewGini returns an engine backed by the gini CDCL solver.
func NewGini() Engine {
	return &giniEngine{poll: defaultPollInterval}
}

// NewGiniPoll is NewGini with an explicit poll interval for bounded
// solves. Intervals smaller than a millisecond are rounded up.
func NewGiniPoll(poll time.Duration) Engine {
	if poll < time.Millisecond {
		poll = time.Millisecond
	}
	return &giniEngine{poll: poll}
}

func (e *giniEngine) Name() string {
	return "gini"
}

func (e *giniEngine) Solve(ctx context.Context, instance Instance) (Result, error) {
	g := gini.NewV(int(instance.Variables))
	for _, clause := range instance.Clauses {
		for _, lit := range clause {
			if lit > 0 {
				g.Add(z.Var(lit).Pos())
			} else {
				g.Add(z.Var(-lit).Neg())
			}
		}
		g.Add(z.LitNull)
	}

	var outcome int
	if ctx.Done() == nil {
		outcome = g.Solve()
	} else {
		outcome = e.waitForSolution(ctx, g.GoSolve())
	}

	switch outcome {
	case 1:
		model := make([]bool, instance.Variables)
		for v := int32(1); v <= instance.Variables; v++ {
			model[v-1] = g.Value(z.Var(v).Pos())
		}
		return Result{Outcome: Sat, Model: model}, nil
	case -1:
		return Result{Outcome: Unsat}, nil
	}
	return Result{Outcome: Unknown}, nil
}

// waitForSolution polls a background solve until it finishes or the
// context expires, whichever comes first.
func (e *giniEngine) waitForSolution(ctx context.Context, gs inter.Solve) int {
	t := time.NewTicker(e.poll)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return gs.Stop()
		case <-t.C:
			if result, ok := gs.Test(); ok {
				return result
			}
		}
	}
}

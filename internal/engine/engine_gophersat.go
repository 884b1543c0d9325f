package engine

import (
	"context"

	"github.com/crillab/gophersat/solver"
	"github.com/samber/lo"
)

type gophersatEngine struct{}

// NewGophersat returns an engine backed by the gophersat solver.
func NewGophersat() Engine {
	return &gophersatEngine{}
}

func (e *gophersatEngine) Name() string {
	return "gophersat"
}

func (e *gophersatEngine) Solve(ctx context.Context, instance Instance) (Result, error) {
	clauses := lo.Map(instance.Clauses, func(clause []int32, _ int) []int {
		return lo.Map(clause, func(lit int32, _ int) int { return int(lit) })
	})
	s := solver.New(solver.ParseSlice(clauses))

	if ctx.Done() == nil {
		return e.result(s, s.Solve(), instance.Variables), nil
	}

	// gophersat offers no notion of interruption on its plain solve, so a
	// bounded call races the search against the context. An abandoned
	// search finishes in the background.
	done := make(chan solver.Status, 1)
	go func() {
		done <- s.Solve()
	}()

	select {
	case <-ctx.Done():
		return Result{Outcome: Unknown}, nil
	case status := <-done:
		return e.result(s, status, instance.Variables), nil
	}
}

func (e *gophersatEngine) result(s *solver.Solver, status solver.Status, variables int32) Result {
	switch status {
	case solver.Sat:
		model := make([]bool, variables)
		for i, value := range s.Model() {
			if i < int(variables) {
				model[i] = value
			}
		}
		return Result{Outcome: Sat, Model: model}
	case solver.Unsat:
		return Result{Outcome: Unsat}
	}
	return Result{Outcome: Unknown}
}

package engine

import (
	"context"
	"log"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGiniSatisfiable(t *testing.T) {
	satisfiableExecution(t, NewGini())
}

func TestGophersatSatisfiable(t *testing.T) {
	satisfiableExecution(t, NewGophersat())
}

func satisfiableExecution(t *testing.T, e Engine) {
	unsatisfiableCount := 0

	for i := 0; i < 10; i++ {
		variables := int32(rand.Intn(100) + 1)
		clauses := rand.Intn(200) + 1
		instance := GenerateInstance(variables, clauses)

		result, err := e.Solve(context.Background(), instance)
		if err != nil {
			t.Errorf("an error occurred while solving a SAT instance: %v", err)
		}

		if result.Outcome == Unsat {
			unsatisfiableCount++
			continue
		}

		assert.Equal(t, Sat, result.Outcome)
		if !AssertModel(instance, result.Model) {
			t.Error("Wrong answer")
		}
	}

	log.Printf("Unsatisfiable instances: %v", unsatisfiableCount)
}

func TestOutcomeDeterministic(t *testing.T) {
	for _, e := range []Engine{NewGini(), NewGophersat()} {
		instance := GenerateInstance(50, 180)

		first, err := e.Solve(context.Background(), instance)
		assert.NoError(t, err)
		second, err := e.Solve(context.Background(), instance)
		assert.NoError(t, err)

		assert.Equal(t, first.Outcome, second.Outcome, "engine %v", e.Name())
	}
}

func TestUnsatisfiableContradiction(t *testing.T) {
	instance := Instance{
		Variables: 1,
		Clauses:   [][]int32{{1}, {-1}},
	}

	for _, e := range []Engine{NewGini(), NewGophersat()} {
		result, err := e.Solve(context.Background(), instance)
		assert.NoError(t, err)
		assert.Equal(t, Unsat, result.Outcome, "engine %v", e.Name())
	}
}

func TestForcedAssignment(t *testing.T) {
	// (x1 v x2) ^ !x1 admits only x1=false, x2=true.
	instance := Instance{
		Variables: 2,
		Clauses:   [][]int32{{1, 2}, {-1}},
	}

	for _, e := range []Engine{NewGini(), NewGophersat()} {
		result, err := e.Solve(context.Background(), instance)
		assert.NoError(t, err)
		assert.Equal(t, Sat, result.Outcome, "engine %v", e.Name())
		assert.False(t, result.Model[0], "engine %v", e.Name())
		assert.True(t, result.Model[1], "engine %v", e.Name())
	}
}

func TestExpiredContextReturnsPromptly(t *testing.T) {
	instance := GenerateInstance(200, 860)

	for _, e := range []Engine{NewGiniPoll(time.Millisecond), NewGophersat()} {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		result, err := e.Solve(ctx, instance)
		elapsed := time.Since(start)

		assert.NoError(t, err)
		assert.Less(t, elapsed, 5*time.Second, "engine %v", e.Name())
		if result.Outcome == Sat {
			// A search may still finish in the instant before it is stopped.
			assert.True(t, AssertModel(instance, result.Model), "engine %v", e.Name())
		}
	}
}

package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/limaJavier/glucose/internal/engine"
)

type scenario struct {
	variables int32
	clauses   int
}

var scenarios = []scenario{
	{20, 80},
	{50, 200},
	{100, 420},
	{150, 640},
	{200, 860},
}

const runsPerScenario = 5

func main() {
	engines := []engine.Engine{engine.NewGini(), engine.NewGophersat()}

	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	if err := writer.Write([]string{"solver", "variables", "clauses", "result", "duration_ms"}); err != nil {
		log.Fatalf("cannot write csv header: %v", err)
	}

	for _, s := range scenarios {
		for i := 0; i < runsPerScenario; i++ {
			instance := engine.GenerateInstance(s.variables, s.clauses)

			for _, e := range engines {
				start := time.Now()
				result, err := e.Solve(context.Background(), instance)
				elapsed := time.Since(start)

				if err != nil {
					log.Fatalf("%v failed on %v variables: %v", e.Name(), s.variables, err)
				}

				row := []string{
					e.Name(),
					fmt.Sprintf("%d", s.variables),
					fmt.Sprintf("%d", s.clauses),
					resultLabel(result.Outcome),
					fmt.Sprintf("%.3f", float64(elapsed.Microseconds())/1000),
				}
				if err := writer.Write(row); err != nil {
					log.Fatalf("cannot write csv row: %v", err)
				}
			}
		}
	}
}

func resultLabel(outcome engine.Outcome) string {
	switch outcome {
	case engine.Sat:
		return "solved"
	case engine.Unsat:
		return "unsatisfiable"
	}
	return "timeout"
}

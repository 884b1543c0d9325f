package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/glucose/internal/dimacs"
	"github.com/limaJavier/glucose/pkg/glucose"
	"github.com/samber/lo"
)

var validSolvers = []string{"gini", "gophersat"}

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "gini", "SAT engine to use. Allowed values are: \"gini\" and \"gophersat\", where \"gini\" is the default")
	filePathPtr := flag.String("file", "", "Path to the DIMACS CNF input file")
	timeoutPtr := flag.Int("timeout", 0, "Time budget in seconds; 0 solves without bound")
	configPathPtr := flag.String("config", "", "Path to a json config file; overrides -solver")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	timeout := *timeoutPtr
	configPath := *configPathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if timeout < 0 {
		log.Fatalf("timeout must not be negative: %v", timeout)
	}

	// Apply configuration
	if configPath != "" {
		if _, err := glucose.LoadConfig(configPath); err != nil {
			log.Fatalf("cannot load config: %v", err)
		}
	} else if err := glucose.Configure(glucose.Config{Solver: solverStr}); err != nil {
		log.Fatalf("cannot configure solver: %v", err)
	}

	// Extract input
	instance, err := dimacs.ParseFile(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Drive the handle protocol end to end
	h := glucose.Init()
	if !h.Valid() {
		log.Fatal("cannot initialize solver instance")
	}

	for _, clause := range instance.Clauses {
		if !glucose.AddClause(h, clause) {
			glucose.Release(h)
			log.Fatalf("clause %v was rejected", clause)
		}
	}

	var satisfiable bool
	if timeout > 0 {
		satisfiable = glucose.SolveTimeout(h, int32(timeout))
	} else {
		satisfiable = glucose.Solve(h)
	}

	if satisfiable {
		fmt.Println("s SATISFIABLE")
		fmt.Println(modelLine(h, instance.Variables))
		glucose.Release(h)
		os.Exit(10)
	}

	status := glucose.Instance(h).Status()
	glucose.Release(h)
	if status == glucose.StatusUnsat {
		fmt.Println("s UNSATISFIABLE")
		os.Exit(20)
	}
	fmt.Println("s UNKNOWN")
}

// modelLine renders the model as a SAT-competition "v" line, literals
// signed by their assigned value and terminated by zero.
func modelLine(h glucose.Handle, variables int32) string {
	literals := lo.Map(lo.RangeFrom(int32(1), int(variables)), func(variable int32, _ int) string {
		if glucose.Deref(h, variable) == glucose.True {
			return fmt.Sprintf("%d", variable)
		}
		return fmt.Sprintf("%d", -variable)
	})
	return "v " + strings.Join(append(literals, "0"), " ")
}

// Package dimacs reads and writes the simplified DIMACS CNF format used
// by SAT-competition solvers.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/limaJavier/glucose/internal/engine"
)

// Parse reads a simplified DIMACS CNF problem. Comment lines are
// skipped, the problem line sets the variable count and clauses are
// terminated by a zero literal. Literals beyond the declared variable
// count raise the count rather than failing, the relaxed behavior most
// solvers implement.
func Parse(r io.Reader) (engine.Instance, error) {
	var instance engine.Instance
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		// Skip comments
		if strings.HasPrefix(line, "c") {
			continue
		}
		// Problem line
		if strings.HasPrefix(line, "p cnf") {
			parts := strings.Fields(line)
			if len(parts) != 4 {
				return engine.Instance{}, fmt.Errorf("invalid problem line: %s", line)
			}
			variables, err := strconv.ParseInt(parts[2], 10, 32)
			if err != nil {
				return engine.Instance{}, fmt.Errorf("invalid variable count: %w", err)
			}
			instance.Variables = int32(variables)
			continue
		}
		// Clause line
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var clause []int32
		for _, litStr := range fields {
			lit, err := strconv.ParseInt(litStr, 10, 32)
			if err != nil {
				return engine.Instance{}, fmt.Errorf("invalid literal '%s': %w", litStr, err)
			}
			if lit == 0 {
				break
			}
			clause = append(clause, int32(lit))
			if v := int32(lit); v < 0 && -v > instance.Variables {
				instance.Variables = -v
			} else if v > instance.Variables {
				instance.Variables = v
			}
		}
		if len(clause) > 0 {
			instance.Clauses = append(instance.Clauses, clause)
		}
	}

	if err := scanner.Err(); err != nil {
		return engine.Instance{}, fmt.Errorf("error reading input: %w", err)
	}

	return instance, nil
}

// ParseFile parses the DIMACS CNF file at the given path.
func ParseFile(name string) (engine.Instance, error) {
	file, err := os.Open(name)
	if err != nil {
		return engine.Instance{}, fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Serialize renders the instance as a DIMACS CNF string.
func Serialize(instance engine.Instance) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", instance.Variables, len(instance.Clauses))
	for _, clause := range instance.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

package engine

import "context"

// Instance is a propositional formula in conjunctive normal form.
// Literals follow the DIMACS convention: a positive integer asserts the
// variable of that index, a negative integer asserts its negation, and
// zero never appears inside a clause.
type Instance struct {
	Variables int32
	Clauses   [][]int32
}

type Outcome int8

const (
	Unknown Outcome = iota
	Sat
	Unsat
)

func (o Outcome) String() string {
	switch o {
	case Sat:
		return "satisfiable"
	case Unsat:
		return "unsatisfiable"
	}
	return "unknown"
}

// Result carries the outcome of a solve. Model is populated only when
// Outcome is Sat; Model[i] is the truth value of variable i+1.
type Result struct {
	Outcome Outcome
	Model   []bool
}

// Engine runs a complete search over an instance. A solve observes the
// context: once the deadline expires or the context is cancelled the
// engine abandons the search and reports Unknown.
type Engine interface {
	Solve(ctx context.Context, instance Instance) (Result, error)
	Name() string
}

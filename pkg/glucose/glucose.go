// Package glucose drives a SAT solver through the five-operation handle
// protocol of the classic Glucose bridge: initialize an instance, add
// clauses, solve with or without a time bound, and dereference variable
// assignments from the resulting model. Instances are referenced by
// opaque handles and must be released with Release when no longer
// needed.
//
// Every operation reports failure through its return value's domain
// rather than through errors: false for the boolean operations, Undef
// for Deref, the zero Handle for Init. Callers wanting the underlying
// tri-state outcome and structured errors use the Solver instance API
// instead.
//
// Operations on distinct handles may run concurrently from separate
// goroutines; operations on one handle are serialized internally.
package glucose

import (
	"context"
	"time"
)

// Values returned by Deref.
const (
	False int32 = 0
	True  int32 = 1
	Undef int32 = -1
)

var instances = newRegistry()

// Init allocates a fresh solver instance with an empty clause database
// and returns its handle. The zero Handle signals allocation failure.
func Init() Handle {
	return instances.create(NewSolver())
}

// AddClause appends one clause, given as non-zero signed literals, to
// the instance's database. It returns false if the handle is not live
// or the clause is malformed. Clauses cannot be retracted.
func AddClause(h Handle, literals []int32) bool {
	solver := instances.lookup(h)
	if solver == nil {
		return false
	}
	return solver.AddClause(literals) == nil
}

// Solve runs an unbounded search over the accumulated clause set and
// reports satisfiability. It may block indefinitely; callers needing
// cancellation use SolveTimeout.
func Solve(h Handle) bool {
	solver := instances.lookup(h)
	if solver == nil {
		return false
	}
	status, err := solver.Solve(context.Background())
	return err == nil && status == StatusSat
}

// SolveTimeout runs a search bounded by the given number of seconds.
// Once the budget expires the search is abandoned and false is
// returned; at this boundary a timeout is indistinguishable from
// unsatisfiability, as in the original protocol. Solver.Status
// disambiguates. A non-positive budget expires immediately.
func SolveTimeout(h Handle, seconds int32) bool {
	solver := instances.lookup(h)
	if solver == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(seconds)*time.Second)
	defer cancel()

	status, err := solver.Solve(ctx)
	return err == nil && status == StatusSat
}

// Deref reads the truth value the most recent successful solve assigned
// to the given variable: True, False, or Undef when the handle is not
// live, no model is available, the model was staled by a later
// AddClause, or the variable is out of range.
func Deref(h Handle, variable int32) int32 {
	solver := instances.lookup(h)
	if solver == nil {
		return Undef
	}
	value, err := solver.Value(variable)
	if err != nil {
		return Undef
	}
	if value {
		return True
	}
	return False
}

// Release destroys the instance behind the handle. Every later call
// with the same handle fails with its domain's failure value. Release
// reports whether the handle was live.
func Release(h Handle) bool {
	return instances.release(h)
}

// Instance returns the solver behind a live handle for use through the
// richer instance API, nil otherwise.
func Instance(h Handle) *Solver {
	return instances.lookup(h)
}

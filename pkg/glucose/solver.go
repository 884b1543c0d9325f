package glucose

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/limaJavier/glucose/internal/engine"
)

// Status is the tri-state outcome of the most recent solve. The flat
// handle operations collapse it to a boolean; the instance API keeps
// the distinction between a proved-unsatisfiable and an abandoned
// search.
type Status int8

const (
	StatusUnknown Status = iota
	StatusSat
	StatusUnsat
)

func (s Status) String() string {
	switch s {
	case StatusSat:
		return "satisfiable"
	case StatusUnsat:
		return "unsatisfiable"
	}
	return "unknown"
}

var (
	ErrEmptyClause = errors.New("clause is empty")
	ErrZeroLiteral = errors.New("clause contains a zero literal")
	ErrNoModel     = errors.New("no model available")
	ErrOutOfRange  = errors.New("variable index out of range")
)

// Solver owns one clause database together with the outcome of its most
// recent solve. Clauses are immutable once accepted and there is no
// retraction; every solve re-evaluates the full accumulated set. A
// Solver serializes its own operations, so concurrent misuse of one
// instance degrades to blocking rather than corruption. Distinct
// instances are independent.
type Solver struct {
	mu        sync.Mutex
	engine    engine.Engine
	variables int32
	clauses   [][]int32
	status    Status
	model     []bool
	stale     bool
}

// NewSolver returns a solver instance with an empty clause database,
// backed by the engine selected through Configure.
func NewSolver() *Solver {
	return NewSolverWith(currentEngine())
}

// NewSolverWith returns a solver instance backed by the given engine.
func NewSolverWith(e engine.Engine) *Solver {
	return &Solver{engine: e}
}

// AddClause appends one clause to the database. A clause must carry at
// least one literal and no zeros. Accepting a clause stales any model
// produced by an earlier solve.
func (s *Solver) AddClause(literals []int32) error {
	if len(literals) == 0 {
		return ErrEmptyClause
	}
	for _, lit := range literals {
		if lit == 0 {
			return ErrZeroLiteral
		}
	}

	clause := make([]int32, len(literals))
	copy(clause, literals)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lit := range clause {
		v := lit
		if v < 0 {
			v = -v
		}
		if v > s.variables {
			s.variables = v
		}
	}
	s.clauses = append(s.clauses, clause)
	s.stale = true
	return nil
}

// Solve runs the engine over the accumulated clause set. The search
// observes the context: on expiry or cancellation the status comes back
// StatusUnknown. An empty database is trivially satisfiable.
func (s *Solver) Solve(ctx context.Context) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.clauses) == 0 {
		s.status = StatusSat
		s.model = make([]bool, s.variables)
		s.stale = false
		return s.status, nil
	}

	instance := engine.Instance{Variables: s.variables, Clauses: s.clauses}
	result, err := s.engine.Solve(ctx, instance)
	if err != nil {
		s.status = StatusUnknown
		s.model = nil
		return StatusUnknown, fmt.Errorf("%v engine failed: %w", s.engine.Name(), err)
	}

	switch result.Outcome {
	case engine.Sat:
		s.status = StatusSat
		s.model = result.Model
	case engine.Unsat:
		s.status = StatusUnsat
		s.model = nil
	default:
		s.status = StatusUnknown
		s.model = nil
	}
	s.stale = false
	return s.status, nil
}

// Status reports the outcome of the most recent solve, StatusUnknown if
// none has run or the model was staled by a later AddClause.
func (s *Solver) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale {
		return StatusUnknown
	}
	return s.status
}

// Value reads the truth value assigned to a variable by the most recent
// successful solve.
func (s *Solver) Value(variable int32) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusSat || s.stale {
		return false, ErrNoModel
	}
	if variable < 1 || variable > int32(len(s.model)) {
		return false, fmt.Errorf("variable %d: %w", variable, ErrOutOfRange)
	}
	return s.model[variable-1], nil
}

// Model returns a copy of the satisfying assignment, nil when none is
// available. Model[i] is the truth value of variable i+1.
func (s *Solver) Model() []bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusSat || s.stale {
		return nil
	}
	model := make([]bool, len(s.model))
	copy(model, s.model)
	return model
}

// Variables reports the highest variable index seen so far.
func (s *Solver) Variables() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.variables
}

// Clauses reports the number of accepted clauses.
func (s *Solver) Clauses() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clauses)
}

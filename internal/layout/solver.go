package layout

import (
	"fmt"
)

// Constraint adjusts its boxes toward a valid state and returns the
// boxes it changed. The solver re-runs every constraint depending on a
// changed box until nothing moves.
type Constraint interface {
	Solve() []*Box
	Vars() []*Box
}

// UnsolvableError is returned when constraint solving does not settle
// within the iteration budget.
type UnsolvableError struct {
	Iterations int
	Unsolved   int
}

func (e *UnsolvableError) Error() string {
	return fmt.Sprintf("could not find a solution; unsolved=%d after %d iterations",
		e.Unsolved, e.Iterations)
}

// Solver is an iterative rectangle constraint solver. Constraints are
// kept in a work queue; solving one constraint re-enqueues every
// constraint that shares a changed box.
type Solver struct {
	constraints []Constraint
	deps        map[*Box][]Constraint
}

func NewSolver() *Solver {
	return &Solver{deps: make(map[*Box][]Constraint)}
}

func (s *Solver) Add(c Constraint) {
	s.constraints = append(s.constraints, c)
	for _, v := range c.Vars() {
		s.deps[v] = append(s.deps[v], c)
	}
}

// Solve drains the queue. The budget is quadratic in the constraint
// count; blowing it means the constraints contradict each other.
func (s *Solver) Solve() error {
	unsolved := make([]Constraint, len(s.constraints))
	copy(unsolved, s.constraints)
	inque := make(map[Constraint]bool, len(unsolved))
	for _, c := range unsolved {
		inque[c] = true
	}

	count := 0
	kill := len(s.constraints) * len(s.constraints)
	for len(unsolved) > 0 {
		if count > kill {
			return &UnsolvableError{Iterations: count, Unsolved: len(unsolved)}
		}

		c := unsolved[0]
		unsolved = unsolved[1:]
		delete(inque, c)

		for _, v := range c.Solve() {
			for _, dep := range s.deps[v] {
				if inque[dep] {
					continue
				}
				unsolved = append(unsolved, dep)
				inque[dep] = true
			}
		}
		count++
	}
	return nil
}

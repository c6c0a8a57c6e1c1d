package equations

import "fmt"

// Equation is a solvable algebraic equation f(x) = 0. Implementations are
// immutable values: Solve is a pure read and may be called any number of
// times.
type Equation interface {
	fmt.Stringer

	Degree() int
	ValueAt(x float64) float64
	Solve() (Solutions, error)
}

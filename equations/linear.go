package equations

import "fmt"

// Linear represents a*x + b = 0.
type Linear struct {
	a float64
	b float64
}

func NewLinear(a, b float64) Linear {
	return Linear{a: a, b: b}
}

func (eq Linear) A() float64 {
	return eq.a
}

func (eq Linear) B() float64 {
	return eq.b
}

func (eq Linear) Degree() int {
	if eq.a == 0 {
		return 0
	}

	return 1
}

func (eq Linear) ValueAt(x float64) float64 {
	return eq.a*x + eq.b
}

// Solve distinguishes three outcomes: a single root, no solution
// (0*x + b = 0 with b != 0) and infinitely many (0 = 0).
func (eq Linear) Solve() (Solutions, error) {
	if eq.a == 0 {
		if eq.b == 0 {
			return InfiniteSolutions(), nil
		}

		return NoSolutions(), nil
	}

	return OneRealSolution(-eq.b / eq.a), nil
}

func (eq Linear) String() string {
	if eq.b < 0 {
		return fmt.Sprintf("f(x) = %vx - %v", eq.a, -eq.b)
	}

	return fmt.Sprintf("f(x) = %vx + %v", eq.a, eq.b)
}

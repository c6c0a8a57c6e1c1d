package equations

import (
	"fmt"
	"math"

	"github.com/sgostarter/libalgebra/cplx"
	"github.com/sgostarter/libalgebra/numtools"
)

// Quadratic represents a*x² + b*x + c = 0.
type Quadratic struct {
	a float64
	b float64
	c float64
}

func NewQuadratic(a, b, c float64) Quadratic {
	return Quadratic{a: a, b: b, c: c}
}

func (eq Quadratic) A() float64 {
	return eq.a
}

func (eq Quadratic) B() float64 {
	return eq.b
}

func (eq Quadratic) C() float64 {
	return eq.c
}

func (eq Quadratic) Degree() int {
	if eq.a == 0 {
		return NewLinear(eq.b, eq.c).Degree()
	}

	return 2
}

func (eq Quadratic) ValueAt(x float64) float64 {
	return eq.a*numtools.Square(x) + eq.b*x + eq.c
}

func (eq Quadratic) Discriminant() float64 {
	return numtools.Square(eq.b) - 4*eq.a*eq.c
}

// Solve branches on the discriminant: two distinct real roots, one repeated
// real root, or a complex conjugate pair. A zero leading coefficient degrades
// to the linear solver instead of dividing by zero.
func (eq Quadratic) Solve() (Solutions, error) {
	if eq.a == 0 {
		return NewLinear(eq.b, eq.c).Solve()
	}

	d := eq.Discriminant()

	switch {
	case d > 0:
		sq := math.Sqrt(d)

		return TwoRealSolutions((-eq.b+sq)/(2*eq.a), (-eq.b-sq)/(2*eq.a)), nil
	case d == 0:
		return RepeatedSolution(-eq.b / (2 * eq.a)), nil
	}

	return ComplexSolutions(cplx.New(-eq.b/(2*eq.a), math.Sqrt(-d)/(2*eq.a))), nil
}

// Vertex returns the turning point of the parabola; for a == 0 the x
// coordinate is not defined and NaN is returned for both components.
func (eq Quadratic) Vertex() (x, y float64) {
	if eq.a == 0 {
		return math.NaN(), math.NaN()
	}

	x = -eq.b / (2 * eq.a)
	y = eq.ValueAt(x)

	return
}

func (eq Quadratic) String() string {
	s := fmt.Sprintf("f(x) = %vx^2", eq.a)

	if eq.b < 0 {
		s += fmt.Sprintf(" - %vx", -eq.b)
	} else {
		s += fmt.Sprintf(" + %vx", eq.b)
	}

	if eq.c < 0 {
		s += fmt.Sprintf(" - %v", -eq.c)
	} else {
		s += fmt.Sprintf(" + %v", eq.c)
	}

	return s
}

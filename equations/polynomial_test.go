package equations

import (
	"testing"

	"github.com/sgostarter/libalgebra/numtools"
	"github.com/stretchr/testify/assert"
)

func TestPolynomialValueAt(t *testing.T) {
	// 2 + 0x + 3x^2
	eq := NewPolynomial(2, 0, 3)

	assert.EqualValues(t, 2, eq.ValueAt(0))
	assert.EqualValues(t, 5, eq.ValueAt(1))
	assert.EqualValues(t, 14, eq.ValueAt(2))
}

func TestEffectiveDegree(t *testing.T) {
	assert.EqualValues(t, 2, NewPolynomial(1, 1, 1).EffectiveDegree())
	assert.EqualValues(t, 1, NewPolynomial(1, 1, 0).EffectiveDegree())
	assert.EqualValues(t, 0, NewPolynomial(5, 0, 0).EffectiveDegree())
	assert.EqualValues(t, 0, NewPolynomial(0).EffectiveDegree())
}

func TestDerivative(t *testing.T) {
	// d/dx (1 + 2x + 3x^2) = 2 + 6x
	d := NewPolynomial(1, 2, 3).Derivative()
	assert.EqualValues(t, []float64{2, 6}, d.Coefficients())

	// Constants differentiate to the zero polynomial.
	z := NewPolynomial(7).Derivative()
	assert.EqualValues(t, 0, z.EffectiveDegree())
	assert.EqualValues(t, 0, z.ValueAt(3))
}

func TestDerivativeMatchesNumericDifferentiation(t *testing.T) {
	eq := NewPolynomial(-1, 2, 0.5, 3)
	d := eq.Derivative()

	const h = 1e-6

	for _, x := range []float64{-2, -0.5, 0, 1, 2.5} {
		numeric := (eq.ValueAt(x+h) - eq.ValueAt(x-h)) / (2 * h)
		assert.InDelta(t, numeric, d.ValueAt(x), 1e-4)
	}
}

func TestPolynomialAdd(t *testing.T) {
	s := NewPolynomial(1, 2).Add(NewPolynomial(3, 0, 4))
	assert.EqualValues(t, []float64{4, 2, 4}, s.Coefficients())
}

func TestPolynomialCompose(t *testing.T) {
	// p(x) = x^2, q(x) = x + 1 -> p(q(x)) = x^2 + 2x + 1
	p := NewPolynomial(0, 0, 1)
	q := NewPolynomial(1, 1)

	c := p.Compose(q)

	for _, x := range []float64{-1, 0, 0.5, 2} {
		assert.InDelta(t, numtools.Square(x+1), c.ValueAt(x), 1e-12)
	}
}

func TestPolynomialSolveDegrades(t *testing.T) {
	// 1 - 3x + x^2... written low-to-high: x^2 - 3x + 2 is (2, -3, 1).
	s, err := NewPolynomial(2, -3, 1, 0).Solve()
	assert.Nil(t, err)
	assert.EqualValues(t, SolutionTwoReal, s.Kind)

	s, err = NewPolynomial(-4, 2, 0).Solve()
	assert.Nil(t, err)
	assert.EqualValues(t, SolutionOneReal, s.Kind)
	assert.EqualValues(t, 2, s.X1)

	s, err = NewPolynomial(0, 0).Solve()
	assert.Nil(t, err)
	assert.EqualValues(t, SolutionInfinite, s.Kind)

	s, err = NewPolynomial(3).Solve()
	assert.Nil(t, err)
	assert.EqualValues(t, SolutionNone, s.Kind)

	_, err = NewPolynomial(1, 0, 0, 1).Solve()
	assert.ErrorIs(t, err, ErrNoClosedForm)
}

func TestNewton(t *testing.T) {
	// x^3 - 2 = 0, root 2^(1/3).
	eq := NewPolynomial(-2, 0, 0, 1)

	root, err := eq.Newton(1.5, 1e-12, 50)
	assert.Nil(t, err)
	assert.InDelta(t, 1.2599210498948732, root, 1e-9)

	// Seed at the stationary point of x^3 - 2.
	_, err = eq.Newton(0, 1e-12, 50)
	assert.ErrorIs(t, err, ErrDerivativeZero)

	_, err = eq.Newton(1e9, 1e-12, 3)
	assert.ErrorIs(t, err, ErrNonConvergent)
}

func TestBisect(t *testing.T) {
	eq := NewPolynomial(-2, 0, 0, 1)

	root, err := eq.Bisect(0, 2, 1e-10, 100)
	assert.Nil(t, err)
	assert.InDelta(t, 1.2599210498948732, root, 1e-8)

	// No sign change over the bracket.
	_, err = eq.Bisect(2, 3, 1e-10, 100)
	assert.ErrorIs(t, err, numtools.ErrDomain)

	_, err = eq.Bisect(0, 2, 1e-15, 2)
	assert.ErrorIs(t, err, ErrNonConvergent)

	// Endpoint already a root.
	p := NewPolynomial(0, 0, 0, 1)
	root, err = p.Bisect(0, 1, 1e-10, 100)
	assert.Nil(t, err)
	assert.EqualValues(t, 0, root)
}

func TestPolynomialString(t *testing.T) {
	assert.EqualValues(t, "f(x) = 3x^2 + 2x + 1", NewPolynomial(1, 2, 3).String())
	assert.EqualValues(t, "f(x) = -1x^3 + 2", NewPolynomial(2, 0, 0, -1).String())
	assert.EqualValues(t, "f(x) = 0", NewPolynomial(0).String())
}

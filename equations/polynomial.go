package equations

import (
	"fmt"
	"math"
	"strings"

	"github.com/sgostarter/libalgebra/numtools"
)

// Polynomial is an ordered coefficient sequence: index i holds the
// coefficient of x^i. The raw sequence length is not the degree; leading
// zeros degrade the effective degree.
type Polynomial struct {
	coeffs []float64
}

func NewPolynomial(coeffs ...float64) Polynomial {
	cs := make([]float64, len(coeffs))
	copy(cs, coeffs)

	return Polynomial{coeffs: cs}
}

func (eq Polynomial) Coefficients() []float64 {
	cs := make([]float64, len(eq.coeffs))
	copy(cs, eq.coeffs)

	return cs
}

// EffectiveDegree scans from the highest index down, skipping exactly-zero
// leading coefficients. The zero polynomial has degree 0.
func (eq Polynomial) EffectiveDegree() int {
	for i := len(eq.coeffs) - 1; i > 0; i-- {
		if eq.coeffs[i] != 0 {
			return i
		}
	}

	return 0
}

func (eq Polynomial) Degree() int {
	return eq.EffectiveDegree()
}

// ValueAt evaluates with Horner's method.
func (eq Polynomial) ValueAt(x float64) float64 {
	var res float64

	for i := len(eq.coeffs) - 1; i >= 0; i-- {
		res = res*x + eq.coeffs[i]
	}

	return res
}

// Derivative applies the power rule. The derivative of a constant is the
// zero polynomial, not an error.
func (eq Polynomial) Derivative() Polynomial {
	if len(eq.coeffs) <= 1 {
		return NewPolynomial(0)
	}

	cs := make([]float64, len(eq.coeffs)-1)

	for i := 1; i < len(eq.coeffs); i++ {
		cs[i-1] = float64(i) * eq.coeffs[i]
	}

	return Polynomial{coeffs: cs}
}

// Add returns the coefficient-wise sum; operands of different length are
// aligned at index 0.
func (eq Polynomial) Add(o Polynomial) Polynomial {
	n := len(eq.coeffs)
	if len(o.coeffs) > n {
		n = len(o.coeffs)
	}

	cs := make([]float64, n)

	for i := range cs {
		if i < len(eq.coeffs) {
			cs[i] += eq.coeffs[i]
		}

		if i < len(o.coeffs) {
			cs[i] += o.coeffs[i]
		}
	}

	return Polynomial{coeffs: cs}
}

// Compose substitutes o for x, yielding eq(o(x)). Horner over the coefficient
// sequence with polynomial arithmetic.
func (eq Polynomial) Compose(o Polynomial) Polynomial {
	res := NewPolynomial(0)

	for i := len(eq.coeffs) - 1; i >= 0; i-- {
		res = res.mulPoly(o).Add(NewPolynomial(eq.coeffs[i]))
	}

	return res
}

func (eq Polynomial) mulPoly(o Polynomial) Polynomial {
	if len(eq.coeffs) == 0 || len(o.coeffs) == 0 {
		return NewPolynomial(0)
	}

	cs := make([]float64, len(eq.coeffs)+len(o.coeffs)-1)

	for i, a := range eq.coeffs {
		for j, b := range o.coeffs {
			cs[i+j] += a * b
		}
	}

	return Polynomial{coeffs: cs}
}

// Solve extracts roots in closed form for effective degree <= 2 by degrading
// to the linear or quadratic solver. Higher degrees have no closed form here;
// callers get ErrNoClosedForm and should use Newton or Bisect.
func (eq Polynomial) Solve() (Solutions, error) {
	at := func(i int) float64 {
		if i < len(eq.coeffs) {
			return eq.coeffs[i]
		}

		return 0
	}

	switch eq.EffectiveDegree() {
	case 0:
		return NewLinear(0, at(0)).Solve()
	case 1:
		return NewLinear(at(1), at(0)).Solve()
	case 2:
		return NewQuadratic(at(2), at(1), at(0)).Solve()
	}

	return Solutions{}, ErrNoClosedForm
}

// Newton refines a root from seed until successive iterates differ by less
// than tol, within maxIter iterations. A zero derivative at an iterate stops
// with ErrDerivativeZero; an exhausted budget with ErrNonConvergent.
func (eq Polynomial) Newton(seed, tol float64, maxIter int) (float64, error) {
	d := eq.Derivative()
	x := seed

	for i := 0; i < maxIter; i++ {
		dv := d.ValueAt(x)
		if dv == 0 {
			return 0, ErrDerivativeZero
		}

		next := x - eq.ValueAt(x)/dv

		if numtools.Delta(next, x, tol) {
			return next, nil
		}

		x = next
	}

	return 0, ErrNonConvergent
}

// Bisect refines a root inside [lo, hi]. The bracket must straddle a sign
// change, otherwise the input is outside the method's domain.
func (eq Polynomial) Bisect(lo, hi, tol float64, maxIter int) (float64, error) {
	flo := eq.ValueAt(lo)
	fhi := eq.ValueAt(hi)

	if flo == 0 {
		return lo, nil
	}

	if fhi == 0 {
		return hi, nil
	}

	if lo >= hi || math.Signbit(flo) == math.Signbit(fhi) {
		return 0, numtools.ErrDomain
	}

	for i := 0; i < maxIter; i++ {
		mid := lo + (hi-lo)/2
		fmid := eq.ValueAt(mid)

		if fmid == 0 || hi-lo < tol {
			return mid, nil
		}

		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}

	return 0, ErrNonConvergent
}

func (eq Polynomial) String() string {
	if len(eq.coeffs) == 0 {
		return "f(x) = 0"
	}

	var b strings.Builder

	b.WriteString("f(x) =")

	wrote := false

	for i := len(eq.coeffs) - 1; i >= 0; i-- {
		c := eq.coeffs[i]
		if c == 0 && !(i == 0 && !wrote) {
			continue
		}

		if wrote {
			if c < 0 {
				b.WriteString(" - ")
				c = -c
			} else {
				b.WriteString(" + ")
			}
		} else {
			b.WriteString(" ")
		}

		switch i {
		case 0:
			fmt.Fprintf(&b, "%v", c)
		case 1:
			fmt.Fprintf(&b, "%vx", c)
		default:
			fmt.Fprintf(&b, "%vx^%d", c, i)
		}

		wrote = true
	}

	return b.String()
}

// Package cplx implements a complex number value type whose division reports
// a zero divisor as an error instead of propagating Inf/NaN.
package cplx

import (
	"fmt"
	"math"

	"github.com/sgostarter/libalgebra/numtools"
)

// Number is a complex value of the form Re + Im*i. Operations return new
// values and never mutate their operands.
type Number struct {
	Re float64
	Im float64
}

func New(re, im float64) Number {
	return Number{Re: re, Im: im}
}

// FromReal embeds a real number into the complex plane.
func FromReal(re float64) Number {
	return Number{Re: re}
}

// Unit returns the imaginary unit 0 + 1i.
func Unit() Number {
	return Number{Im: 1}
}

func (n Number) Add(o Number) Number {
	return Number{Re: n.Re + o.Re, Im: n.Im + o.Im}
}

func (n Number) Sub(o Number) Number {
	return Number{Re: n.Re - o.Re, Im: n.Im - o.Im}
}

func (n Number) Mul(o Number) Number {
	return Number{
		Re: n.Re*o.Re - n.Im*o.Im,
		Im: n.Re*o.Im + n.Im*o.Re,
	}
}

func (n Number) Div(o Number) (Number, error) {
	d := numtools.Square(o.Re) + numtools.Square(o.Im)
	if d == 0 {
		return Number{}, numtools.ErrDivisionByZero
	}

	return Number{
		Re: (n.Re*o.Re + n.Im*o.Im) / d,
		Im: (n.Im*o.Re - n.Re*o.Im) / d,
	}, nil
}

// Recip returns 1/n.
func (n Number) Recip() (Number, error) {
	d := numtools.Square(n.Re) + numtools.Square(n.Im)
	if d == 0 {
		return Number{}, numtools.ErrDivisionByZero
	}

	return Number{Re: n.Re / d, Im: -n.Im / d}, nil
}

func (n Number) Conjugate() Number {
	return Number{Re: n.Re, Im: -n.Im}
}

// Abs returns the magnitude sqrt(Re² + Im²).
func (n Number) Abs() float64 {
	return math.Sqrt(numtools.Square(n.Re) + numtools.Square(n.Im))
}

// Arg returns the argument atan2(Im, Re).
func (n Number) Arg() float64 {
	return math.Atan2(n.Im, n.Re)
}

// PowI raises n to an integer power by squaring. A negative power of a zero
// number is a division by zero.
func (n Number) PowI(p int) (Number, error) {
	if p < 0 {
		pos, _ := n.PowI(-p)

		return FromReal(1).Div(pos)
	}

	res := FromReal(1)
	base := n

	for p > 0 {
		if p&1 == 1 {
			res = res.Mul(base)
		}

		base = base.Mul(base)
		p >>= 1
	}

	return res, nil
}

// Exp returns e raised to n.
func (n Number) Exp() Number {
	ea := math.Exp(n.Re)

	return Number{
		Re: ea * math.Cos(n.Im),
		Im: ea * math.Sin(n.Im),
	}
}

func (n Number) IsZero() bool {
	return n.Re == 0 && n.Im == 0
}

// Equal is exact component equality. There is no total order on complex
// numbers; compare magnitudes via Abs where ordering is needed.
func (n Number) Equal(o Number) bool {
	return n.Re == o.Re && n.Im == o.Im
}

// ApproxEqual compares both components within epsilon.
func (n Number) ApproxEqual(o Number, epsilon float64) bool {
	return numtools.Delta(n.Re, o.Re, epsilon) && numtools.Delta(n.Im, o.Im, epsilon)
}

func (n Number) String() string {
	if n.Im < 0 {
		return fmt.Sprintf("%v - %vi", n.Re, -n.Im)
	}

	return fmt.Sprintf("%v + %vi", n.Re, n.Im)
}

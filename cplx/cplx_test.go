package cplx

import (
	"math"
	"testing"

	"github.com/sgostarter/libalgebra/numtools"
	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	c1 := New(4, 2.8)
	c2 := New(2, 3.8)

	assert.True(t, c1.Add(c2).Equal(New(6, 6.6)))
	assert.True(t, c2.Sub(c1).Equal(New(-2, 1)))
	assert.True(t, c1.Mul(c2).ApproxEqual(New(-2.64, 20.8), 1e-10))

	q, err := New(2, 2).Div(New(4, 3))
	assert.Nil(t, err)
	assert.True(t, q.ApproxEqual(New(0.56, 0.08), 1e-10))
}

func TestDivByZero(t *testing.T) {
	_, err := New(1, 1).Div(Number{})
	assert.ErrorIs(t, err, numtools.ErrDivisionByZero)

	_, err = Number{}.Recip()
	assert.ErrorIs(t, err, numtools.ErrDivisionByZero)
}

func TestRecip(t *testing.T) {
	r, err := New(2, -4).Recip()
	assert.Nil(t, err)
	assert.True(t, r.ApproxEqual(New(0.1, 0.2), 1e-12))
}

func TestConjugateAbsArg(t *testing.T) {
	c := New(2, -4)
	assert.True(t, c.Conjugate().Equal(New(2, 4)))

	assert.EqualValues(t, 5, New(3, 4).Abs())
	assert.InDelta(t, math.Pi/2, Unit().Arg(), 1e-12)
}

func TestPowI(t *testing.T) {
	p, err := New(2, -4).PowI(2)
	assert.Nil(t, err)
	assert.True(t, p.ApproxEqual(New(-12, -16), 1e-10))

	p, err = New(3, 1).PowI(0)
	assert.Nil(t, err)
	assert.True(t, p.Equal(FromReal(1)))

	_, err = Number{}.PowI(-1)
	assert.ErrorIs(t, err, numtools.ErrDivisionByZero)
}

func TestExp(t *testing.T) {
	// Euler: e^(i*pi) = -1.
	e := New(0, math.Pi).Exp()
	assert.True(t, e.ApproxEqual(New(-1, 0), 1e-12))
}

func TestString(t *testing.T) {
	assert.EqualValues(t, "2 - 4i", New(2, -4).String())
	assert.EqualValues(t, "2 + 4i", New(2, 4).String())
}

// Package mathvec implements fixed-dimension float64 vectors with
// element-wise arithmetic and left-fold stack operations.
package mathvec

import (
	"fmt"
	"math"
	"strings"

	"github.com/sgostarter/libalgebra/numtools"
)

// Vector is an ordered sequence of float64 components, dimension fixed at
// construction. All operations return new vectors.
type Vector struct {
	values []float64
}

func New(values ...float64) Vector {
	vs := make([]float64, len(values))
	copy(vs, values)

	return Vector{values: vs}
}

// Zero returns the zero vector of the given dimension.
func Zero(dim int) Vector {
	if dim < 0 {
		dim = 0
	}

	return Vector{values: make([]float64, dim)}
}

func (v Vector) Dimension() int {
	return len(v.values)
}

// At returns the component at index i, bounds-checked.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.values) {
		return 0, ErrIndexOutOfRange
	}

	return v.values[i], nil
}

// Values returns a copy of the components.
func (v Vector) Values() []float64 {
	vs := make([]float64, len(v.values))
	copy(vs, v.values)

	return vs
}

func (v Vector) Add(o Vector) (Vector, error) {
	return v.zipWith(o, func(a, b float64) float64 { return a + b })
}

func (v Vector) Sub(o Vector) (Vector, error) {
	return v.zipWith(o, func(a, b float64) float64 { return a - b })
}

// Mul is the element-wise (Hadamard) product.
func (v Vector) Mul(o Vector) (Vector, error) {
	return v.zipWith(o, func(a, b float64) float64 { return a * b })
}

func (v Vector) Scale(k float64) Vector {
	vs := make([]float64, len(v.values))

	for i, x := range v.values {
		vs[i] = k * x
	}

	return Vector{values: vs}
}

func (v Vector) Dot(o Vector) (float64, error) {
	if len(v.values) != len(o.values) {
		return 0, ErrLengthMismatch
	}

	var sum float64

	for i, x := range v.values {
		sum += x * o.values[i]
	}

	return sum, nil
}

// Length is the Euclidean norm.
func (v Vector) Length() float64 {
	var sum float64

	for _, x := range v.values {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Normalize scales the vector to unit length. A zero-length vector cannot be
// normalized.
func (v Vector) Normalize() (Vector, error) {
	l := v.Length()
	if l == 0 {
		return Vector{}, numtools.ErrDivisionByZero
	}

	return v.Scale(1 / l), nil
}

func (v Vector) Equal(o Vector) bool {
	if len(v.values) != len(o.values) {
		return false
	}

	for i, x := range v.values {
		if x != o.values[i] {
			return false
		}
	}

	return true
}

func (v Vector) String() string {
	parts := make([]string, 0, len(v.values))

	for _, x := range v.values {
		parts = append(parts, fmt.Sprintf("%v", x))
	}

	return "( " + strings.Join(parts, "; ") + " )"
}

func (v Vector) zipWith(o Vector, f func(a, b float64) float64) (Vector, error) {
	if len(v.values) != len(o.values) {
		return Vector{}, ErrLengthMismatch
	}

	vs := make([]float64, len(v.values))

	for i, x := range v.values {
		vs[i] = f(x, o.values[i])
	}

	return Vector{values: vs}, nil
}

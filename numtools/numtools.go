package numtools

import "math"

// maxFactorial64 is the largest n with n! representable in an uint64.
const maxFactorial64 = 20

// PowI raises base to an integer power with exponentiation by squaring.
// A negative exponent yields the reciprocal of the positive power, following
// IEEE semantics for a zero base (math.Pow(0, -1) == +Inf).
func PowI(base float64, n int) float64 {
	if n < 0 {
		return 1 / PowI(base, -n)
	}

	res := 1.0

	for n > 0 {
		if n&1 == 1 {
			res *= base
		}

		base *= base
		n >>= 1
	}

	return res
}

// Pow dispatches integer exponents to PowI and everything else to math.Pow.
func Pow(base, exp float64) float64 {
	if exp == math.Trunc(exp) && !math.IsInf(exp, 0) && math.Abs(exp) < math.MaxInt32 {
		return PowI(base, int(exp))
	}

	return math.Pow(base, exp)
}

// Recip returns 1/x.
func Recip(x float64) (float64, error) {
	if x == 0 {
		return 0, ErrDivisionByZero
	}

	return 1 / x, nil
}

// RoundToMult rounds x to the nearest multiple of n, ties away from zero.
func RoundToMult(x, n float64) (float64, error) {
	if n == 0 {
		return 0, ErrDivisionByZero
	}

	return math.Round(x/n) * n, nil
}

// Factorial returns n! exactly.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrDomain
	}

	if n > maxFactorial64 {
		return 0, ErrOverflow
	}

	res := uint64(1)

	for k := uint64(2); k <= uint64(n); k++ {
		res *= k
	}

	return res, nil
}

// DivFactorials computes n!/m! by cancelling the shared prefix instead of
// materializing either factorial, which keeps inputs usable well past the
// point where n! itself overflows. n < m yields the reciprocal of the
// cancelled product.
func DivFactorials(n, m int) (float64, error) {
	if n < 0 || m < 0 {
		return 0, ErrDomain
	}

	if n == m {
		return 1, nil
	}

	lo, hi := m, n
	if lo > hi {
		lo, hi = hi, lo
	}

	res := 1.0

	for k := lo + 1; k <= hi; k++ {
		res *= float64(k)

		if math.IsInf(res, 0) {
			return 0, ErrOverflow
		}
	}

	if n < m {
		return 1 / res, nil
	}

	return res, nil
}

// Delta reports whether a and b differ by no more than epsilon. It is the
// only sanctioned approximate-equality check in the library.
func Delta(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func Square(x float64) float64 {
	return x * x
}

func Cube(x float64) float64 {
	return x * x * x
}

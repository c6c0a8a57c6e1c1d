package mathvec

import "math"

// Accumulate is a left fold that keeps every intermediate aggregate: element
// i of the output depends only on elements 0..=i of the input. An empty input
// yields an empty output.
func Accumulate[T any](in []T, combine func(acc, x T) T) []T {
	out := make([]T, 0, len(in))

	for i, x := range in {
		if i == 0 {
			out = append(out, x)

			continue
		}

		out = append(out, combine(out[i-1], x))
	}

	return out
}

func CumSum(in []float64) []float64 {
	return Accumulate(in, func(acc, x float64) float64 { return acc + x })
}

func CumProd(in []float64) []float64 {
	return Accumulate(in, func(acc, x float64) float64 { return acc * x })
}

func RunningMin(in []float64) []float64 {
	return Accumulate(in, math.Min)
}

func RunningMax(in []float64) []float64 {
	return Accumulate(in, math.Max)
}

// CumSumVectors folds vector addition over the sequence. All vectors must
// share one dimension.
func CumSumVectors(in []Vector) ([]Vector, error) {
	out := make([]Vector, 0, len(in))

	for i, v := range in {
		if i == 0 {
			out = append(out, New(v.values...))

			continue
		}

		s, err := out[i-1].Add(v)
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}

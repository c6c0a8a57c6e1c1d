package equations

import (
	"fmt"

	"github.com/sgostarter/libalgebra/cplx"
)

// SolutionKind tags the outcome of solving an equation. "No real solution"
// and "infinitely many solutions" are legitimate outcomes, not errors.
type SolutionKind int

const (
	SolutionNone SolutionKind = iota
	SolutionInfinite
	SolutionOneReal
	SolutionRepeatedReal
	SolutionTwoReal
	SolutionComplexPair
)

func (k SolutionKind) String() string {
	switch k {
	case SolutionNone:
		return "none"
	case SolutionInfinite:
		return "infinite"
	case SolutionOneReal:
		return "one-real"
	case SolutionRepeatedReal:
		return "repeated-real"
	case SolutionTwoReal:
		return "two-real"
	case SolutionComplexPair:
		return "complex-pair"
	}

	return "unknown"
}

// Solutions is the tagged result of Solve. Which fields are meaningful
// depends on Kind:
//   - SolutionOneReal, SolutionRepeatedReal: X1 (a repeated root is stored
//     once, X2 stays zero).
//   - SolutionTwoReal: X1 and X2.
//   - SolutionComplexPair: Z1 and Z2, complex conjugates.
//   - SolutionNone, SolutionInfinite: no fields.
type Solutions struct {
	Kind SolutionKind

	X1, X2 float64
	Z1, Z2 cplx.Number
}

func NoSolutions() Solutions {
	return Solutions{Kind: SolutionNone}
}

func InfiniteSolutions() Solutions {
	return Solutions{Kind: SolutionInfinite}
}

func OneRealSolution(x float64) Solutions {
	return Solutions{Kind: SolutionOneReal, X1: x}
}

func RepeatedSolution(x float64) Solutions {
	return Solutions{Kind: SolutionRepeatedReal, X1: x}
}

func TwoRealSolutions(x1, x2 float64) Solutions {
	return Solutions{Kind: SolutionTwoReal, X1: x1, X2: x2}
}

// ComplexSolutions builds the conjugate pair z, conj(z).
func ComplexSolutions(z cplx.Number) Solutions {
	return Solutions{Kind: SolutionComplexPair, Z1: z, Z2: z.Conjugate()}
}

// Roots lists the real roots carried by the result; empty for the none,
// infinite and complex-pair kinds.
func (s Solutions) Roots() []float64 {
	switch s.Kind {
	case SolutionOneReal, SolutionRepeatedReal:
		return []float64{s.X1}
	case SolutionTwoReal:
		return []float64{s.X1, s.X2}
	}

	return nil
}

func (s Solutions) String() string {
	switch s.Kind {
	case SolutionNone:
		return "no solution"
	case SolutionInfinite:
		return "infinite solutions"
	case SolutionOneReal:
		return fmt.Sprintf("x = %v", s.X1)
	case SolutionRepeatedReal:
		return fmt.Sprintf("x = %v (repeated)", s.X1)
	case SolutionTwoReal:
		return fmt.Sprintf("x1 = %v, x2 = %v", s.X1, s.X2)
	case SolutionComplexPair:
		return fmt.Sprintf("x1 = %v, x2 = %v", s.Z1, s.Z2)
	}

	return "unknown"
}

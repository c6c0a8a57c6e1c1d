package equations

import "errors"

var (
	// ErrNoClosedForm is returned by Solve for effective degree >= 3; use
	// Newton or Bisect for those.
	ErrNoClosedForm = errors.New("equations: no closed-form solver for this degree")

	ErrNonConvergent  = errors.New("equations: iteration budget exhausted before convergence")
	ErrDerivativeZero = errors.New("equations: derivative is zero at iterate")
)

package numtools

import "errors"

var (
	ErrDivisionByZero = errors.New("numtools: division by zero")
	ErrDomain         = errors.New("numtools: input out of domain")
	ErrOverflow       = errors.New("numtools: result overflows")
)

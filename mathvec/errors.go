package mathvec

import "errors"

var (
	ErrLengthMismatch  = errors.New("mathvec: dimensions do not match")
	ErrIndexOutOfRange = errors.New("mathvec: index out of range")
)

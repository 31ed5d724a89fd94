package value

import "github.com/zeebo/errs"

// Error is the class for all errors originating in this package.
var Error = errs.Class("value")

var (
	ErrDivisionByZero = Error.New("division by zero")
	ErrOverflow       = Error.New("overflow")
)

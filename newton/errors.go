package newton

import "github.com/zeebo/errs"

// Error is the class for all errors originating in this package.
var Error = errs.Class("newton")

var (
	ErrNegativeSqrt = Error.New("square root of negative")
	ErrZeroInverse  = Error.New("inverse of zero")
)

package estimator

import "errors"

var (
	// ErrInvalidInput marks out-of-range usage, offset, solar hours, price or loan terms.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDivideByZero marks a projection whose average annual cash flow is not positive.
	ErrDivideByZero = errors.New("average annual cash flow is zero")
)

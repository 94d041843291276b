package sparse

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch signals that two operand matrices have shapes
// incompatible with the requested operation.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrInvalidDim signals a non-positive row or column count.
var ErrInvalidDim = errors.New("matrix dimensions must be positive")

// FormatError signals malformed matrix text, with the offending line.
type FormatError struct {
	Line int
	Msg  string
	Err  error
}

func (e FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e FormatError) Unwrap() error { return e.Err }

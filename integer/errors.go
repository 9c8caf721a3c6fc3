package integer

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("integer")

var (
	// ErrInvalidFormat is matched by every text parsing failure.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidEncoding is matched by every binary decoding failure.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// FormatError describes text that is not a decimal integer.
type FormatError struct {
	Input  string
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %s at offset %d in %q", ErrInvalidFormat, e.Reason, e.Offset, e.Input)
}

// Unwrap allows errors.Is(err, ErrInvalidFormat).
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

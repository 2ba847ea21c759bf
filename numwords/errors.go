package numwords

import (
	"errors"
	"fmt"
)

// Error types for conversion failures
var (
	ErrValueTooLarge       = errors.New("number is too large to convert")
	ErrInvalidInput        = errors.New("input cannot be converted")
	ErrUnsupportedLanguage = errors.New("language is not supported")
	ErrUnknownMode         = errors.New("conversion mode is not known")
)

// ConversionError carries the operation and offending input along with
// the underlying cause, so callers can report what failed without losing
// the error category.
type ConversionError struct {
	BaseErr error  // the underlying error type
	Op      string // the conversion operation that failed
	Input   string // the input as given by the caller
}

// Make sure ConversionError implements the error interface
func (e ConversionError) Error() string {
	return fmt.Sprintf("%v in %s for input %q", e.BaseErr, e.Op, e.Input)
}

// Allow unwrapping to get the base error
func (e ConversionError) Unwrap() error {
	return e.BaseErr
}

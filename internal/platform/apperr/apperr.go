package apperr

import (
	"errors"
	"fmt"
)

// ValidationError marks input that failed boundary validation. Handlers map
// it to 422 Unprocessable Entity, distinct from missing references (404) and
// upstream failures (500).
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Validation builds a ValidationError with a formatted message.
func Validation(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

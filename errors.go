package aic

import "errors"

// Kind is the machine-usable classification of a validation failure.
type Kind string

const (
	InvalidFormat   Kind = "invalid_format"
	InvalidLength   Kind = "invalid_length"
	InvalidChecksum Kind = "invalid_checksum"
)

// ValidationError is the error type returned by every validation and
// conversion failure in this package. Kind is the coarse classification,
// Message describes the specific violation.
type ValidationError struct {
	Kind    Kind
	Message string
}

func newError(kind Kind, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Message: msg}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "aic: " + string(e.Kind) + ": " + e.Message
}

// Is matches by Kind, so errors.Is(err, ErrInvalidFormat) holds for any
// format failure regardless of its message.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for the three failure kinds. Use with errors.Is.
var (
	ErrInvalidFormat   = newError(InvalidFormat, "invalid format")
	ErrInvalidLength   = newError(InvalidLength, "invalid length")
	ErrInvalidChecksum = newError(InvalidChecksum, "check digit mismatch")
)

// IsValidationError reports whether err is (or wraps) a ValidationError of
// any kind. Callers that only care whether a code was rejected, not why,
// should check this rather than the individual sentinels.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

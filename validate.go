package aic

import (
	"fmt"
	"strings"
)

// Compact normalizes a code for validation: embedded spaces are removed,
// letters are uppercased and surrounding whitespace is trimmed. Compact is
// idempotent.
func Compact(code string) string {
	return strings.TrimSpace(strings.ToUpper(clean(code, " ")))
}

// ValidateBase10 checks that code is a well-formed 9-digit decimal form:
// exactly nine decimal digits, a leading '0' (the scheme reserves the first
// position) and a correct trailing check digit. It fails fast on the first
// violated precondition.
func ValidateBase10(code string) error {
	if len(code) != 9 {
		return newError(InvalidLength, fmt.Sprintf("base10 form must be 9 digits, got %d", len(code)))
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return newError(InvalidFormat, fmt.Sprintf("invalid digit %q at position %d", code[i], i))
		}
	}
	if code[0] != '0' {
		return newError(InvalidFormat, "base10 form must start with '0'")
	}
	if !CheckBase10Checksum(code) {
		return ErrInvalidChecksum
	}
	return nil
}

// ValidateBase32 checks that code is a well-formed 6-character form. The
// charset check and the numeral conversion both reject characters outside
// the alphabet; the converted decimal string is then held to the full
// base10 rules, so a value that expands past nine digits or clobbers the
// leading zero is rejected rather than wrapped.
func ValidateBase32(code string) error {
	if len(code) != 6 {
		return newError(InvalidLength, fmt.Sprintf("base32 form must be 6 characters, got %d", len(code)))
	}
	converted, err := FromBase32(code)
	if err != nil {
		return err
	}
	return ValidateBase10(converted)
}

// Validate cleans code, detects its form by length (6 characters means
// base32, anything else is held to the base10 rules) and returns the
// canonical 9-digit base10 representation.
func Validate(code string) (string, error) {
	code = Compact(code)
	if len(code) == 6 {
		if err := ValidateBase32(code); err != nil {
			return "", err
		}
		return FromBase32(code)
	}
	if err := ValidateBase10(code); err != nil {
		return "", err
	}
	return code, nil
}

// IsValid reports whether code is a valid AIC in either form. It is the
// only entry point that turns validation failures into a boolean; any
// non-validation error would still propagate as a panic rather than be
// masked.
func IsValid(code string) bool {
	_, err := Validate(code)
	if err == nil {
		return true
	}
	if !IsValidationError(err) {
		panic(err)
	}
	return false
}

package aic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pharmakit/aic/base32"
)

// FromBase32 converts the 6-character form of a code to its 9-digit decimal
// form, left-padded with zeros. It is a pure numeral conversion: no length
// or checksum validation is performed, and a value too large for nine
// digits simply yields a longer string. Lookup is case-insensitive.
func FromBase32(code string) (string, error) {
	n, err := base32.Decode(code)
	if err != nil {
		return "", newError(InvalidFormat, err.Error())
	}
	return fmt.Sprintf("%09d", n), nil
}

// ToBase32 converts the 9-digit decimal form of a code to its 6-character
// form, left-padded with the '0' symbol. The input is read as a plain
// non-negative integer (leading zeros ignored); beyond that it is not
// validated as a code.
func ToBase32(code string) (string, error) {
	n, err := strconv.ParseUint(code, 10, 63)
	if err != nil {
		return "", newError(InvalidFormat, fmt.Sprintf("%q is not a non-negative decimal number", code))
	}
	return padBase32(base32.Encode(int64(n))), nil
}

func padBase32(s string) string {
	if len(s) >= 6 {
		return s
	}
	return strings.Repeat("0", 6-len(s)) + s
}

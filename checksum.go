package aic

import "fmt"

// CalcCheckDigit computes the trailing check digit of the base10 form from
// the first eight characters of code. A ninth character, if present, is
// ignored, so both the 8-digit registration part and a full 9-digit code
// are accepted.
//
// Digits are weighted 1,2,1,2,... from position 0 and each weighted product
// is folded to a single digit as p/10 + p%10; products never exceed 18, so
// one fold suffices. The check digit is the folded sum modulo 10.
func CalcCheckDigit(code string) (string, error) {
	if len(code) != 8 && len(code) != 9 {
		return "", newError(InvalidLength, fmt.Sprintf("need 8 or 9 digits, got %d", len(code)))
	}
	sum := 0
	for i := 0; i < 8; i++ {
		c := code[i]
		if c < '0' || c > '9' {
			return "", newError(InvalidFormat, fmt.Sprintf("invalid digit %q at position %d", c, i))
		}
		p := int(c - '0')
		if i%2 == 1 {
			p *= 2
		}
		sum += p/10 + p%10
	}
	return string(rune('0' + sum%10)), nil
}

// CheckBase10Checksum reports whether the last character of a 9-digit code
// equals the check digit computed from its first eight digits.
func CheckBase10Checksum(code string) bool {
	if len(code) != 9 {
		return false
	}
	d, err := CalcCheckDigit(code)
	if err != nil {
		return false
	}
	return d == code[8:]
}

// Package base32 implements the 32-symbol numeral system used by the short
// form of AIC codes. The alphabet is the ten decimal digits followed by the
// consonants of the Latin alphabet; vowels are excluded so that no encoded
// value spells a word and no symbol is easily confused with another.
package base32

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Alphabet is the ordered symbol table. The index of a symbol is its
// numeral value.
const Alphabet = "0123456789BCDFGHJKLMNPQRSTUVWXYZ"

const radix = int64(len(Alphabet))

// Encode returns the base-32 representation of n, most-significant digit
// first, without padding. n must be non-negative.
func Encode(n int64) string {
	if n == 0 {
		return "0"
	}
	buf := make([]byte, 0, 13)
	for n > 0 {
		buf = append(buf, Alphabet[n%radix])
		n /= radix
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Decode parses s as a big-endian base-32 numeral. Lookup is
// case-insensitive: each character is uppercased before it is mapped to its
// value.
func Decode(s string) (int64, error) {
	if len(s) == 0 {
		return 0, errors.New("base32: empty string")
	}
	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		v := strings.IndexByte(Alphabet, c)
		if v < 0 {
			return 0, fmt.Errorf("base32: invalid character %q", s[i])
		}
		if n > (math.MaxInt64-int64(v))/radix {
			return 0, fmt.Errorf("base32: value of %q overflows int64", s)
		}
		n = n*radix + int64(v)
	}
	return n, nil
}

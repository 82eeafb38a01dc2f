// Package aic validates and converts AIC codes, the identifiers assigned to
// pharmaceutical products authorised for the Italian market (Gazzetta
// Ufficiale Serie Generale n.165 del 18-07-2014, attachment A).
//
// A code has two interchangeable textual forms: the canonical 9-digit
// decimal form, whose first digit is always '0' and whose last digit is a
// weighted-sum check digit, and a 6-character form over a 32-symbol
// alphabet that encodes the same number. Validate, IsValid and Parse accept
// either form; Code carries a validated value and renders both.
package aic

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/pharmakit/aic/base32"
)

// Compile-time interface checks for Code
var (
	_ fmt.Stringer               = Code(0)
	_ driver.Valuer              = Code(0)
	_ sql.Scanner                = (*Code)(nil)
	_ encoding.TextMarshaler     = Code(0)
	_ encoding.TextUnmarshaler   = (*Code)(nil)
	_ encoding.BinaryMarshaler   = Code(0)
	_ encoding.BinaryUnmarshaler = (*Code)(nil)
	_ json.Marshaler             = Code(0)
	_ json.Unmarshaler           = (*Code)(nil)
	_ gob.GobEncoder             = Code(0)
	_ gob.GobDecoder             = (*Code)(nil)
)

type Format string

const (
	FormatBase10 Format = "base10"
	FormatBase32 Format = "base32"
)

// DefaultFormat controls the form used by String, MarshalText and
// MarshalJSON. Set it once at startup if the short form is preferred.
var DefaultFormat = FormatBase10

// Code is an AIC code held as its numeric value. The leading-zero rule of
// the decimal form bounds valid codes below 10^8, so the value fits an
// int32. The zero value renders as "000000000", which is itself a
// syntactically valid code; Nil is only meaningful as a sentinel.
type Code int32

var Nil Code = 0

func (c Code) Int32() int32 {
	return int32(c)
}

func (c Code) IsNil() bool {
	return c == Nil
}

// Bytes returns the code as a 4-byte big-endian slice.
func (c Code) Bytes() []byte {
	return []byte{byte(c >> 24), byte(c >> 16), byte(c >> 8), byte(c)}
}

// Hash returns the code as a 4-byte big-endian array (for hex formatting).
func (c Code) Hash() [4]byte {
	return [4]byte{byte(c >> 24), byte(c >> 16), byte(c >> 8), byte(c)}
}

func (c Code) String() string {
	return c.Format(DefaultFormat)
}

func (c Code) Format(f Format) string {
	switch f {
	case FormatBase32:
		return c.Base32()
	default:
		return c.Base10()
	}
}

// Base10 returns the canonical 9-digit decimal form.
func (c Code) Base10() string {
	return fmt.Sprintf("%09d", int32(c))
}

// Base32 returns the 6-character short form.
func (c Code) Base32() string {
	return padBase32(base32.Encode(int64(c)))
}

// Registration returns the 8-digit registration number, i.e. the code
// without its check digit.
func (c Code) Registration() int32 {
	return int32(c) / 10
}

// CheckDigit returns the trailing check digit of the decimal form.
func (c Code) CheckDigit() string {
	return c.Base10()[8:]
}

// New derives a full code from an 8-digit registration number by appending
// the computed check digit.
func New(registration int32) (Code, error) {
	if registration < 0 || registration > 9999999 {
		return Nil, newError(InvalidFormat, fmt.Sprintf("registration number %d out of range", registration))
	}
	d, err := CalcCheckDigit(fmt.Sprintf("%08d", registration))
	if err != nil {
		return Nil, err
	}
	return Code(registration)*10 + Code(d[0]-'0'), nil
}

// Parse parses a code in either form, cleaning it first. The input is
// validated in full: length, charset, leading zero and check digit.
func Parse(s string) (Code, error) {
	canonical, err := Validate(s)
	if err != nil {
		return Nil, err
	}
	n, err := strconv.ParseInt(canonical, 10, 32)
	if err != nil {
		return Nil, newError(InvalidFormat, err.Error())
	}
	return Code(n), nil
}

// FromString returns a Code parsed from the input string.
// Alias for Parse.
func FromString(s string) (Code, error) {
	return Parse(s)
}

// FromStringOrNil returns a Code parsed from the input string.
// Returns Nil on error.
func FromStringOrNil(s string) Code {
	c, err := Parse(s)
	if err != nil {
		return Nil
	}
	return c
}

// FromInt64 returns a Code from its numeric value, enforcing the range
// implied by the leading-zero rule and the check digit.
func FromInt64(n int64) (Code, error) {
	if n < 0 || n > 99999999 {
		return Nil, newError(InvalidFormat, fmt.Sprintf("value %d out of range for a code", n))
	}
	c := Code(n)
	if !CheckBase10Checksum(c.Base10()) {
		return Nil, ErrInvalidChecksum
	}
	return c, nil
}

// FromBytes returns a Code from a 4-byte big-endian slice.
func FromBytes(b []byte) (Code, error) {
	if len(b) != 4 {
		return Nil, fmt.Errorf("aic: code must be exactly 4 bytes, got %d", len(b))
	}
	n := int64(b[0])<<24 | int64(b[1])<<16 | int64(b[2])<<8 | int64(b[3])
	return FromInt64(n)
}

// FromBytesOrNil returns a Code from a 4-byte slice.
// Returns Nil on error.
func FromBytesOrNil(b []byte) Code {
	c, err := FromBytes(b)
	if err != nil {
		return Nil
	}
	return c
}

// Must panics if err is not nil
func Must(c Code, err error) Code {
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements encoding.TextMarshaler
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Code) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (c Code) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Code) UnmarshalJSON(b []byte) error {
	// Handle null
	if string(b) == "null" {
		*c = Nil
		return nil
	}
	// Handle numeric value
	if len(b) > 0 && b[0] != '"' {
		n, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return errors.New("aic: invalid JSON value")
		}
		parsed, err := FromInt64(n)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	// Handle quoted string
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.New("aic: invalid JSON string")
	}
	return c.UnmarshalText(b[1 : len(b)-1])
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c Code) MarshalBinary() ([]byte, error) {
	return c.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Code) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// GobEncode implements gob.GobEncoder.
func (c Code) GobEncode() ([]byte, error) {
	return c.MarshalBinary()
}

// GobDecode implements gob.GobDecoder.
func (c *Code) GobDecode(data []byte) error {
	return c.UnmarshalBinary(data)
}

// Value implements driver.Valuer for database storage
func (c Code) Value() (driver.Value, error) {
	return int64(c), nil
}

// Scan implements sql.Scanner for database retrieval. Numeric and textual
// sources are re-validated; a code never enters the process unchecked.
func (c *Code) Scan(src interface{}) error {
	if src == nil {
		*c = Nil
		return nil
	}
	switch v := src.(type) {
	case Code:
		*c = v
		return nil
	case int64:
		parsed, err := FromInt64(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case []byte:
		return c.UnmarshalText(v)
	case string:
		return c.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("aic: cannot scan %T", src)
	}
}

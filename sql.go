package aic

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
)

// NullCode can be used with the standard sql package to represent a
// Code value that can be NULL in the database.
type NullCode struct {
	Code  Code
	Valid bool
}

// Compile-time interface checks for NullCode
var (
	_ driver.Valuer            = NullCode{}
	_ sql.Scanner              = (*NullCode)(nil)
	_ json.Marshaler           = NullCode{}
	_ json.Unmarshaler         = (*NullCode)(nil)
	_ encoding.TextMarshaler   = NullCode{}
	_ encoding.TextUnmarshaler = (*NullCode)(nil)
)

// Value implements the driver.Valuer interface.
func (n NullCode) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Code.Value()
}

// Scan implements the sql.Scanner interface.
func (n *NullCode) Scan(src interface{}) error {
	if src == nil {
		n.Code, n.Valid = Nil, false
		return nil
	}

	err := n.Code.Scan(src)
	n.Valid = (err == nil)
	return err
}

var nullJSON = []byte("null")

// MarshalJSON marshals the NullCode as null or the nested Code as a string.
func (n NullCode) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return nullJSON, nil
	}
	return n.Code.MarshalJSON()
}

// UnmarshalJSON unmarshals a NullCode.
func (n *NullCode) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		n.Code, n.Valid = Nil, false
		return nil
	}
	err := n.Code.UnmarshalJSON(b)
	n.Valid = (err == nil)
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (n NullCode) MarshalText() ([]byte, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Code.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NullCode) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		n.Code, n.Valid = Nil, false
		return nil
	}
	err := n.Code.UnmarshalText(b)
	n.Valid = (err == nil)
	return err
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for address and configuration checks
var (
	ErrInvalidFormat   = errors.New("invalid address format")
	ErrOctetOutOfRange = errors.New("octet out of range")
	ErrInvalidCIDR     = errors.New("invalid CIDR")
	ErrVlanOutOfRange  = errors.New("VLAN out of range")
	ErrUnsupportedMode = errors.New("unsupported mode")
)

// AddressError describes why a dotted-quad string was rejected
type AddressError struct {
	Input string
	Octet string // offending part, empty for format errors
	Err   error
}

func (e *AddressError) Error() string {
	if e.Octet != "" {
		return fmt.Sprintf("%v: %q in %q (expected 0-255)", e.Err, e.Octet, e.Input)
	}
	return fmt.Sprintf("%v: %q (expected 4 dot-separated octets)", e.Err, e.Input)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}

// FieldError reports a single failing field of a configuration request
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

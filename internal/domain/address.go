package domain

import (
	"strconv"
	"strings"
)

// Address is an IPv4 address packed big-endian into 32 bits
type Address uint32

// ParseAddress converts a dotted-quad string into an Address.
// Every part must be a plain decimal number in [0,255]; nothing is coerced.
func ParseAddress(text string) (Address, error) {
	parts := strings.Split(text, ".")
	if len(parts) != 4 {
		return 0, &AddressError{Input: text, Err: ErrInvalidFormat}
	}

	var addr Address
	for _, part := range parts {
		octet, ok := parseOctet(part)
		if !ok {
			return 0, &AddressError{Input: text, Octet: part, Err: ErrOctetOutOfRange}
		}
		addr = addr<<8 | Address(octet)
	}

	return addr, nil
}

// parseOctet accepts 1-3 ASCII digits with a value up to 255
func parseOctet(part string) (uint8, bool) {
	if part == "" || len(part) > 3 {
		return 0, false
	}
	for i := 0; i < len(part); i++ {
		if part[i] < '0' || part[i] > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(part)
	if err != nil || n > 255 {
		return 0, false
	}
	return uint8(n), true
}

// Octets returns the four groups, most significant first
func (a Address) Octets() [4]uint8 {
	return [4]uint8{uint8(a >> 24), uint8(a >> 16), uint8(a >> 8), uint8(a)}
}

// String formats the address in dotted-quad notation
func (a Address) String() string {
	o := a.Octets()
	var b strings.Builder
	b.Grow(15)
	for i, octet := range o {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(octet)))
	}
	return b.String()
}

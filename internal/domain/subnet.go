package domain

import "fmt"

// MaxPrefix is the number of bits in an IPv4 address
const MaxPrefix = 32

// Subnet holds the values derived from an address and prefix length.
// UsableFirst and UsableLast are Network+1 and Broadcast-1 in wrapping
// 32-bit arithmetic; for /31 and /32 they are reported as computed.
type Subnet struct {
	Address     Address
	Prefix      int
	Mask        Address
	Network     Address
	Broadcast   Address
	UsableFirst Address
	UsableLast  Address
}

// Mask returns the netmask with the top prefix bits set.
// Prefixes outside 0-32 are clamped.
func Mask(prefix int) Address {
	switch {
	case prefix <= 0:
		return 0
	case prefix >= MaxPrefix:
		return Address(^uint32(0))
	}
	return Address(^uint32(0) << (MaxPrefix - prefix))
}

// NewSubnet derives the subnet containing addr
func NewSubnet(addr Address, prefix int) (*Subnet, error) {
	if prefix < 0 || prefix > MaxPrefix {
		return nil, fmt.Errorf("%w: prefix length %d not in 0-%d", ErrInvalidCIDR, prefix, MaxPrefix)
	}

	mask := Mask(prefix)
	network := addr & mask
	broadcast := network | ^mask

	return &Subnet{
		Address:     addr,
		Prefix:      prefix,
		Mask:        mask,
		Network:     network,
		Broadcast:   broadcast,
		UsableFirst: network + 1,
		UsableLast:  broadcast - 1,
	}, nil
}

// Size returns the number of addresses in the block
func (s *Subnet) Size() uint64 {
	return uint64(1) << (MaxPrefix - s.Prefix)
}

// CIDR returns the network in address/prefix notation
func (s *Subnet) CIDR() string {
	return fmt.Sprintf("%s/%d", s.Network, s.Prefix)
}

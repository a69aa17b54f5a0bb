package domain

import "strings"

// Mode is a switchport mode
type Mode string

const (
	ModeAccess Mode = "access"
	ModeTrunk  Mode = "trunk"
)

// Usable 802.1Q VLAN range; 0 and 4095 are reserved
const (
	MinVlanID = 1
	MaxVlanID = 4094
)

// Supported reports whether the mode is one the validator understands
func (m Mode) Supported() bool {
	return m == ModeAccess || m == ModeTrunk
}

// ConfigurationRequest describes one switch port and the host behind it
type ConfigurationRequest struct {
	Port       string `yaml:"port" json:"port"`
	Mode       Mode   `yaml:"mode" json:"mode"`
	VlanID     int    `yaml:"vlan" json:"vlan"`
	IP         string `yaml:"ip" json:"ip"`
	SubnetMask string `yaml:"subnet_mask" json:"subnet_mask"`
	Gateway    string `yaml:"gateway" json:"gateway"`
}

// ValidationResult is the outcome of validating a ConfigurationRequest.
// Messages always contain the rendered configuration followed by a
// closing verdict line.
type ValidationResult struct {
	IsValid  bool
	Messages []string
	Errors   []error
}

// Report joins the messages into displayable text
func (r *ValidationResult) Report() string {
	return strings.Join(r.Messages, "\n")
}

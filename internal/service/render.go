package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dotX12/netkit/internal/domain"
)

// OutputFormat selects how results are written
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat validates a format name
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputText, OutputJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (must be text or json)", s)
	}
}

// SubnetView is the printable form of a subnet
type SubnetView struct {
	CIDR        string `json:"cidr"`
	Address     string `json:"address"`
	Prefix      int    `json:"prefix"`
	Mask        string `json:"mask"`
	Network     string `json:"network"`
	Broadcast   string `json:"broadcast"`
	UsableFirst string `json:"usable_first"`
	UsableLast  string `json:"usable_last"`
	Size        uint64 `json:"size"`
}

// NewSubnetView formats every derived value of s
func NewSubnetView(s *domain.Subnet) SubnetView {
	return SubnetView{
		CIDR:        s.CIDR(),
		Address:     s.Address.String(),
		Prefix:      s.Prefix,
		Mask:        s.Mask.String(),
		Network:     s.Network.String(),
		Broadcast:   s.Broadcast.String(),
		UsableFirst: s.UsableFirst.String(),
		UsableLast:  s.UsableLast.String(),
		Size:        s.Size(),
	}
}

// RenderSubnets writes the subnets in the requested format
func RenderSubnets(w io.Writer, subnets []*domain.Subnet, format OutputFormat) error {
	views := make([]SubnetView, 0, len(subnets))
	for _, s := range subnets {
		views = append(views, NewSubnetView(s))
	}

	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	for i, v := range views {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			"%s/%d\nSubnet Mask: %s\nNetwork Address: %s\nBroadcast Address: %s\nUsable Range: %s – %s\n",
			v.Address, v.Prefix, v.Mask, v.Network, v.Broadcast, v.UsableFirst, v.UsableLast,
		); err != nil {
			return err
		}
	}
	return nil
}

// validationView is the JSON form of a validation result
type validationView struct {
	Report  string   `json:"report"`
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}

// RenderValidation writes a validation report in the requested format
func RenderValidation(w io.Writer, result *domain.ValidationResult, format OutputFormat) error {
	if format == OutputJSON {
		view := validationView{
			Report:  result.Report(),
			IsValid: result.IsValid,
		}
		for _, err := range result.Errors {
			view.Errors = append(view.Errors, err.Error())
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	_, err := fmt.Fprintln(w, result.Report())
	return err
}

package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dotX12/netkit/internal/domain"

	"github.com/rs/zerolog"
)

const cidrExample = "192.168.1.0/24"

// Reasons a prefix length is rejected
var (
	ErrPrefixEmpty      = errors.New("empty")
	ErrPrefixNotDecimal = errors.New("not a decimal number")
	ErrPrefixRange      = fmt.Errorf("not in 0-%d", domain.MaxPrefix)
)

// SubnetCalculator derives subnet values from addresses and prefix lengths
type SubnetCalculator struct {
	logger zerolog.Logger
}

// NewSubnetCalculator creates a new subnet calculator
func NewSubnetCalculator(logger zerolog.Logger) *SubnetCalculator {
	return &SubnetCalculator{
		logger: logger,
	}
}

// Compute parses addressText and derives its subnet for the given prefix
func (c *SubnetCalculator) Compute(addressText string, prefix int) (*domain.Subnet, error) {
	addr, err := domain.ParseAddress(addressText)
	if err != nil {
		return nil, fmt.Errorf("%w: address: %w (example: %s)", domain.ErrInvalidCIDR, err, cidrExample)
	}

	subnet, err := domain.NewSubnet(addr, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w (example: %s)", err, cidrExample)
	}

	c.logger.Debug().
		Str("address", addr.String()).
		Int("prefix", prefix).
		Str("network", subnet.Network.String()).
		Str("broadcast", subnet.Broadcast.String()).
		Msg("Subnet computed")

	if prefix >= domain.MaxPrefix-1 {
		c.logger.Debug().
			Int("prefix", prefix).
			Msg("Usable range reported as computed for /31 and /32")
	}

	return subnet, nil
}

// ComputeCIDR computes a subnet from "address/prefix" notation
func (c *SubnetCalculator) ComputeCIDR(input string) (*domain.Subnet, error) {
	input = strings.TrimSpace(input)

	parts := strings.Split(input, "/")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q must be address/prefix (example: %s)", domain.ErrInvalidCIDR, input, cidrExample)
	}

	prefix, err := parsePrefix(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: prefix %q: %w (example: %s)", domain.ErrInvalidCIDR, parts[1], err, cidrExample)
	}

	return c.Compute(parts[0], prefix)
}

// parsePrefix accepts only plain decimal digits
func parsePrefix(text string) (int, error) {
	if text == "" {
		return 0, ErrPrefixEmpty
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, ErrPrefixNotDecimal
		}
	}

	prefix, err := strconv.Atoi(text)
	if err != nil || prefix > domain.MaxPrefix {
		return 0, ErrPrefixRange
	}
	return prefix, nil
}

// BatchResult collects the outcome of computing many CIDR entries
type BatchResult struct {
	Subnets []*domain.Subnet
	Failed  []BatchFailure
}

// BatchFailure pairs a rejected entry with its error
type BatchFailure struct {
	Input string
	Err   error
}

// ComputeBatch computes every entry, skipping and recording invalid ones
func (c *SubnetCalculator) ComputeBatch(inputs []string) *BatchResult {
	total := len(inputs)
	c.logger.Info().Int("total", total).Msg("Computing subnets")

	result := &BatchResult{
		Subnets: make([]*domain.Subnet, 0, total),
	}

	for i, input := range inputs {
		subnet, err := c.ComputeCIDR(input)
		if err != nil {
			result.Failed = append(result.Failed, BatchFailure{Input: input, Err: err})
			c.logger.Warn().
				Err(err).
				Str("cidr", input).
				Msg("Skipping invalid entry")
			continue
		}
		result.Subnets = append(result.Subnets, subnet)

		if (i+1)%100 == 0 {
			c.logger.Debug().
				Int("progress", i+1).
				Int("total", total).
				Msg("Progress")
		}
	}

	c.logger.Info().
		Int("computed", len(result.Subnets)).
		Int("errors", len(result.Failed)).
		Msg("Subnets computed")

	return result
}

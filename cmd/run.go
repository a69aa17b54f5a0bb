package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/dotX12/netkit/internal/domain"
	"github.com/dotX12/netkit/internal/service"
)

var (
	errNoCIDR = errors.New("no CIDR given, pass address/prefix arguments or --urls")
	errNoIPv4 = errors.New("no IPv4 entries in the downloaded lists")
)

// computeSubnets writes the subnets of args followed by downloaded entries
// and returns the process exit code. A lone argument given without --urls
// fails fast; anything else is computed as a batch that exits 1 only when
// no entry could be computed.
func computeSubnets(calc *service.SubnetCalculator, w io.Writer, args, downloaded []string, fromURLs bool, format service.OutputFormat) (int, error) {
	if len(args) == 0 && !fromURLs {
		return 1, errNoCIDR
	}

	inputs := make([]string, 0, len(args)+len(downloaded))
	inputs = append(inputs, args...)
	inputs = append(inputs, downloaded...)
	if len(inputs) == 0 {
		return 1, errNoIPv4
	}

	if len(args) == 1 && !fromURLs {
		subnet, err := calc.ComputeCIDR(args[0])
		if err != nil {
			return 1, err
		}
		if err := service.RenderSubnets(w, []*domain.Subnet{subnet}, format); err != nil {
			return 1, fmt.Errorf("failed to write output: %w", err)
		}
		return 0, nil
	}

	result := calc.ComputeBatch(inputs)
	if err := service.RenderSubnets(w, result.Subnets, format); err != nil {
		return 1, fmt.Errorf("failed to write output: %w", err)
	}
	if len(result.Subnets) == 0 {
		return 1, nil
	}
	return 0, nil
}

// lintRequest writes the validation report for req. The exit code is 1
// only for an invalid configuration in strict mode.
func lintRequest(validator *service.ConfigValidator, log zerolog.Logger, w io.Writer, req domain.ConfigurationRequest, format service.OutputFormat, strict bool) (int, error) {
	result := validator.Validate(req)

	if err := service.RenderValidation(w, result, format); err != nil {
		return 1, fmt.Errorf("failed to write output: %w", err)
	}
	if result.IsValid {
		return 0, nil
	}

	for _, e := range result.Errors {
		log.Warn().Err(e).Msg("Invalid field")
	}
	if strict {
		return 1, nil
	}
	return 0, nil
}

// mergeRequest overrides file values with the flags set on the command line
func mergeRequest(base, flags domain.ConfigurationRequest, changed func(name string) bool) domain.ConfigurationRequest {
	if changed("port") {
		base.Port = flags.Port
	}
	if changed("mode") {
		base.Mode = flags.Mode
	}
	if changed("vlan") {
		base.VlanID = flags.VlanID
	}
	if changed("ip") {
		base.IP = flags.IP
	}
	if changed("mask") {
		base.SubnetMask = flags.SubnetMask
	}
	if changed("gateway") {
		base.Gateway = flags.Gateway
	}
	return base
}

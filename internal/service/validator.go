package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dotX12/netkit/internal/domain"

	"github.com/rs/zerolog"
)

// Closing lines of a validation report
const (
	VerdictValid   = "Configuration looks valid."
	VerdictInvalid = "Invalid input: "
)

// Field names used in diagnostics
const (
	FieldIP         = "ip"
	FieldSubnetMask = "subnet mask"
	FieldGateway    = "gateway"
	FieldVlan       = "vlan"
	FieldMode       = "mode"
)

// ConfigValidator lints switch port and host addressing settings.
// It always renders the configuration and reports every failing field.
type ConfigValidator struct {
	logger zerolog.Logger
}

// NewConfigValidator creates a new configuration validator
func NewConfigValidator(logger zerolog.Logger) *ConfigValidator {
	return &ConfigValidator{
		logger: logger,
	}
}

// Validate checks every field of req independently and renders the report
func (v *ConfigValidator) Validate(req domain.ConfigurationRequest) *domain.ValidationResult {
	var errs []error

	addressFields := []struct {
		name  string
		value string
	}{
		{FieldIP, req.IP},
		{FieldSubnetMask, req.SubnetMask},
		{FieldGateway, req.Gateway},
	}
	for _, f := range addressFields {
		if _, err := domain.ParseAddress(f.value); err != nil {
			errs = append(errs, &domain.FieldError{Field: f.name, Value: f.value, Err: err})
		}
	}

	if err := checkVlan(req.VlanID); err != nil {
		errs = append(errs, &domain.FieldError{Field: FieldVlan, Value: strconv.Itoa(req.VlanID), Err: err})
	}

	if !req.Mode.Supported() {
		err := fmt.Errorf("%w: %q (expected %s or %s)", domain.ErrUnsupportedMode, req.Mode, domain.ModeAccess, domain.ModeTrunk)
		errs = append(errs, &domain.FieldError{Field: FieldMode, Value: string(req.Mode), Err: err})
	}

	tb := NewTranscriptBuilder().
		Interface(req.Port).
		SwitchportMode(req.Mode).
		Vlan(req.Mode, req.VlanID).
		NoShutdown().
		HostAddressing(req.IP, req.SubnetMask, req.Gateway).
		Line("").
		Line(verdict(errs))

	result := &domain.ValidationResult{
		IsValid:  len(errs) == 0,
		Messages: tb.Build(),
		Errors:   errs,
	}

	v.logger.Debug().
		Str("port", req.Port).
		Str("mode", string(req.Mode)).
		Int("vlan", req.VlanID).
		Bool("valid", result.IsValid).
		Int("errors", len(errs)).
		Msg("Configuration validated")

	return result
}

func checkVlan(id int) error {
	if id < domain.MinVlanID || id > domain.MaxVlanID {
		return fmt.Errorf("%w: %d (expected %d-%d)", domain.ErrVlanOutOfRange, id, domain.MinVlanID, domain.MaxVlanID)
	}
	return nil
}

func verdict(errs []error) string {
	if len(errs) == 0 {
		return VerdictValid
	}

	reasons := make([]string, 0, len(errs))
	for _, err := range errs {
		reasons = append(reasons, err.Error())
	}
	return VerdictInvalid + strings.Join(reasons, "; ")
}

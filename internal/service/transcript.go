package service

import (
	"fmt"

	"github.com/dotX12/netkit/internal/domain"
)

// Prompts used in the rendered switch session
const (
	PromptConfig          = "Switch(config)# "
	PromptConfigInterface = "Switch(config-if)# "
)

// TranscriptBuilder renders a switch configuration session line by line
type TranscriptBuilder struct {
	lines []string
}

// NewTranscriptBuilder creates a new transcript builder
func NewTranscriptBuilder() *TranscriptBuilder {
	return &TranscriptBuilder{
		lines: make([]string, 0, 12),
	}
}

// Interface enters interface configuration for port
func (tb *TranscriptBuilder) Interface(port string) *TranscriptBuilder {
	tb.lines = append(tb.lines, PromptConfig+"interface "+port)
	return tb
}

// SwitchportMode sets the port mode
func (tb *TranscriptBuilder) SwitchportMode(mode domain.Mode) *TranscriptBuilder {
	tb.lines = append(tb.lines, PromptConfigInterface+"switchport mode "+string(mode))
	return tb
}

// Vlan emits the VLAN line matching the mode; unknown modes emit nothing
func (tb *TranscriptBuilder) Vlan(mode domain.Mode, vlanID int) *TranscriptBuilder {
	switch mode {
	case domain.ModeAccess:
		tb.lines = append(tb.lines, fmt.Sprintf("%sswitchport access vlan %d", PromptConfigInterface, vlanID))
	case domain.ModeTrunk:
		tb.lines = append(tb.lines, fmt.Sprintf("%sswitchport trunk allowed vlan %d", PromptConfigInterface, vlanID))
	}
	return tb
}

// NoShutdown enables the interface
func (tb *TranscriptBuilder) NoShutdown() *TranscriptBuilder {
	tb.lines = append(tb.lines, PromptConfigInterface+"no shutdown")
	return tb
}

// HostAddressing echoes the static IP setup of the attached host
func (tb *TranscriptBuilder) HostAddressing(ip, mask, gateway string) *TranscriptBuilder {
	tb.lines = append(tb.lines,
		"",
		"# Static IP Setup on Host Machine:",
		"IP Address: "+ip,
		"Subnet Mask: "+mask,
		"Default Gateway: "+gateway,
	)
	return tb
}

// Line appends a raw line
func (tb *TranscriptBuilder) Line(line string) *TranscriptBuilder {
	tb.lines = append(tb.lines, line)
	return tb
}

// Build returns a copy of the rendered lines
func (tb *TranscriptBuilder) Build() []string {
	out := make([]string, len(tb.lines))
	copy(out, tb.lines)
	return out
}

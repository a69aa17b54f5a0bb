package service

import (
	"testing"

	"github.com/dotX12/netkit/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTranscriptBuilder(t *testing.T) {
	tb := NewTranscriptBuilder().
		Interface("Gi0/1").
		SwitchportMode(domain.ModeTrunk).
		Vlan(domain.ModeTrunk, 30).
		NoShutdown()

	lines := tb.Build()
	assert.Equal(t, []string{
		"Switch(config)# interface Gi0/1",
		"Switch(config-if)# switchport mode trunk",
		"Switch(config-if)# switchport trunk allowed vlan 30",
		"Switch(config-if)# no shutdown",
	}, lines)

	// Build returns a copy
	lines[0] = "changed"
	assert.Equal(t, "Switch(config)# interface Gi0/1", tb.Build()[0])

	assert.Empty(t, NewTranscriptBuilder().Vlan("routed", 5).Build())
}

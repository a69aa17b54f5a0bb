package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEntry(t *testing.T) {
	tests := []struct {
		entry string
		want  Family
	}{
		{"10.0.0.0/8", FamilyIPv4},
		{"192.168.1.7", FamilyIPv4},
		{"1.2.3.4/40", FamilyIPv4}, // prefix is checked by the calculator
		{"2001:db8::/32", FamilyIPv6},
		{"::1", FamilyIPv6},
		{"::ffff:10.0.0.1/128", FamilyIPv6},
		{"10.0.0.256/8", FamilyUnknown},
		{"10.0.0/8", FamilyUnknown},
		{"example.com", FamilyUnknown},
		{"fe80:zz::1", FamilyUnknown},
		{"a:b", FamilyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyEntry(tt.entry))
		})
	}
}

func TestCIDRList_Add(t *testing.T) {
	l := NewCIDRList()

	family, ok := l.Add("  10.0.0.0/8  # private")
	assert.True(t, ok)
	assert.Equal(t, FamilyIPv4, family)

	_, ok = l.Add("10.0.0.0/8")
	assert.False(t, ok, "duplicate after trimming")

	_, ok = l.Add("# only a comment")
	assert.False(t, ok)

	family, ok = l.Add("not-an-address")
	assert.True(t, ok)
	assert.Equal(t, FamilyUnknown, family)

	assert.Equal(t, []string{"10.0.0.0/8"}, l.IPv4)
	assert.Equal(t, []string{"not-an-address"}, l.Rejected)
}

func TestCIDRList_Load(t *testing.T) {
	l := NewCIDRList()
	input := "# scanners\n10.0.0.0/8\n\n192.168.1.0/24\n2001:db8::/32\n999.1.1.1/8\n10.0.0.0/8\n"

	added, err := l.Load(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 4, added)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.0/24"}, l.IPv4)
	assert.Equal(t, 1, l.IPv6Count())
	assert.Equal(t, 1, l.RejectedCount())
	assert.Equal(t, FamilyIPv6.String(), "ipv6")
}

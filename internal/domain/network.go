package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Family is the IP version of a list entry
type Family int

const (
	FamilyUnknown Family = iota
	FamilyIPv4
	FamilyIPv6
)

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	default:
		return "unknown"
	}
}

// ClassifyEntry reports the family of an "address[/prefix]" entry.
// IPv4 requires an address ParseAddress accepts; IPv6 is only shape-checked.
func ClassifyEntry(entry string) Family {
	host, _, _ := strings.Cut(entry, "/")
	if _, err := ParseAddress(host); err == nil {
		return FamilyIPv4
	}
	if looksIPv6(host) {
		return FamilyIPv6
	}
	return FamilyUnknown
}

func looksIPv6(host string) bool {
	if strings.Count(host, ":") < 2 {
		return false
	}
	for i := 0; i < len(host); i++ {
		c := host[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F', c == ':', c == '.':
		default:
			return false
		}
	}
	return true
}

// CIDRList collects unique entries from CIDR lists, split by family.
// Entries that are neither IPv4 nor IPv6 end up in Rejected.
type CIDRList struct {
	IPv4     []string
	IPv6     []string
	Rejected []string

	seen map[string]bool
}

// NewCIDRList creates a new empty list
func NewCIDRList() *CIDRList {
	return &CIDRList{
		IPv4: make([]string, 0),
		IPv6: make([]string, 0),
		seen: make(map[string]bool),
	}
}

// Add classifies and stores a single entry. It returns false for blank
// lines, comments and duplicates.
func (l *CIDRList) Add(line string) (Family, bool) {
	entry := stripComment(line)
	if entry == "" || l.seen[entry] {
		return FamilyUnknown, false
	}
	l.seen[entry] = true

	family := ClassifyEntry(entry)
	switch family {
	case FamilyIPv4:
		l.IPv4 = append(l.IPv4, entry)
	case FamilyIPv6:
		l.IPv6 = append(l.IPv6, entry)
	default:
		l.Rejected = append(l.Rejected, entry)
	}
	return family, true
}

// Load adds every line of r and returns how many new entries were stored
func (l *CIDRList) Load(r io.Reader) (int, error) {
	added := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if _, ok := l.Add(scanner.Text()); ok {
			added++
		}
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("failed to read list: %w", err)
	}
	return added, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// IPv4Count returns the number of IPv4 entries
func (l *CIDRList) IPv4Count() int { return len(l.IPv4) }

// IPv6Count returns the number of IPv6 entries
func (l *CIDRList) IPv6Count() int { return len(l.IPv6) }

// RejectedCount returns the number of unrecognised entries
func (l *CIDRList) RejectedCount() int { return len(l.Rejected) }

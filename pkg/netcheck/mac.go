package netcheck

import (
	"fmt"
	"net"
	"strings"
)

// MACAddress is a six-octet hardware address in uppercase hex joined by
// dashes, e.g. "AA-BB-CC-DD-EE-FF".
type MACAddress string

func (m MACAddress) String() string {
	return string(m)
}

// ParseMAC parses a six-octet address written with ':' or '-' separators
// (or any other form net.ParseMAC accepts) and normalizes it.
func ParseMAC(s string) (MACAddress, error) {
	hw, err := net.ParseMAC(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid MAC address %q: %w", s, err)
	}
	if len(hw) != 6 {
		return "", fmt.Errorf("invalid MAC address %q: want 6 octets, got %d", s, len(hw))
	}
	return normalize(hw.String()), nil
}

func normalize(colonForm string) MACAddress {
	return MACAddress(strings.ReplaceAll(strings.ToUpper(colonForm), ":", "-"))
}

// Fixed is a MAC source that always returns the same address.
type Fixed MACAddress

// Primary returns the fixed address.
func (f Fixed) Primary() (MACAddress, error) {
	if f == "" {
		return "", ErrNoEthernet
	}
	return MACAddress(f), nil
}

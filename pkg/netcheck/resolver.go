package netcheck

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// ErrNoEthernet is returned when no interface qualifies as the primary
// physical Ethernet adapter.
var ErrNoEthernet = errors.New("no physical Ethernet interface with a usable MAC address")

// DefaultDenylist holds interface-name fragments (lowercase) that mark an
// interface as virtual, wireless or loopback.
var DefaultDenylist = []string{"loopback", "wifi", "wlan", "vmware", "virtual", "bluetooth"}

// Interface is the subset of a network interface the resolver looks at.
type Interface struct {
	Name         string
	HardwareAddr string // colon separated as reported by the OS, empty if none
}

// InterfaceLister abstracts interface enumeration for testability.
type InterfaceLister interface {
	Interfaces() ([]Interface, error)
}

// RealInterfaceLister enumerates the host's interfaces.
type RealInterfaceLister struct{}

// Interfaces returns all interfaces known to the OS.
func (RealInterfaceLister) Interfaces() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	return lo.Map(ifaces, func(i net.Interface, _ int) Interface {
		return Interface{Name: i.Name, HardwareAddr: i.HardwareAddr.String()}
	}), nil
}

// Resolver picks the primary physical Ethernet MAC address.
type Resolver struct {
	Lister  InterfaceLister
	Exclude []string // extra name fragments skipped in addition to DefaultDenylist
	Logger  zerolog.Logger
}

// Primary returns the address of the first interface, in enumeration order,
// whose name matches no denylist fragment and whose link-layer address has
// six groups and does not start with 00:00:00.
func (r *Resolver) Primary() (MACAddress, error) {
	ifaces, err := r.Lister.Interfaces()
	if err != nil {
		return "", fmt.Errorf("enumerate interfaces: %w", err)
	}

	deny := r.denylist()
	for _, iface := range ifaces {
		log := r.Logger.With().Str("interface", iface.Name).Logger()

		name := strings.ToLower(iface.Name)
		if bad, ok := lo.Find(deny, func(bad string) bool { return strings.Contains(name, bad) }); ok {
			log.Debug().Str("match", bad).Msg("skipping denylisted interface")
			continue
		}

		if !usable(iface.HardwareAddr) {
			log.Debug().Str("addr", iface.HardwareAddr).Msg("skipping interface without usable address")
			continue
		}

		mac := normalize(iface.HardwareAddr)
		log.Debug().Str("mac", mac.String()).Msg("selected interface")
		return mac, nil
	}

	return "", ErrNoEthernet
}

func (r *Resolver) denylist() []string {
	extra := lo.Map(r.Exclude, func(s string, _ int) string { return strings.ToLower(strings.TrimSpace(s)) })
	return lo.Uniq(append(lo.Compact(extra), DefaultDenylist...))
}

func usable(addr string) bool {
	return addr != "" &&
		len(strings.Split(addr, ":")) == 6 &&
		!strings.HasPrefix(addr, "00:00:00")
}

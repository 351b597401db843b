package ipaddr

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/lowlandresearch/larc/errors"
)

// IsIP reports whether s is a bare IPv4 or IPv6 address.
func IsIP(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}

// IsIPv4 reports whether s is a bare IPv4 address.
func IsIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

// IsInterface reports whether s is an address, optionally with a prefix
// length. Host bits may be set.
func IsInterface(s string) bool {
	_, err := parseInterface(s)
	return err == nil
}

// IsNetwork reports whether s is a network with no host bits set. A bare
// address counts as a single-address network.
func IsNetwork(s string) bool {
	_, err := parseNetwork(s)
	return err == nil
}

// Slash returns the prefix length of network s.
func Slash(s string) (int, error) {
	p, err := parseNetwork(s)
	if err != nil {
		return 0, err
	}
	return p.Bits(), nil
}

// IsCommaSepIP reports whether s is two or more addresses joined by commas.
func IsCommaSepIP(s string) bool {
	if !strings.Contains(s, ",") {
		return false
	}
	for _, part := range strings.Split(s, ",") {
		if !IsIP(part) {
			return false
		}
	}
	return true
}

// IsIPRange reports whether s is an IPv4 address followed by "-" and a last
// octet between 0 and 255, such as "10.0.0.5-20".
func IsIPRange(s string) bool {
	_, _, err := parseRange(s)
	return err == nil
}

func parseInterface(s string) (netip.Prefix, error) {
	if p, err := netip.ParsePrefix(s); err == nil {
		return p, nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, errors.InvalidFormat(s, "ip interface").WithCause(err)
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

func parseNetwork(s string) (netip.Prefix, error) {
	p, err := parseInterface(s)
	if err != nil {
		return netip.Prefix{}, errors.InvalidFormat(s, "ip network")
	}
	if p.Masked() != p {
		return netip.Prefix{}, errors.InvalidFormat(s, "ip network").WithDetail("reason", "host bits set")
	}
	return p, nil
}

func parseRange(s string) (netip.Addr, int, error) {
	base, last, ok := strings.Cut(s, "-")
	if !ok || strings.Contains(last, "-") {
		return netip.Addr{}, 0, errors.InvalidFormat(s, "ip range")
	}
	addr, err := netip.ParseAddr(base)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, 0, errors.InvalidFormat(s, "ip range")
	}
	if last == "" || strings.TrimLeft(last, "0123456789") != "" {
		return netip.Addr{}, 0, errors.InvalidFormat(s, "ip range")
	}
	n, err := strconv.Atoi(last)
	if err != nil || n > 255 {
		return netip.Addr{}, 0, errors.InvalidFormat(s, "ip range")
	}
	return addr, n, nil
}

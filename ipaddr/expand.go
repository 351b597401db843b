package ipaddr

import (
	"net/netip"
	"strings"
	"sync/atomic"

	"github.com/lowlandresearch/larc/config"
	"github.com/lowlandresearch/larc/errors"
)

var maxExpand atomic.Int64

func init() {
	maxExpand.Store(config.DefaultMaxExpand)
}

// Configure sets the expansion limit from cfg.
func Configure(cfg config.IPConfig) {
	maxExpand.Store(int64(cfg.MaxExpand))
}

// MaxExpand returns the largest number of addresses Expand will produce.
func MaxExpand() int {
	return int(maxExpand.Load())
}

// Expand returns the addresses denoted by s. It accepts, in order of
// precedence, a single address, a network, an interface, a comma separated
// list and a last-octet range. Networks and interfaces expand to their
// usable hosts.
func Expand(s string) ([]string, error) {
	switch {
	case IsIP(s):
		return []string{s}, nil
	case IsNetwork(s):
		p, _ := parseNetwork(s)
		return hosts(s, p)
	case IsInterface(s):
		p, _ := parseInterface(s)
		return hosts(s, p.Masked())
	case IsCommaSepIP(s):
		parts := strings.Split(s, ",")
		if err := checkLimit(s, len(parts)); err != nil {
			return nil, err
		}
		return parts, nil
	case IsIPRange(s):
		base, last, _ := parseRange(s)
		first := int(base.As4()[3])
		if err := checkLimit(s, last-first+1); err != nil {
			return nil, err
		}
		out := make([]string, 0, max(last-first+1, 0))
		for addr, i := base, first; i <= last; addr, i = addr.Next(), i+1 {
			out = append(out, addr.String())
		}
		return out, nil
	default:
		return nil, errors.InvalidFormat(s, "ip, network, interface, list or range")
	}
}

// hosts enumerates the usable hosts of p. IPv4 networks larger than /31
// skip the network and broadcast addresses and IPv6 networks larger than
// /127 skip the subnet-router anycast address.
func hosts(s string, p netip.Prefix) ([]string, error) {
	hostBits := p.Addr().BitLen() - p.Bits()
	if hostBits >= 62 {
		return nil, errors.TooLarge(s, 1<<62, MaxExpand())
	}
	total := 1 << hostBits

	first := p.Addr()
	count := total
	switch {
	case p.Addr().Is4() && hostBits > 1:
		first, count = first.Next(), total-2
	case p.Addr().Is6() && hostBits > 1:
		first, count = first.Next(), total-1
	}
	if err := checkLimit(s, count); err != nil {
		return nil, err
	}

	out := make([]string, 0, count)
	for addr, i := first, 0; i < count; addr, i = addr.Next(), i+1 {
		out = append(out, addr.String())
	}
	return out, nil
}

func checkLimit(s string, n int) error {
	if limit := MaxExpand(); n > limit {
		return errors.TooLarge(s, n, limit)
	}
	return nil
}

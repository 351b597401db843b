package ipaddr

import (
	"fmt"
	"net/netip"
	"slices"
	"strconv"
	"strings"

	"github.com/lowlandresearch/larc/errors"
	"github.com/lowlandresearch/larc/text"
)

// Sort orders ips numerically. A trailing comment and surrounding space on
// an entry are ignored for ordering but kept in the output. IPv4 sorts
// before IPv6.
func Sort(ips []string) ([]string, error) {
	type keyed struct {
		addr netip.Addr
		raw  string
	}
	items := make([]keyed, len(ips))
	for i, raw := range ips {
		addr, err := sortKey(raw)
		if err != nil {
			return nil, err
		}
		items[i] = keyed{addr: addr, raw: raw}
	}
	slices.SortStableFunc(items, func(a, b keyed) int { return a.addr.Compare(b.addr) })

	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.raw
	}
	return out, nil
}

func sortKey(raw string) (netip.Addr, error) {
	s := strings.TrimSpace(text.StripComment(raw))
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, errors.InvalidFormat(raw, "ip address").WithCause(err)
	}
	return addr, nil
}

// InRange reports whether ip lies between lo and hi inclusive.
func InRange(lo, hi, ip string) (bool, error) {
	addrs := make([]netip.Addr, 3)
	for i, s := range []string{lo, hi, ip} {
		a, err := netip.ParseAddr(s)
		if err != nil {
			return false, errors.InvalidFormat(s, "ip address").WithCause(err)
		}
		addrs[i] = a
	}
	return addrs[0].Compare(addrs[2]) <= 0 && addrs[2].Compare(addrs[1]) <= 0, nil
}

// InRangeWith returns a predicate for InRange with fixed bounds. Addresses
// that fail to parse are out of range.
func InRangeWith(lo, hi string) func(string) bool {
	return func(ip string) bool {
		ok, err := InRange(lo, hi, ip)
		return err == nil && ok
	}
}

// ZPad left-pads every octet of ip with zeros to three digits.
func ZPad(ip string) string {
	parts := strings.Split(strings.TrimSpace(ip), ".")
	for i, p := range parts {
		if len(p) < 3 {
			parts[i] = strings.Repeat("0", 3-len(p)) + p
		}
	}
	return strings.Join(parts, ".")
}

// UnZPad removes leading zeros from every octet of ip.
func UnZPad(ip string) (string, error) {
	parts := strings.Split(ip, ".")
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", errors.InvalidFormat(ip, "zero padded ip").WithDetail("octet", fmt.Sprint(i))
		}
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "."), nil
}

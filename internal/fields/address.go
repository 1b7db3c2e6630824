package fields

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"rpslkit/internal/diagnostic"
	"rpslkit/internal/schema"
)

// IPv4Prefix accepts an IPv4 prefix. Octets may carry leading zeros, which
// are dropped: "193.254.030.00/24" becomes "193.254.30.0/24".
var IPv4Prefix schema.Cleaner = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	addr, bits, found := strings.Cut(value, "/")
	if !found {
		msgs.Errorf("Invalid address prefix: %s: missing prefix length", value)
		return "", false
	}

	ip, err := parseIPv4(addr)
	if err != nil {
		msgs.Errorf("Invalid address prefix: %s: %v", value, err)
		return "", false
	}

	return checkPrefix(value, ip, bits, msgs)
})

// IPv6Prefix accepts an IPv6 prefix and returns its canonical notation.
var IPv6Prefix schema.Cleaner = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	addr, bits, found := strings.Cut(value, "/")
	if !found {
		msgs.Errorf("Invalid address prefix: %s: missing prefix length", value)
		return "", false
	}

	ip, err := netip.ParseAddr(addr)
	if err != nil || !ip.Is6() || ip.Zone() != "" {
		msgs.Errorf("Invalid address prefix: %s: not an IPv6 address", value)
		return "", false
	}

	return checkPrefix(value, ip, bits, msgs)
})

// IPv4Range accepts "first - last" with first <= last, e.g.
// "80.16.151.184 - 80.016.151.191" becomes "80.16.151.184 - 80.16.151.191".
var IPv4Range schema.Cleaner = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	first, last, err := parseRange(value, parseIPv4)
	if err != nil {
		msgs.Errorf("Invalid address range: %s: %v", value, err)
		return "", false
	}

	return first.String() + " - " + last.String(), true
})

// IPv6Range accepts an IPv6 prefix, as inet6num values are normally written,
// or a "first - last" range.
var IPv6Range schema.Cleaner = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	if strings.Contains(value, "/") {
		return IPv6Prefix.Clean(value, msgs)
	}

	first, last, err := parseRange(value, parseIPv6)
	if err != nil {
		msgs.Errorf("Invalid address range: %s: %v", value, err)
		return "", false
	}

	return first.String() + " - " + last.String(), true
})

func checkPrefix(value string, ip netip.Addr, bits string, msgs *diagnostic.Messages) (string, bool) {
	length, err := strconv.Atoi(strings.TrimSpace(bits))
	if err != nil {
		msgs.Errorf("Invalid address prefix: %s: prefix length is not a number", value)
		return "", false
	}

	prefix, err := ip.Prefix(length)
	if err != nil {
		msgs.Errorf("Invalid address prefix: %s: %v", value, err)
		return "", false
	}

	if prefix.Addr() != ip {
		msgs.Errorf("Invalid address prefix: %s: host bits are set, expected %s", value, prefix)
		return "", false
	}

	return prefix.String(), true
}

// parseRange splits "first - last". Commas are dropped first: a range folded
// over several lines normalizes to "first,-,last".
func parseRange(value string, parse func(string) (netip.Addr, error)) (netip.Addr, netip.Addr, error) {
	value = strings.ReplaceAll(value, ",", "")

	firstText, lastText, found := strings.Cut(value, " - ")
	if !found {
		firstText, lastText, found = strings.Cut(value, "-")
	}

	if !found {
		return netip.Addr{}, netip.Addr{}, errors.New("expected <first> - <last>")
	}

	first, err := parse(strings.TrimSpace(firstText))
	if err != nil {
		return netip.Addr{}, netip.Addr{}, err
	}

	last, err := parse(strings.TrimSpace(lastText))
	if err != nil {
		return netip.Addr{}, netip.Addr{}, err
	}

	if last.Less(first) {
		return netip.Addr{}, netip.Addr{}, errors.New("first address is higher than last address")
	}

	return first, last, nil
}

// parseIPv4 parses a dotted quad, tolerating leading zeros in octets.
func parseIPv4(s string) (netip.Addr, error) {
	octets := strings.Split(s, ".")
	if len(octets) != 4 {
		return netip.Addr{}, fmt.Errorf("%q is not an IPv4 address", s)
	}

	var b [4]byte

	for i, o := range octets {
		n, err := strconv.ParseUint(o, 10, 8)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("%q is not an IPv4 address", s)
		}

		b[i] = byte(n)
	}

	return netip.AddrFrom4(b), nil
}

func parseIPv6(s string) (netip.Addr, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil || !ip.Is6() {
		return netip.Addr{}, fmt.Errorf("%q is not an IPv6 address", s)
	}

	return ip, nil
}

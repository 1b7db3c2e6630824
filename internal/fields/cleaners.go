package fields

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"rpslkit/internal/diagnostic"
	"rpslkit/internal/schema"
)

var (
	namePattern     = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9_.-]*$`)
	sourcePattern   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	dnsLabelPattern = regexp.MustCompile(`(?i)^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
	keyCertPattern  = regexp.MustCompile(`(?i)^(PGPKEY-[0-9A-F]{8}|X509-[0-9]+|AUTO-[0-9]+)$`)
)

// Text accepts any value.
var Text schema.Cleaner = schema.CleanerFunc(func(value string, _ *diagnostic.Messages) (string, bool) {
	return value, true
})

// Name accepts a generic RPSL object name such as a nic-hdl or maintainer.
var Name schema.Cleaner = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	if !namePattern.MatchString(value) {
		msgs.Errorf("Invalid name: %s: contains invalid characters", value)
		return "", false
	}

	return value, true
})

// Source accepts a registry source name and upper-cases it.
var Source schema.Cleaner = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	if !sourcePattern.MatchString(value) {
		msgs.Errorf("Invalid source name: %s: contains invalid characters", value)
		return "", false
	}

	return strings.ToUpper(value), true
})

// Email accepts an e-mail address.
var Email schema.Cleaner = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	if !emailPattern.MatchString(value) {
		msgs.Errorf("Invalid e-mail address: %s", value)
		return "", false
	}

	return value, true
})

// DNSName accepts a fully qualified domain name, with or without the root dot.
var DNSName schema.Cleaner = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	labels := strings.Split(strings.TrimSuffix(value, "."), ".")
	for _, label := range labels {
		if !dnsLabelPattern.MatchString(label) {
			msgs.Errorf("Invalid DNS name: %s", value)
			return "", false
		}
	}

	return value, true
})

// KeyCertName accepts PGPKEY-<8 hex>, X509-<n> and AUTO-<n>, upper-cased.
var KeyCertName schema.Cleaner = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	if !keyCertPattern.MatchString(value) {
		msgs.Errorf("Invalid key-cert name: %s: must be PGPKEY-<id>, X509-<n> or AUTO-<n>", value)
		return "", false
	}

	return strings.ToUpper(value), true
})

// ASNumber accepts "AS<n>" with a 32-bit n and returns it without leading
// zeros, e.g. "as03255" becomes "AS3255" with a warning.
var ASNumber schema.Cleaner = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	asn, err := parseASN(value)
	if err != nil {
		msgs.Errorf("Invalid AS number %s: %v", value, err)
		return "", false
	}

	cleaned := formatASN(asn)
	if !strings.EqualFold(value, cleaned) {
		msgs.Warningf("Leading zeros removed from AS number %s", value)
	}

	return cleaned, true
})

// ASBlock accepts "AS<n> - AS<m>" with n <= m.
var ASBlock schema.Cleaner = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	first, last, found := strings.Cut(value, "-")
	if !found {
		msgs.Errorf("Invalid AS range %s: does not contain a hyphen", value)
		return "", false
	}

	start, err := parseASN(strings.TrimSpace(first))
	if err != nil {
		msgs.Errorf("Invalid AS number in range %s: %v", value, err)
		return "", false
	}

	end, err := parseASN(strings.TrimSpace(last))
	if err != nil {
		msgs.Errorf("Invalid AS number in range %s: %v", value, err)
		return "", false
	}

	if start > end {
		msgs.Errorf("Invalid AS range %s: start is higher than end", value)
		return "", false
	}

	return formatASN(start) + " - " + formatASN(end), true
})

// SetName returns a cleaner for set names such as "AS-FOO" or
// "AS65000:RS-CUSTOMERS". At least one component must carry prefix; the
// others must be AS numbers or set names with the same prefix.
func SetName(prefix string) schema.Cleaner {
	prefix = strings.ToUpper(prefix)

	return schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
		hasPrefixed := false

		for _, component := range strings.Split(value, ":") {
			upper := strings.ToUpper(component)

			switch {
			case strings.HasPrefix(upper, prefix) && len(upper) > len(prefix) && namePattern.MatchString(component):
				hasPrefixed = true
			case strings.HasPrefix(upper, "AS"):
				if _, err := parseASN(component); err != nil {
					msgs.Errorf("Invalid set name %s: component %s is not a valid AS number or %s set name", value, component, prefix)
					return "", false
				}
			default:
				msgs.Errorf("Invalid set name %s: component %s must start with %s", value, component, prefix)
				return "", false
			}
		}

		if !hasPrefixed {
			msgs.Errorf("Invalid set name %s: at least one component must start with %s", value, prefix)
			return "", false
		}

		return value, true
	})
}

// List returns a cleaner for comma separated values, each cleaned by inner.
// The result is joined with "," without spaces. Empty members are dropped.
func List(inner schema.Cleaner) schema.Cleaner {
	return schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
		var out []string

		for _, member := range strings.Split(value, ",") {
			member = strings.TrimSpace(member)
			if member == "" {
				continue
			}

			cleaned, ok := inner.Clean(member, msgs)
			if !ok {
				return "", false
			}

			out = append(out, cleaned)
		}

		return strings.Join(out, ","), true
	})
}

func parseASN(value string) (uint32, error) {
	if len(value) < 3 || !strings.EqualFold(value[:2], "AS") {
		return 0, errors.New("must start with 'AS'")
	}

	n, err := strconv.ParseUint(value[2:], 10, 32)
	if err != nil {
		return 0, errors.New("number part is not numeric or out of range")
	}

	return uint32(n), nil
}

func formatASN(asn uint32) string {
	return "AS" + strconv.FormatUint(uint64(asn), 10)
}

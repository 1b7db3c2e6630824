package objects

import (
	"fmt"
	"slices"
	"strings"

	"rpslkit/internal/diagnostic"
	"rpslkit/internal/schema"
)

// Key methods derived from certif content.
const (
	MethodPGP  = "PGP"
	MethodX509 = "X509"
)

var hooks = map[string]schema.Hook{
	"none":     schema.NopHook{},
	"key-cert": KeyCertHook{},
}

// Lookup returns the hook registered under name.
func Lookup(name string) (schema.Hook, bool) {
	h, ok := hooks[name]
	return h, ok
}

// Names returns the registered hook names, sorted.
func Names() []string {
	names := make([]string, 0, len(hooks))
	for name := range hooks {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// KeyCertHook derives the method attribute of a key-cert object from the
// armor of its certif lines, and checks that the object name agrees with it.
// Keys are not verified.
type KeyCertHook struct{}

// Clean replaces any method lines with the derived method.
func (KeyCertHook) Clean(obj schema.ObjectView) {
	certif := strings.Join(obj.Values("certif"), "\n")

	method := keyMethod(certif)
	if method == "" {
		obj.Messages().AddError(diagnostic.KindObject,
			"No valid data found in certif attribute: expected a PGP public key block or X.509 certificate",
			"certif", 0)

		return
	}

	obj.Replace("method", method)

	name, ok := obj.Cleaned(obj.Class())
	if !ok {
		return
	}

	name = strings.ToUpper(name)
	if (strings.HasPrefix(name, "PGPKEY-") && method != MethodPGP) ||
		(strings.HasPrefix(name, "X509-") && method != MethodX509) {
		obj.Messages().AddError(diagnostic.KindObject,
			fmt.Sprintf("Object name %s does not match key method %s", name, method),
			obj.Class(), 0)
	}
}

func keyMethod(certif string) string {
	switch {
	case strings.Contains(certif, "BEGIN PGP PUBLIC KEY BLOCK"):
		return MethodPGP
	case strings.Contains(certif, "BEGIN CERTIFICATE"):
		return MethodX509
	default:
		return ""
	}
}

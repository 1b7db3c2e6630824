package rpsl

import (
	"fmt"
	"strings"

	"rpslkit/internal/diagnostic"
)

// validate checks cardinality (strict only), cleans attribute values into
// the cleaned data, then runs the class hook.
func (o *Object) validate() {
	o.cleaned = make(map[string]string)

	if o.strict {
		o.validateCardinality()
	}

	o.cleanAttributes()
	o.schema.Hook().Clean(o)
}

// validateCardinality reports every unknown, repeated and missing attribute
// in a single pass.
func (o *Object) validateCardinality() {
	class := o.schema.Class()

	counts := make(map[string]int, len(o.lines))
	var order []string

	for _, l := range o.lines {
		if counts[l.Name] == 0 {
			order = append(order, l.Name)
		}

		counts[l.Name]++
	}

	for _, name := range order {
		if !o.schema.IsAllowed(name) {
			o.cardinalityError(name, fmt.Sprintf("Unrecognised attribute %s on object %s", name, class))

			if suggestion, ok := o.schema.Suggest(name); ok {
				o.messages.AddInfo(diagnostic.KindCardinality, fmt.Sprintf("Did you mean %s?", suggestion), name, 0)
			}
		}

		if counts[name] > 1 && !o.schema.IsMultiple(name) {
			o.cardinalityError(name, fmt.Sprintf(
				"Attribute %s on object %s occurs multiple times, but is only allowed once", name, class))
		}
	}

	for _, name := range o.schema.AttrsRequired() {
		if counts[name] == 0 {
			o.cardinalityError(name, fmt.Sprintf("Mandatory attribute %s on object %s is missing", name, class))
		}
	}
}

func (o *Object) cardinalityError(attribute, message string) {
	o.messages.AddError(diagnostic.KindCardinality, message, attribute, 0)
}

// cleanAttributes runs each field cleaner in occurrence order. Relaxed
// validation only cleans primary and lookup keys.
func (o *Object) cleanAttributes() {
	for i := range o.lines {
		line := &o.lines[i]

		field, ok := o.schema.Field(line.Name)
		if !ok || (!o.strict && !field.Indexed()) {
			continue
		}

		normalized := Normalize(line.Value)

		errs, warns := o.messages.Mark()
		cleaned, ok := field.Clean(normalized, &o.messages)
		o.messages.AttachAttribute(errs, warns, line.Name)

		if !ok || cleaned == "" {
			continue
		}

		if cleaned != normalized {
			line.Value = rewriteValue(line.Value, normalized, cleaned)
		}

		if prev, seen := o.cleaned[line.Name]; seen {
			o.cleaned[line.Name] = prev + "\n" + cleaned
		} else {
			o.cleaned[line.Name] = cleaned
		}
	}
}

// rewriteValue substitutes the cleaned form into the stored text so that
// rendering shows it. This is cosmetic: when the normalized text is not a
// literal substring of the raw value (a folded value, for one) the raw value
// is returned unchanged.
func rewriteValue(raw, normalized, cleaned string) string {
	if normalized == "" || strings.Contains(cleaned, "\n") || !strings.Contains(raw, normalized) {
		return raw
	}

	return strings.ReplaceAll(raw, normalized, cleaned)
}

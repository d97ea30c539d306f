// Package element describes the element types a list can be driven with from text: how to parse,
// format and compare each of them.
package element

import (
	"fmt"
	"strings"

	"github.com/nerdlist/nerdlist/util"
	"github.com/samber/lo"
)

// Kind names a supported element type.
type Kind string

const (
	Int     Kind = "int"
	Float   Kind = "float"
	String  Kind = "string"
	Bool    Kind = "bool"
	UUID    Kind = "uuid"
	Decimal Kind = "decimal"
)

// Kinds returns every supported kind in display order.
func Kinds() []Kind {
	return []Kind{Int, Float, String, Bool, UUID, Decimal}
}

// Names returns the kinds as plain strings, for flag completion and suggestions.
func Names() []string {
	return lo.Map(Kinds(), func(k Kind, _ int) string { return string(k) })
}

// ParseKind validates a kind name, suggesting the closest one on a miss.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if lo.Contains(Kinds(), Kind(name)) {
		return Kind(name), nil
	}

	if suggestion, ok := util.Suggest(name, Names()).Get(); ok {
		return "", fmt.Errorf("unknown element type %q, did you mean %q?", name, suggestion)
	}
	return "", fmt.Errorf("unknown element type %q, expected one of %s", name, strings.Join(Names(), ", "))
}

package model

import (
	"fmt"
	"strings"

	"github.com/udisondev/frontier/internal/attribute"
)

// Kind enumerates the attributes known to the default stat catalog.
type Kind uint8

const (
	KindHealth Kind = iota
)

var kindNames = map[Kind]string{
	KindHealth: "health",
}

// String returns the config name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind resolves a config name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Modifier is a modifier over the default catalog.
type Modifier = attribute.Modifier[Kind]

// NewModifier creates a Modifier for the default catalog.
func NewModifier(kind Kind, magnitude attribute.MagnitudeType, amount float64) Modifier {
	return attribute.NewModifier(kind, magnitude, amount)
}

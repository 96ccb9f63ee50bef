package attribute

import (
	"fmt"
	"strings"
)

// MagnitudeType defines how a modifier amount is applied to the base value.
type MagnitudeType int8

const (
	Flat       MagnitudeType = iota // Additive bonus (e.g. +25 health)
	Percentage                      // Fraction of base (e.g. 0.2 = +20%)
)

// String returns the lowercase config name of the magnitude type.
func (m MagnitudeType) String() string {
	switch m {
	case Flat:
		return "flat"
	case Percentage:
		return "percentage"
	default:
		return fmt.Sprintf("MagnitudeType(%d)", int8(m))
	}
}

// ParseMagnitudeType parses "flat" or "percentage" (case-insensitive).
func ParseMagnitudeType(s string) (MagnitudeType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat":
		return Flat, true
	case "percentage", "percent":
		return Percentage, true
	default:
		return 0, false
	}
}

// Modifier is a single stacking adjustment for attributes of kind K.
//
// Modifier is an immutable value: two modifiers with identical fields are the
// same set member, so removal only needs an equal value, not the original.
type Modifier[K comparable] struct {
	kind      K
	magnitude MagnitudeType
	amount    float64
}

// NewModifier creates a modifier for the given attribute kind.
func NewModifier[K comparable](kind K, magnitude MagnitudeType, amount float64) Modifier[K] {
	return Modifier[K]{kind: kind, magnitude: magnitude, amount: amount}
}

// Kind returns the attribute kind this modifier applies to.
func (m Modifier[K]) Kind() K { return m.kind }

// Magnitude returns the magnitude class.
func (m Modifier[K]) Magnitude() MagnitudeType { return m.magnitude }

// Amount returns the raw modifier value.
func (m Modifier[K]) Amount() float64 { return m.amount }

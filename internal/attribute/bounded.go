package attribute

import "math"

// MinMaxValue is the lowest allowed upper bound of a bounded attribute.
const MinMaxValue = 1.0

// Bounded is an attribute whose base and current values are additionally
// capped at MaxValue. Used for pools such as health.
//
// Changing the maximum rescales the base value so that base/max stays the
// same: a half-full pool stays half full.
//
// Bounded must be created with NewBounded.
type Bounded[K comparable] struct {
	Attribute[K]
}

// NewBounded creates a bounded attribute with zero base value and MaxValue 1.
func NewBounded[K comparable](kind K) *Bounded[K] {
	return &Bounded[K]{
		Attribute: Attribute[K]{
			kind:     kind,
			bounded:  true,
			maxValue: MinMaxValue,
		},
	}
}

// MaxValue returns the upper bound.
func (b *Bounded[K]) MaxValue() float64 {
	return b.maxValue
}

// SetMaxValue changes the upper bound (minimum 1, at most math.MaxFloat64) and
// rescales the base value to keep the base/max ratio.
func (b *Bounded[K]) SetMaxValue(value float64) {
	if Approximately(b.maxValue, value) {
		return
	}

	ratio := b.Ratio()

	b.maxValue = min(max(sanitize(value), MinMaxValue), math.MaxFloat64)

	// Clamp range moved: current value must be recomputed even if base stays.
	b.dirty = true

	base := 0.0
	if ratio > 0 {
		base = b.maxValue * ratio
	}
	b.setBase(base)
}

// Ratio returns base/max in [0, 1]. Returns 0 if max is zero.
func (b *Bounded[K]) Ratio() float64 {
	if b.maxValue == 0 {
		return 0
	}
	return b.base / b.maxValue
}

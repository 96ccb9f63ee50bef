package attribute

import (
	"cmp"
	"log/slog"
	"math"
	"slices"
)

// Attribute holds one stat: a base value, the set of applied modifiers and a
// lazily recomputed current value.
//
// Invariants:
//   - BaseValue() >= 0
//   - CurrentValue() >= 0
//   - the cached current value is only trusted while the dirty flag is clear
//
// Operations with a mismatched kind, duplicate adds and removal of absent
// modifiers are silently ignored (logged at debug level).
//
// Not safe for concurrent use: an attribute has a single logical owner.
type Attribute[K comparable] struct {
	kind    K
	base    float64
	current float64
	dirty   bool

	// modifiers is kept sorted by compareModifiers, which makes both the
	// membership test and the recomputed sum independent of insertion order.
	modifiers []Modifier[K]

	// bounded is set by NewBounded; maxValue is the upper clamp when bounded.
	bounded  bool
	maxValue float64
}

// New creates an attribute of the given kind with zero base value.
func New[K comparable](kind K) *Attribute[K] {
	return &Attribute[K]{kind: kind}
}

// Kind returns the attribute kind.
func (a *Attribute[K]) Kind() K {
	return a.kind
}

// BaseValue returns the unmodified value.
func (a *Attribute[K]) BaseValue() float64 {
	return a.base
}

// CurrentValue returns the base value with all modifiers applied.
// Recomputes only if a mutation happened since the last read.
func (a *Attribute[K]) CurrentValue() float64 {
	if a.dirty {
		a.recalculate()
	}
	return a.current
}

// SetBaseValue replaces the base value if kind matches this attribute.
// Negative values clamp to 0 (and to MaxValue for bounded attributes).
func (a *Attribute[K]) SetBaseValue(kind K, value float64) {
	if kind != a.kind {
		slog.Debug("set base value ignored: kind mismatch", "want", a.kind, "got", kind)
		return
	}
	a.setBase(value)
}

// AddModifier applies mod. No-op for another kind or if an equal modifier is
// already present.
func (a *Attribute[K]) AddModifier(mod Modifier[K]) {
	if mod.kind != a.kind {
		slog.Debug("add modifier ignored: kind mismatch", "want", a.kind, "got", mod.kind)
		return
	}
	i, found := slices.BinarySearchFunc(a.modifiers, mod, compareModifiers[K])
	if found {
		slog.Debug("add modifier ignored: duplicate",
			"kind", mod.kind, "magnitude", mod.magnitude, "amount", mod.amount)
		return
	}

	a.modifiers = slices.Insert(a.modifiers, i, mod)
	a.dirty = true
}

// RemoveModifier removes a modifier equal to mod. No-op if absent.
func (a *Attribute[K]) RemoveModifier(mod Modifier[K]) {
	if mod.kind != a.kind {
		slog.Debug("remove modifier ignored: kind mismatch", "want", a.kind, "got", mod.kind)
		return
	}
	i, found := slices.BinarySearchFunc(a.modifiers, mod, compareModifiers[K])
	if !found {
		slog.Debug("remove modifier ignored: not present",
			"kind", mod.kind, "magnitude", mod.magnitude, "amount", mod.amount)
		return
	}

	a.modifiers = slices.Delete(a.modifiers, i, i+1)
	a.dirty = true
}

// HasModifier reports whether a modifier equal to mod is applied.
func (a *Attribute[K]) HasModifier(mod Modifier[K]) bool {
	if mod.kind != a.kind {
		return false
	}
	_, found := slices.BinarySearchFunc(a.modifiers, mod, compareModifiers[K])
	return found
}

// ModifierCount returns the number of applied modifiers.
func (a *Attribute[K]) ModifierCount() int {
	return len(a.modifiers)
}

// Modifiers returns a snapshot of the applied modifiers, ordered by magnitude
// type and then amount. The caller may modify the returned slice.
func (a *Attribute[K]) Modifiers() []Modifier[K] {
	return slices.Clone(a.modifiers)
}

// compareModifiers orders modifiers of one kind by magnitude type, then amount.
func compareModifiers[K comparable](x, y Modifier[K]) int {
	if c := cmp.Compare(x.magnitude, y.magnitude); c != 0 {
		return c
	}
	return cmp.Compare(x.amount, y.amount)
}

// Clear resets the attribute to its zero state: zero kind, zero values, no
// modifiers. The upper bound of a bounded attribute is kept.
func (a *Attribute[K]) Clear() {
	var zero K
	a.kind = zero
	a.base = 0
	a.current = 0
	a.dirty = false
	a.modifiers = a.modifiers[:0]
}

func (a *Attribute[K]) upper() float64 {
	if a.bounded {
		return a.maxValue
	}
	return math.Inf(1)
}

func (a *Attribute[K]) clamp(value float64) float64 {
	return min(max(sanitize(value), 0), a.upper())
}

func (a *Attribute[K]) setBase(value float64) {
	if Approximately(a.base, value) {
		return
	}
	a.base = a.clamp(value)
	a.dirty = true
}

func (a *Attribute[K]) setCurrent(value float64) {
	value = a.clamp(value)
	if !Approximately(a.current, value) {
		a.current = value
	}
	a.dirty = false
}

// recalculate derives the current value:
// base × (1 + Σpercentage) + Σflat, then clamps into range.
func (a *Attribute[K]) recalculate() {
	flat := 0.0
	percentage := 0.0

	for _, mod := range a.modifiers {
		switch mod.magnitude {
		case Flat:
			flat += mod.amount
		case Percentage:
			percentage += mod.amount
		}
	}

	a.setCurrent(a.base*(1+percentage) + flat)
}

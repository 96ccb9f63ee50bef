package model

import (
	"log/slog"

	"github.com/udisondev/frontier/internal/attribute"
)

const (
	// DefaultMaxHealth is used when a character template does not set one.
	DefaultMaxHealth = 100.0

	// ReviveHealth is the health a character has right after revival.
	ReviveHealth = 1.0
)

// Vitals is the health/death state of a character.
//
// States: alive (initial) and dead.
//   - alive → dead when health reaches ~0, or via SetDead(true)
//   - dead → alive only via SetDead(false), health becomes ReviveHealth
//
// While dead, health reads 0 and writes through SetHealth are ignored.
// The max health may still change.
type Vitals struct {
	health *attribute.Bounded[Kind]
	dead   bool
}

// NewVitals creates alive vitals with the given max health (minimum 1) and
// zero health. Call SetHealth (or Character.Init) to fill it.
func NewVitals(maxHealth float64) *Vitals {
	h := attribute.NewBounded(KindHealth)
	h.SetMaxValue(maxHealth)
	return &Vitals{health: h}
}

// Health returns current health (base with modifiers, capped at max).
func (v *Vitals) Health() float64 {
	if v.dead {
		return 0
	}
	return v.health.CurrentValue()
}

// SetHealth sets base health, clamped to [0, MaxHealth].
// Ignored while dead. Reaching ~0 kills.
func (v *Vitals) SetHealth(value float64) {
	if v.dead {
		slog.Debug("set health ignored: dead", "value", value)
		return
	}

	v.health.SetBaseValue(KindHealth, value)

	if attribute.Approximately(v.health.CurrentValue(), 0) {
		v.dead = true
	}
}

// MaxHealth returns the health cap.
func (v *Vitals) MaxHealth() float64 {
	return v.health.MaxValue()
}

// SetMaxHealth changes the cap (minimum 1) keeping the health ratio.
// Allowed while dead; health stays 0 in that case.
func (v *Vitals) SetMaxHealth(value float64) {
	v.health.SetMaxValue(value)

	if v.dead {
		v.health.SetBaseValue(KindHealth, 0)
	}
}

// IsDead reports whether the character is dead.
func (v *Vitals) IsDead() bool {
	return v.dead
}

// SetDead forces death (health becomes 0) or revives (health becomes
// ReviveHealth). Setting the current state is a no-op.
func (v *Vitals) SetDead(dead bool) {
	if v.dead == dead {
		return
	}

	if dead {
		v.SetHealth(0)
		// Modifiers can keep derived health above zero; the kill still holds.
		v.dead = true
		return
	}

	v.dead = false
	v.SetHealth(ReviveHealth)
}

// HealthRatio returns Health/MaxHealth (0.0 - 1.0).
func (v *Vitals) HealthRatio() float64 {
	return v.Health() / v.MaxHealth()
}

// Attribute exposes the bounded health attribute, e.g. for buff systems
// adding or removing health modifiers.
func (v *Vitals) Attribute() *attribute.Bounded[Kind] {
	return v.health
}

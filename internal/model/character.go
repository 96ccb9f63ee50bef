package model

import (
	"log/slog"

	"github.com/udisondev/frontier/internal/attribute"
)

// DefaultDamage is the damage output used when a template does not set one.
const DefaultDamage = 10.0

// Damageable is anything that can take damage or be killed outright.
type Damageable interface {
	ApplyDamage(damage float64)
	Kill()
}

// Behavior holds the customizable parts of combat. Guards (dead checks,
// positive damage) are enforced by Character before any hook runs, so a
// Behavior only decides what happens.
//
// Embed DefaultBehavior to override a subset of hooks.
type Behavior interface {
	// OnInit runs after the character is revived by Init.
	OnInit(c *Character)
	// OnAttack runs when c attacks a live target while alive.
	OnAttack(c, target *Character)
	// OnTakeDamage runs for strictly positive damage while alive.
	OnTakeDamage(c *Character, damage float64)
	// OnDied runs when Kill is called on a live character.
	OnDied(c *Character)
}

// DefaultBehavior: full heal on init, deal Damage() on attack, subtract
// damage from health, die on kill.
type DefaultBehavior struct{}

func (DefaultBehavior) OnInit(c *Character) { c.SetHealth(c.MaxHealth()) }

func (DefaultBehavior) OnAttack(c, target *Character) { target.ApplyDamage(c.Damage()) }

func (DefaultBehavior) OnTakeDamage(c *Character, damage float64) {
	c.SetHealth(c.Health() - damage)
}

func (DefaultBehavior) OnDied(c *Character) { c.SetDead(true) }

// Character is a combat participant: vitals plus a fixed damage output.
//
// Not safe for concurrent use: every character has a single owner
// (typically one duel or one world tick).
type Character struct {
	name     string
	vitals   *Vitals
	damage   float64
	behavior Behavior
}

// NewCharacter creates a character. maxHealth is floored at 1; a nil
// behavior means DefaultBehavior. The character starts alive with zero
// health until Init is called.
func NewCharacter(name string, maxHealth, damage float64, behavior Behavior) *Character {
	if behavior == nil {
		behavior = DefaultBehavior{}
	}
	return &Character{
		name:     name,
		vitals:   NewVitals(maxHealth),
		damage:   damage,
		behavior: behavior,
	}
}

// Name returns the character name.
func (c *Character) Name() string {
	return c.name
}

// Health returns current health.
func (c *Character) Health() float64 {
	return c.vitals.Health()
}

// SetHealth writes health through the vitals state machine.
// Intended for Behavior implementations.
func (c *Character) SetHealth(value float64) {
	c.vitals.SetHealth(value)
}

// MaxHealth returns the health cap.
func (c *Character) MaxHealth() float64 {
	return c.vitals.MaxHealth()
}

// SetMaxHealth changes the health cap, preserving the health ratio.
func (c *Character) SetMaxHealth(value float64) {
	c.vitals.SetMaxHealth(value)
}

// IsDead reports whether the character is dead.
func (c *Character) IsDead() bool {
	return c.vitals.IsDead()
}

// SetDead forces death or revives. Intended for Behavior implementations;
// gameplay code should use Kill and Init.
func (c *Character) SetDead(dead bool) {
	c.vitals.SetDead(dead)
}

// HealthRatio returns health as a fraction of max (0.0 - 1.0).
func (c *Character) HealthRatio() float64 {
	return c.vitals.HealthRatio()
}

// Damage returns the damage dealt by a default attack.
func (c *Character) Damage() float64 {
	return c.damage
}

// Vitals returns the underlying health/death state.
func (c *Character) Vitals() *Vitals {
	return c.vitals
}

// AddModifier applies a modifier to the matching attribute.
// Modifiers of unknown kinds are ignored.
func (c *Character) AddModifier(mod Modifier) {
	c.vitals.Attribute().AddModifier(mod)
}

// RemoveModifier removes a previously applied modifier.
func (c *Character) RemoveModifier(mod Modifier) {
	c.vitals.Attribute().RemoveModifier(mod)
}

// Init revives the character and runs the OnInit hook (spawn/respawn).
func (c *Character) Init() {
	c.SetDead(false)
	c.behavior.OnInit(c)
}

// Attack runs the OnAttack hook against target.
// No-op if the attacker is dead or the target is nil or already dead.
func (c *Character) Attack(target *Character) {
	if c.IsDead() {
		slog.Debug("attack ignored: attacker dead", "attacker", c.name)
		return
	}
	if target == nil || target.IsDead() {
		slog.Debug("attack ignored: target unavailable", "attacker", c.name)
		return
	}

	c.behavior.OnAttack(c, target)
}

// ApplyDamage implements Damageable. Damage that is not strictly positive
// (including NaN) is ignored, as is any damage while dead.
func (c *Character) ApplyDamage(damage float64) {
	if c.IsDead() {
		return
	}
	if !(damage > 0) || attribute.Approximately(damage, 0) {
		slog.Debug("damage ignored: not positive", "target", c.name, "damage", damage)
		return
	}

	c.behavior.OnTakeDamage(c, damage)
}

// Kill implements Damageable. No-op if already dead.
func (c *Character) Kill() {
	if c.IsDead() {
		return
	}

	c.behavior.OnDied(c)
}

var _ Damageable = (*Character)(nil)

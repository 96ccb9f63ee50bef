package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/frontier/internal/attribute"
)

func newTestCharacter(t *testing.T, name string) *Character {
	t.Helper()
	c := NewCharacter(name, DefaultMaxHealth, DefaultDamage, nil)
	c.Init()
	require.False(t, c.IsDead())
	require.Equal(t, c.MaxHealth(), c.Health())
	return c
}

// expectedHealth: non-positive damage changes nothing, otherwise health
// drops by damage but never below zero.
func expectedHealth(target *Character, damage float64) float64 {
	if damage < 0 || attribute.Approximately(damage, 0) {
		return target.Health()
	}
	return max(target.Health()-damage, 0)
}

func assertHealthAndDeath(t *testing.T, c *Character, want float64) {
	t.Helper()
	assert.Equal(t, want, c.Health())
	assert.Equal(t, attribute.Approximately(c.Health(), 0), c.IsDead())
}

func TestCharacter_Init(t *testing.T) {
	c := NewCharacter("player", 100, 10, nil)
	assert.Equal(t, 0.0, c.Health(), "health is empty until Init")

	c.Init()

	assert.False(t, c.IsDead())
	assert.Equal(t, c.MaxHealth(), c.Health())
	assert.Equal(t, "player", c.Name())
	assert.Equal(t, 10.0, c.Damage())
}

func TestCharacter_InitRevives(t *testing.T) {
	c := newTestCharacter(t, "player")
	c.Kill()
	require.True(t, c.IsDead())

	c.Init()

	assert.False(t, c.IsDead())
	assert.Equal(t, 100.0, c.Health())
}

func TestCharacter_ApplyDamage(t *testing.T) {
	for _, damage := range testFloats() {
		c := newTestCharacter(t, "player")
		want := expectedHealth(c, damage)

		c.ApplyDamage(damage)

		assertHealthAndDeath(t, c, want)
	}
}

func TestCharacter_ApplyDamage_Ignored(t *testing.T) {
	tests := []struct {
		name   string
		damage float64
	}{
		{name: "zero", damage: 0},
		{name: "near zero", damage: 1e-12},
		{name: "negative", damage: -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCharacter(t, "player")
			c.SetHealth(50)

			c.ApplyDamage(tt.damage)

			assert.Equal(t, 50.0, c.Health(), "no healing via negative damage")
		})
	}
}

func TestCharacter_DeathScenario(t *testing.T) {
	c := newTestCharacter(t, "player")

	c.ApplyDamage(150)
	assert.Equal(t, 0.0, c.Health())
	assert.True(t, c.IsDead())

	c.ApplyDamage(10)
	assert.Equal(t, 0.0, c.Health())

	c.Kill()
	assert.Equal(t, 0.0, c.Health())
	assert.True(t, c.IsDead())

	c.SetDead(false)
	assert.False(t, c.IsDead())
	assert.Equal(t, 1.0, c.Health())
}

func TestCharacter_Attack(t *testing.T) {
	player := newTestCharacter(t, "player")
	enemy := newTestCharacter(t, "enemy")
	want := expectedHealth(enemy, player.Damage())

	player.Attack(enemy)

	assertHealthAndDeath(t, enemy, want)
	assert.Equal(t, 90.0, enemy.Health())
	assert.Equal(t, 100.0, player.Health(), "attacker is not hurt")
}

func TestCharacter_AttackDeadTarget(t *testing.T) {
	player := newTestCharacter(t, "player")
	enemy := newTestCharacter(t, "enemy")
	enemy.Kill()

	player.Attack(enemy)
	player.Attack(nil)

	assert.Equal(t, 0.0, enemy.Health())
	assert.True(t, enemy.IsDead())
}

func TestCharacter_AttackWhileDead(t *testing.T) {
	player := newTestCharacter(t, "player")
	enemy := newTestCharacter(t, "enemy")
	player.Kill()
	want := enemy.Health()

	player.Attack(enemy)

	assert.Equal(t, want, enemy.Health())
}

func TestCharacter_Kill(t *testing.T) {
	c := newTestCharacter(t, "player")

	c.Kill()

	assertHealthAndDeath(t, c, 0)
}

func TestCharacter_SetMaxHealth(t *testing.T) {
	c := newTestCharacter(t, "player")
	c.SetHealth(50)

	c.SetMaxHealth(200)

	assert.Equal(t, 200.0, c.MaxHealth())
	assert.Equal(t, 100.0, c.Health())
	assert.Equal(t, 0.5, c.HealthRatio())
}

func TestCharacter_Modifiers(t *testing.T) {
	c := newTestCharacter(t, "player")
	c.SetHealth(40)
	armor := NewModifier(KindHealth, attribute.Flat, 20)

	c.AddModifier(armor)
	assert.Equal(t, 60.0, c.Health())

	c.RemoveModifier(armor)
	assert.Equal(t, 40.0, c.Health())
	assert.Equal(t, 0, c.Vitals().Attribute().ModifierCount())
}

// halfDamage overrides only the damage hook.
type halfDamage struct {
	DefaultBehavior
	hits int
}

func (b *halfDamage) OnTakeDamage(c *Character, damage float64) {
	b.hits++
	c.SetHealth(c.Health() - damage/2)
}

// recorder tracks which hooks fired.
type recorder struct {
	DefaultBehavior
	inits, attacks, deaths int
}

func (r *recorder) OnInit(c *Character) {
	r.inits++
	r.DefaultBehavior.OnInit(c)
}

func (r *recorder) OnAttack(c, target *Character) {
	r.attacks++
	r.DefaultBehavior.OnAttack(c, target)
}

func (r *recorder) OnDied(c *Character) {
	r.deaths++
	r.DefaultBehavior.OnDied(c)
}

func TestCharacter_CustomDamageBehavior(t *testing.T) {
	b := &halfDamage{}
	c := NewCharacter("tank", 100, 10, b)
	c.Init()

	c.ApplyDamage(30)
	c.ApplyDamage(-30)

	assert.Equal(t, 85.0, c.Health())
	assert.Equal(t, 1, b.hits, "guards run before the hook")
}

func TestCharacter_HooksGuarded(t *testing.T) {
	r := &recorder{}
	c := NewCharacter("player", 100, 10, r)
	enemy := newTestCharacter(t, "enemy")

	c.Init()
	c.Attack(enemy)
	c.Kill()
	c.Kill()
	c.Attack(enemy)

	assert.Equal(t, 1, r.inits)
	assert.Equal(t, 1, r.attacks)
	assert.Equal(t, 1, r.deaths)
	assert.Equal(t, 90.0, enemy.Health())
}

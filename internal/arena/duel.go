// Package arena drives combat between characters: a Duel alternates attacks
// between two characters, RunAll runs independent duels concurrently.
package arena

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/frontier/internal/config"
	"github.com/udisondev/frontier/internal/model"
)

// DefaultMaxRounds caps a duel when no limit is given.
const DefaultMaxRounds = 100

// HitResult describes one attack, for observers.
type HitResult struct {
	Round        int
	Attacker     string
	Defender     string
	Damage       float64 // health the defender actually lost
	DefenderHP   float64
	DefenderDied bool
}

// Result is the outcome of a finished duel.
// Winner is empty on a draw (round cap reached with both alive).
type Result struct {
	Attacker   string
	Defender   string
	Winner     string
	Rounds     int
	AttackerHP float64
	DefenderHP float64
}

// Duel is a fight between two characters. The duel owns both characters
// while it runs; they must not be touched from elsewhere concurrently.
type Duel struct {
	Attacker  *model.Character
	Defender  *model.Character
	MaxRounds int
}

// Run initializes both characters and alternates attacks, attacker first,
// until one dies or MaxRounds rounds pass. observe may be nil.
// Returns ctx.Err() if the context is cancelled between rounds.
func (d *Duel) Run(ctx context.Context, observe func(HitResult)) (Result, error) {
	maxRounds := d.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	d.Attacker.Init()
	d.Defender.Init()

	round := 0
	for round < maxRounds && !d.Attacker.IsDead() && !d.Defender.IsDead() {
		if err := ctx.Err(); err != nil {
			return d.result(round), err
		}
		round++

		strike(round, d.Attacker, d.Defender, observe)
		if d.Defender.IsDead() {
			break
		}
		strike(round, d.Defender, d.Attacker, observe)
	}

	res := d.result(round)
	slog.Debug("duel finished",
		"attacker", res.Attacker,
		"defender", res.Defender,
		"winner", res.Winner,
		"rounds", res.Rounds)
	return res, nil
}

func (d *Duel) result(rounds int) Result {
	res := Result{
		Attacker:   d.Attacker.Name(),
		Defender:   d.Defender.Name(),
		Rounds:     rounds,
		AttackerHP: d.Attacker.Health(),
		DefenderHP: d.Defender.Health(),
	}
	switch {
	case d.Defender.IsDead() && !d.Attacker.IsDead():
		res.Winner = res.Attacker
	case d.Attacker.IsDead() && !d.Defender.IsDead():
		res.Winner = res.Defender
	}
	return res
}

func strike(round int, attacker, defender *model.Character, observe func(HitResult)) {
	before := defender.Health()
	attacker.Attack(defender)

	if observe == nil {
		return
	}
	observe(HitResult{
		Round:        round,
		Attacker:     attacker.Name(),
		Defender:     defender.Name(),
		Damage:       before - defender.Health(),
		DefenderHP:   defender.Health(),
		DefenderDied: defender.IsDead(),
	})
}

// RunAll runs duels concurrently, at most limit at a time (limit <= 0 means
// no limit). Results keep the order of duels. observe is called from many
// goroutines and must be safe for concurrent use.
//
// The first error cancels the remaining duels.
func RunAll(ctx context.Context, duels []*Duel, limit int, observe func(HitResult)) ([]Result, error) {
	results := make([]Result, len(duels))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, d := range duels {
		g.Go(func() error {
			res, err := d.Run(gctx, observe)
			if err != nil {
				return fmt.Errorf("duel %s vs %s: %w", d.Attacker.Name(), d.Defender.Name(), err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// NewCharacter builds a character from a template and grants its modifiers.
func NewCharacter(actor config.Actor) (*model.Character, error) {
	maxHealth := actor.MaxHealth
	if maxHealth == 0 {
		maxHealth = model.DefaultMaxHealth
	}

	c := model.NewCharacter(actor.Name, maxHealth, actor.Damage, nil)
	for i, m := range actor.Modifiers {
		mod, err := m.Build()
		if err != nil {
			return nil, fmt.Errorf("actor %q modifier %d: %w", actor.Name, i, err)
		}
		c.AddModifier(mod)
	}
	return c, nil
}

// FromConfig builds one Duel per configured pairing. Each duel gets fresh
// characters so duels can run concurrently.
func FromConfig(cfg config.Arena) ([]*Duel, error) {
	duels := make([]*Duel, 0, len(cfg.Duels))

	for i, dc := range cfg.Duels {
		attacker, err := buildActor(cfg, dc.Attacker)
		if err != nil {
			return nil, fmt.Errorf("duel %d: %w", i, err)
		}
		defender, err := buildActor(cfg, dc.Defender)
		if err != nil {
			return nil, fmt.Errorf("duel %d: %w", i, err)
		}

		duels = append(duels, &Duel{
			Attacker:  attacker,
			Defender:  defender,
			MaxRounds: cfg.MaxRounds,
		})
	}

	return duels, nil
}

func buildActor(cfg config.Arena, name string) (*model.Character, error) {
	actor, ok := cfg.Actor(name)
	if !ok {
		return nil, fmt.Errorf("actor %q: %w", name, config.ErrUnknownActor)
	}
	return NewCharacter(actor)
}

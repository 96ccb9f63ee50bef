package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/frontier/internal/attribute"
	"github.com/udisondev/frontier/internal/model"
)

var (
	// ErrUnknownActor indicates a duel references an actor that is not defined.
	ErrUnknownActor = errors.New("unknown actor")
	// ErrDuplicateActor indicates two actors share a name.
	ErrDuplicateActor = errors.New("duplicate actor")
	// ErrUnknownKind indicates a modifier targets an attribute kind the catalog does not know.
	ErrUnknownKind = errors.New("unknown attribute kind")
	// ErrUnknownMagnitude indicates a modifier type other than flat/percentage.
	ErrUnknownMagnitude = errors.New("unknown modifier type")
)

// Arena holds all configuration for the arena simulator.
type Arena struct {
	LogLevel string `yaml:"log_level"` // debug|info|warn|error

	// Duel limits
	MaxRounds   int `yaml:"max_rounds"`  // round cap per duel, draw when reached
	Parallelism int `yaml:"parallelism"` // concurrent duels, 0 = unlimited

	Actors []Actor `yaml:"actors"`
	Duels  []Duel  `yaml:"duels"`
}

// Actor is a character template.
type Actor struct {
	Name      string     `yaml:"name"`
	MaxHealth float64    `yaml:"max_health"`
	Damage    float64    `yaml:"damage"`
	Modifiers []Modifier `yaml:"modifiers"`
}

// Modifier describes a stat modifier granted to an actor at spawn.
type Modifier struct {
	Kind  string  `yaml:"kind"` // e.g. "health"
	Type  string  `yaml:"type"` // "flat" or "percentage"
	Value float64 `yaml:"value"`
}

// Duel pairs two actors by name. The attacker strikes first each round.
type Duel struct {
	Attacker string `yaml:"attacker"`
	Defender string `yaml:"defender"`
}

// Default returns Arena config with a single player-vs-enemy duel.
func Default() Arena {
	return Arena{
		LogLevel:    "info",
		MaxRounds:   100,
		Parallelism: 4,
		Actors: []Actor{
			{Name: "player", MaxHealth: model.DefaultMaxHealth, Damage: model.DefaultDamage},
			{Name: "enemy", MaxHealth: model.DefaultMaxHealth, Damage: model.DefaultDamage},
		},
		Duels: []Duel{
			{Attacker: "player", Defender: "enemy"},
		},
	}
}

// Load loads arena config from a YAML file over Default.
// If the file doesn't exist, returns defaults.
func Load(path string) (Arena, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks actor names, modifier definitions and duel references.
func (a Arena) Validate() error {
	seen := make(map[string]struct{}, len(a.Actors))
	for _, actor := range a.Actors {
		if _, ok := seen[actor.Name]; ok {
			return fmt.Errorf("actor %q: %w", actor.Name, ErrDuplicateActor)
		}
		seen[actor.Name] = struct{}{}

		for i, m := range actor.Modifiers {
			if _, err := m.Build(); err != nil {
				return fmt.Errorf("actor %q modifier %d: %w", actor.Name, i, err)
			}
		}
	}

	for i, d := range a.Duels {
		for _, name := range []string{d.Attacker, d.Defender} {
			if _, ok := seen[name]; !ok {
				return fmt.Errorf("duel %d: actor %q: %w", i, name, ErrUnknownActor)
			}
		}
	}

	return nil
}

// Actor returns the actor template with the given name.
func (a Arena) Actor(name string) (Actor, bool) {
	for _, actor := range a.Actors {
		if actor.Name == name {
			return actor, true
		}
	}
	return Actor{}, false
}

// Build converts the definition into a model.Modifier.
func (m Modifier) Build() (model.Modifier, error) {
	kind, ok := model.ParseKind(m.Kind)
	if !ok {
		return model.Modifier{}, fmt.Errorf("%q: %w", m.Kind, ErrUnknownKind)
	}
	magnitude, ok := attribute.ParseMagnitudeType(m.Type)
	if !ok {
		return model.Modifier{}, fmt.Errorf("%q: %w", m.Type, ErrUnknownMagnitude)
	}
	return model.NewModifier(kind, magnitude, m.Value), nil
}

// Command arena runs the configured duels and logs their outcome.
//
// Usage:
//
//	ARENA_CONFIG=config/arena.yaml go run ./cmd/arena
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/udisondev/frontier/internal/arena"
	"github.com/udisondev/frontier/internal/config"
)

const ConfigPath = "config/arena.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("ARENA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("config loaded",
		"path", cfgPath,
		"actors", len(cfg.Actors),
		"duels", len(cfg.Duels),
		"max_rounds", cfg.MaxRounds,
		"parallelism", cfg.Parallelism)

	duels, err := arena.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("building duels: %w", err)
	}

	start := time.Now()
	results, err := arena.RunAll(ctx, duels, cfg.Parallelism, func(h arena.HitResult) {
		slog.Debug("hit",
			"round", h.Round,
			"attacker", h.Attacker,
			"defender", h.Defender,
			"damage", h.Damage,
			"defender_hp", h.DefenderHP,
			"died", h.DefenderDied)
	})
	if err != nil {
		return fmt.Errorf("running duels: %w", err)
	}

	for _, res := range results {
		winner := res.Winner
		if winner == "" {
			winner = "draw"
		}
		slog.Info("duel result",
			"attacker", res.Attacker,
			"defender", res.Defender,
			"winner", winner,
			"rounds", res.Rounds,
			"attacker_hp", res.AttackerHP,
			"defender_hp", res.DefenderHP)
	}

	slog.Info("arena finished", "duels", len(results), "elapsed", time.Since(start))
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

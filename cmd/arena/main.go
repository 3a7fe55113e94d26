package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"codepilot/application/arena"
	"codepilot/application/targeting"
	"codepilot/config"
	"codepilot/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	decider, err := targeting.NewDecider(cfg.Targeting())
	if err != nil {
		slog.Error("invalid targeting config", "err", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	field := arena.NewField(cfg.Size, cfg.Size)
	app := arena.NewArenaApplication(field)

	pilot := app.AddActor(arena.KindPilot, field.Center(), arena.NewPilotController(decider, arena.DefaultTurnRate))
	for range cfg.Drones {
		pos := domain.Position2D{X: rng.Float32() * cfg.Size, Y: rng.Float32() * cfg.Size}
		app.AddActor(arena.KindDrone, pos, arena.NewRuleBotController(rng))
	}
	slog.InfoContext(ctx, "arena starting",
		"pilot", pilot.ID,
		"drones", cfg.Drones,
		"ticks", cfg.Ticks,
		"tickRate", cfg.TickRate,
		"diagnostics", cfg.Diagnostics,
	)

	runner := arena.NewRunner(app, cfg.TickRate, uint64(cfg.Ticks))

	var shots, hits, kills int
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return runner.Run(ctx)
	})
	eg.Go(func() error {
		for report := range runner.Reports() {
			shots += report.Shots
			for _, h := range report.Hits {
				hits++
				if h.Destroyed {
					kills++
					slog.InfoContext(ctx, "drone destroyed", "tick", report.Tick, "drone", h.VictimID)
				}
			}
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		slog.Error("arena error", "err", err)
		os.Exit(1)
	}
	slog.Info("arena finished", "shots", shots, "hits", hits, "kills", kills)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"codepilot/application/targeting"
	"codepilot/config"
	"codepilot/scenario"
)

func main() {
	path := flag.String("scenario", "scenario.yaml", "path to scenario YAML")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	decider, err := targeting.NewDecider(cfg.Targeting())
	if err != nil {
		slog.Error("invalid targeting config", "err", err)
		os.Exit(1)
	}

	s, err := scenario.Load(*path)
	if err != nil {
		slog.Error("failed to load scenario", "path", *path, "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	results, err := s.Run(ctx, decider)
	if err != nil {
		slog.ErrorContext(ctx, "scenario aborted", "err", err)
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Printf("%3d %-24s fire=%-5v %s\n", r.Index, r.Name, r.Fire, r.Status())
	}

	if mismatches := scenario.Mismatches(results); mismatches > 0 {
		slog.ErrorContext(ctx, "expectations failed", "count", mismatches)
		os.Exit(1)
	}
}

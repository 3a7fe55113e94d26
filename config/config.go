// Package config は環境変数 (と任意の .env ファイル) から設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"

	"codepilot/application/targeting"
	"codepilot/utils"
)

type Config struct {
	LogLevel slog.Level

	AlignmentThreshold float64
	MaxRange           float64
	HeadingTolerance   float64
	Diagnostics        targeting.DiagnosticMode

	TickRate int
	Ticks    int
	Drones   int
	Seed     uint64
	Size     float32
}

// Load は envFiles (省略時はカレントディレクトリの .env) を読み込んだ後、環境変数から設定を組み立てます。
// 既に設定済みの環境変数は上書きされません。
// 省略時の .env は無くても構いませんが、明示されたファイルが無い場合はエラーです。
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv は環境変数のみから設定を組み立てます。
func FromEnv() (Config, error) {
	var cfg Config
	var err error

	if err = cfg.LogLevel.UnmarshalText([]byte(utils.GetEnvDefault("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if cfg.AlignmentThreshold, err = utils.GetEnvFloat("TARGETING_ALIGNMENT", targeting.DefaultAlignmentThreshold); err != nil {
		return Config{}, err
	}
	if cfg.MaxRange, err = utils.GetEnvFloat("TARGETING_RANGE", targeting.DefaultMaxRange); err != nil {
		return Config{}, err
	}
	if cfg.HeadingTolerance, err = utils.GetEnvFloat("TARGETING_HEADING_TOLERANCE", targeting.DefaultHeadingTolerance); err != nil {
		return Config{}, err
	}
	mode := strings.ToLower(utils.GetEnvDefault("TARGETING_DIAGNOSTICS", "off"))
	if cfg.Diagnostics, err = targeting.ParseDiagnosticMode(mode); err != nil {
		return Config{}, err
	}

	if cfg.TickRate, err = utils.GetEnvInt("ARENA_TICK_RATE", 60); err != nil {
		return Config{}, err
	}
	if cfg.Ticks, err = utils.GetEnvInt("ARENA_TICKS", 600); err != nil {
		return Config{}, err
	}
	if cfg.Drones, err = utils.GetEnvInt("ARENA_DRONES", 3); err != nil {
		return Config{}, err
	}
	seed, err := utils.GetEnvInt("ARENA_SEED", 1)
	if err != nil {
		return Config{}, err
	}
	if seed < 0 {
		return Config{}, fmt.Errorf("invalid ARENA_SEED=%d: must not be negative", seed)
	}
	cfg.Seed = uint64(seed)
	size, err := utils.GetEnvFloat("ARENA_SIZE", 40)
	if err != nil {
		return Config{}, err
	}
	cfg.Size = float32(size)

	if cfg.TickRate <= 0 || cfg.Ticks < 0 || cfg.Drones < 0 || cfg.Size <= 0 {
		return Config{}, fmt.Errorf("invalid arena settings: tickRate=%d ticks=%d drones=%d size=%v",
			cfg.TickRate, cfg.Ticks, cfg.Drones, cfg.Size)
	}
	return cfg, nil
}

// Targeting は射撃判定の設定を返します。
func (c Config) Targeting() targeting.Config {
	return targeting.Config{
		AlignmentThreshold: c.AlignmentThreshold,
		MaxRange:           c.MaxRange,
		HeadingTolerance:   c.HeadingTolerance,
		Diagnostics:        c.Diagnostics,
	}
}

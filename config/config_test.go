package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"codepilot/application/targeting"
)

var envKeys = []string{
	"LOG_LEVEL",
	"TARGETING_ALIGNMENT",
	"TARGETING_RANGE",
	"TARGETING_HEADING_TOLERANCE",
	"TARGETING_DIAGNOSTICS",
	"ARENA_TICK_RATE",
	"ARENA_TICKS",
	"ARENA_DRONES",
	"ARENA_SEED",
	"ARENA_SIZE",
}

// clearEnv はテスト中だけ関連する環境変数を空にします。
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	tc := cfg.Targeting()
	if tc.AlignmentThreshold != targeting.DefaultAlignmentThreshold {
		t.Errorf("AlignmentThreshold = %v", tc.AlignmentThreshold)
	}
	if tc.MaxRange != targeting.DefaultMaxRange {
		t.Errorf("MaxRange = %v", tc.MaxRange)
	}
	if tc.Diagnostics != targeting.DiagnosticsOff {
		t.Errorf("Diagnostics = %s", tc.Diagnostics)
	}
	if cfg.TickRate != 60 || cfg.Ticks != 600 || cfg.Drones != 3 || cfg.Seed != 1 || cfg.Size != 40 {
		t.Errorf("arena defaults = %+v", cfg)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TARGETING_RANGE", "25")
	t.Setenv("TARGETING_DIAGNOSTICS", "Aligned")
	t.Setenv("ARENA_DRONES", "7")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.MaxRange != 25 {
		t.Errorf("MaxRange = %v, want 25", cfg.MaxRange)
	}
	if cfg.Diagnostics != targeting.DiagnosticsAligned {
		t.Errorf("Diagnostics = %s, want aligned", cfg.Diagnostics)
	}
	if cfg.Drones != 7 {
		t.Errorf("Drones = %d, want 7", cfg.Drones)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"LOG_LEVEL":             "loud",
		"TARGETING_RANGE":       "far",
		"TARGETING_DIAGNOSTICS": "verbose",
		"ARENA_TICK_RATE":       "0",
		"ARENA_DRONES":          "-1",
		"ARENA_SEED":            "-3",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("%s=%q: expected error", key, value)
			}
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("ARENA_TICKS")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("ARENA_TICKS=42\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ticks != 42 {
		t.Errorf("Ticks = %d, want 42", cfg.Ticks)
	}
}

// 省略時の .env が無いのはエラーにしない
func TestLoad_MissingDefaultEnvIsNotAnError(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	if _, err := Load(); err != nil {
		t.Errorf("Load without .env: %v", err)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Load with a missing explicit file: expected error")
	}
}

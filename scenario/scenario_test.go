package scenario

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codepilot/application/targeting"
)

const sample = `
name: threshold checks
frames:
  - name: dead ahead
    player: [0, 0, 1, 0]
    enemies: [[5, 0]]
    expect: true
  - name: at max range
    player: [0, 0, 1, 0]
    enemies: [[10, 0]]
    expect: false
  - name: inside max range
    player: [0, 0, 1, 0, 0.0]
    enemies: [[9, 0, 1.57]]
    expect: true
  - name: coincident
    player: [0, 0, 1, 0]
    enemies: [[0, 0]]
  - name: short player
    player: [0, 0, 1]
    enemies: []
  - name: wrong expectation
    player: [0, 0, 1, 0]
    enemies: [[0, 5]]
    expect: true
`

func TestParseAndRun(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Name != "threshold checks" {
		t.Errorf("Name = %q", s.Name)
	}

	d, err := targeting.NewDecider(targeting.DefaultConfig())
	if err != nil {
		t.Fatalf("NewDecider: %v", err)
	}
	results, err := s.Run(context.Background(), d)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("results = %d, want 6", len(results))
	}

	wantFire := []bool{true, false, true, false, false, false}
	for i, r := range results {
		if r.Fire != wantFire[i] {
			t.Errorf("frame %d (%s): Fire = %v, want %v", i, r.Name, r.Fire, wantFire[i])
		}
	}
	for i := 0; i < 3; i++ {
		if results[i].Err != nil || results[i].Mismatch {
			t.Errorf("frame %d: unexpected result %+v", i, results[i])
		}
	}
	if !errors.Is(results[3].Err, targeting.ErrUndefinedDirection) {
		t.Errorf("frame 3: Err = %v, want ErrUndefinedDirection", results[3].Err)
	}
	if !errors.Is(results[4].Err, targeting.ErrMalformedInput) {
		t.Errorf("frame 4: Err = %v, want ErrMalformedInput", results[4].Err)
	}
	if !results[5].Mismatch {
		t.Error("frame 5: expected mismatch")
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse([]byte("name: nothing\n")); !errors.Is(err, ErrEmptyScenario) {
		t.Errorf("err = %v, want ErrEmptyScenario", err)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("frames: [[")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Frames) != 6 {
		t.Errorf("frames = %d, want 6", len(s.Frames))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRun_CanceledContext(t *testing.T) {
	s, _ := Parse([]byte(sample))
	d, _ := targeting.NewDecider(targeting.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := s.Run(ctx, d)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}

func TestLoad_Testdata(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "thresholds.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d, _ := targeting.NewDecider(targeting.DefaultConfig())

	results, err := s.Run(context.Background(), d)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("frame %s: %v", r.Name, r.Err)
		}
		if r.Mismatch {
			t.Errorf("frame %s: fire = %v, expectation not met", r.Name, r.Fire)
		}
	}
}

// エラーで false になったフレームも expect と異なれば不一致として数える
func TestMismatches_ErrorFrameWithExpectation(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "mismatch.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d, _ := targeting.NewDecider(targeting.DefaultConfig())

	results, err := s.Run(context.Background(), d)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}

	coincident := results[0]
	if !errors.Is(coincident.Err, targeting.ErrUndefinedDirection) {
		t.Errorf("frame 0: Err = %v, want ErrUndefinedDirection", coincident.Err)
	}
	if !coincident.Mismatch {
		t.Error("frame 0: expected mismatch for an error frame expecting fire")
	}
	if got := coincident.Status(); !strings.HasPrefix(got, "MISMATCH, error: ") {
		t.Errorf("frame 0: Status() = %q", got)
	}
	if results[1].Mismatch {
		t.Error("frame 1: error frame expecting false must not be a mismatch")
	}
	if got := Mismatches(results); got != 2 {
		t.Errorf("Mismatches = %d, want 2", got)
	}
}

func TestFrameResult_Status(t *testing.T) {
	tests := []struct {
		name string
		r    FrameResult
		want string
	}{
		{"ok", FrameResult{Fire: true}, "ok"},
		{"mismatch", FrameResult{Mismatch: true}, "MISMATCH"},
		{"error", FrameResult{Err: targeting.ErrMalformedInput}, "error: " + targeting.ErrMalformedInput.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

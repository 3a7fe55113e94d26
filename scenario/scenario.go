// Package scenario は射撃判定の入力スナップショット列を YAML から読み込み、順に評価します。
package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"codepilot/application/targeting"
)

var ErrEmptyScenario = errors.New("scenario has no frames")

// Frame は1tick分の入力です。Player は [x, y, hx, hy], Enemies は [[x, y], ...] 形式です。
type Frame struct {
	Name    string      `yaml:"name"`
	Player  []float64   `yaml:"player"`
	Enemies [][]float64 `yaml:"enemies"`
	Expect  *bool       `yaml:"expect,omitempty"`
}

type Scenario struct {
	Name   string  `yaml:"name"`
	Frames []Frame `yaml:"frames"`
}

// FrameResult は1フレームの評価結果です。Err がある場合 Fire は常に false です。
type FrameResult struct {
	Index int
	Name  string
	Fire  bool
	Err   error
	// Mismatch は expect が指定されていて結果と異なる場合に true です。
	Mismatch bool
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(s.Frames) == 0 {
		return nil, ErrEmptyScenario
	}
	return &s, nil
}

// Run は全フレームを順に評価します。フレーム単位のエラーは結果に記録され、評価は続行されます。
func (s *Scenario) Run(ctx context.Context, d *targeting.Decider) ([]FrameResult, error) {
	results := make([]FrameResult, 0, len(s.Frames))
	for i, f := range s.Frames {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		fire, err := d.DecideTuples(ctx, f.Player, f.Enemies)
		r := FrameResult{Index: i, Name: f.Name, Fire: fire, Err: err}
		if err != nil {
			r.Fire = false
		}
		if f.Expect != nil && *f.Expect != r.Fire {
			r.Mismatch = true
		}
		results = append(results, r)
	}
	return results, nil
}

// Status は1行表示用の判定状態です。エラーと期待値の不一致が両方ある場合は両方を含めます。
func (r FrameResult) Status() string {
	switch {
	case r.Err != nil && r.Mismatch:
		return "MISMATCH, error: " + r.Err.Error()
	case r.Err != nil:
		return "error: " + r.Err.Error()
	case r.Mismatch:
		return "MISMATCH"
	default:
		return "ok"
	}
}

// Mismatches は期待値と異なった (エラーで false になったものを含む) フレーム数を返します。
func Mismatches(results []FrameResult) int {
	n := 0
	for _, r := range results {
		if r.Mismatch {
			n++
		}
	}
	return n
}

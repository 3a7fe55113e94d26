// Package targeting はプレイヤーの位置と向きから、射撃すべきかを判定します。
package targeting

import (
	"context"
	"fmt"
	"math"

	"codepilot/domain"
	"codepilot/utils"
)

const (
	DefaultAlignmentThreshold float64 = 0.99  // cos(約8.1度)
	DefaultMaxRange           float64 = 10.0  // 座標と同じ単位
	DefaultHeadingTolerance   float64 = 0.001 // |heading| と 1 の許容誤差
)

// Config は判定の閾値と診断出力の設定です。
type Config struct {
	// AlignmentThreshold を alignment が厳密に超えたときに向きが合っているとみなします。
	AlignmentThreshold float64
	// MaxRange より厳密に近い敵のみ対象にします。
	MaxRange         float64
	HeadingTolerance float64

	Diagnostics DiagnosticMode
	// Observer が nil で Diagnostics が有効な場合は SlogObserver を使います。
	Observer Observer
}

func DefaultConfig() Config {
	return Config{
		AlignmentThreshold: DefaultAlignmentThreshold,
		MaxRange:           DefaultMaxRange,
		HeadingTolerance:   DefaultHeadingTolerance,
	}
}

func (c Config) validate() error {
	if !utils.IsFinite(c.AlignmentThreshold) || c.AlignmentThreshold < -1 || c.AlignmentThreshold >= 1 {
		return fmt.Errorf("%w: alignment threshold %v must be in [-1, 1)", ErrInvalidConfig, c.AlignmentThreshold)
	}
	if !utils.IsFinite(c.MaxRange) || c.MaxRange <= 0 {
		return fmt.Errorf("%w: max range %v must be positive", ErrInvalidConfig, c.MaxRange)
	}
	if !utils.IsFinite(c.HeadingTolerance) || c.HeadingTolerance < 0 || c.HeadingTolerance >= 1 {
		return fmt.Errorf("%w: heading tolerance %v must be in [0, 1)", ErrInvalidConfig, c.HeadingTolerance)
	}
	if c.Diagnostics > DiagnosticsAligned {
		return fmt.Errorf("%w: diagnostics mode %s", ErrInvalidConfig, c.Diagnostics)
	}
	return nil
}

// Decider は射撃判定を行います。呼び出し間で状態を持たないため、複数のgoroutineから使えます。
type Decider struct {
	cfg Config
}

func NewDecider(cfg Config) (*Decider, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Diagnostics != DiagnosticsOff && cfg.Observer == nil {
		cfg.Observer = SlogObserver{}
	}
	return &Decider{cfg: cfg}, nil
}

func (d *Decider) Config() Config {
	return d.cfg
}

// Decide は敵リストを先頭から全て評価し、1体でも条件を満たせば true を返します。
// 途中で true になっても残りの敵の評価 (と診断通知) は続けます。
// エラー時は判定全体を中断し false を返します。
func (d *Decider) Decide(ctx context.Context, player PlayerState, enemies []domain.Vec2) (bool, error) {
	if err := d.validatePlayer(player); err != nil {
		return false, err
	}

	fire := false
	for i, enemy := range enemies {
		reading, err := Evaluate(player, enemy, d.cfg)
		if err != nil {
			return false, fmt.Errorf("enemy[%d] %v: %w", i, enemy, err)
		}
		reading.Index = i

		if d.cfg.Observer != nil && d.cfg.Diagnostics.wants(reading) {
			d.cfg.Observer.Observe(ctx, reading)
		}
		if reading.Qualifies() {
			fire = true
		}
	}
	return fire, nil
}

// DecideTuples は外部から渡されたタプル形式の入力をパースして判定します。
func (d *Decider) DecideTuples(ctx context.Context, player []float64, enemies [][]float64) (bool, error) {
	state, err := ParsePlayerState(player)
	if err != nil {
		return false, err
	}
	positions, err := ParseEnemyPositions(enemies)
	if err != nil {
		return false, err
	}
	return d.Decide(ctx, state, positions)
}

func (d *Decider) validatePlayer(player PlayerState) error {
	if !utils.FiniteVec(player.Position) || !utils.FiniteVec(player.Heading) {
		return fmt.Errorf("%w: player %+v is not finite", ErrMalformedInput, player)
	}
	l := player.Heading.Len()
	if math.Abs(l-1) > d.cfg.HeadingTolerance {
		return fmt.Errorf("%w: |heading| = %v", ErrNonUnitHeading, l)
	}
	return nil
}

// Evaluate は1体の敵について距離と alignment を倍精度で計算します。
// Reading.Index は呼び出し側で設定します。
func Evaluate(player PlayerState, enemy domain.Vec2, cfg Config) (Reading, error) {
	if !utils.FiniteVec(enemy) {
		return Reading{}, fmt.Errorf("%w: enemy is not finite", ErrMalformedInput)
	}

	d := enemy.Sub(player.Position)
	dir, ok := d.Normalize()
	if !ok {
		return Reading{}, ErrUndefinedDirection
	}

	r := Reading{
		Enemy:     enemy,
		Distance:  d.Len(),
		Alignment: dir.Dot(player.Heading),
	}
	if r.Alignment <= cfg.AlignmentThreshold {
		r.Reason |= domain.RejectMisaligned
	}
	if r.Distance >= cfg.MaxRange {
		r.Reason |= domain.RejectOutOfRange
	}
	return r, nil
}

var defaultDecider = &Decider{cfg: DefaultConfig()}

// ShouldFire はデフォルトの閾値 (alignment > 0.99, 距離 < 10) で判定します。
func ShouldFire(ctx context.Context, player PlayerState, enemies []domain.Vec2) (bool, error) {
	return defaultDecider.Decide(ctx, player, enemies)
}

package targeting

import (
	"context"
	"fmt"
	"log/slog"

	"codepilot/domain"
)

//go:generate go tool mockgen -destination=./mocks/observer_mock.go -package=mocks . Observer

// Observer は敵ごとの評価結果を受け取ります。判定結果には影響しません。
type Observer interface {
	Observe(ctx context.Context, reading Reading)
}

// ObserverFunc は関数を Observer として扱うためのアダプタです。
type ObserverFunc func(ctx context.Context, reading Reading)

func (f ObserverFunc) Observe(ctx context.Context, reading Reading) { f(ctx, reading) }

// Reading は1体の敵に対する評価値です。
type Reading struct {
	Index     int
	Enemy     domain.Vec2
	Distance  float64
	Alignment float64
	Reason    domain.RejectReason
}

// Qualifies は射撃条件を満たしたかを返します。
func (r Reading) Qualifies() bool {
	return r.Reason == domain.RejectNone
}

// DiagnosticMode は Observer にどの評価値を通知するかを決めます。
type DiagnosticMode uint8

const (
	DiagnosticsOff     DiagnosticMode = iota
	DiagnosticsAll                    // 全ての敵を通知
	DiagnosticsAligned                // 向きの閾値を超えた敵のみ通知
)

func (m DiagnosticMode) String() string {
	switch m {
	case DiagnosticsOff:
		return "off"
	case DiagnosticsAll:
		return "all"
	case DiagnosticsAligned:
		return "aligned"
	default:
		return fmt.Sprintf("unknown(%d)", m)
	}
}

func ParseDiagnosticMode(s string) (DiagnosticMode, error) {
	switch s {
	case "", "off":
		return DiagnosticsOff, nil
	case "all":
		return DiagnosticsAll, nil
	case "aligned":
		return DiagnosticsAligned, nil
	default:
		return DiagnosticsOff, fmt.Errorf("%w: unknown diagnostics mode %q", ErrInvalidConfig, s)
	}
}

func (m DiagnosticMode) wants(r Reading) bool {
	switch m {
	case DiagnosticsAll:
		return true
	case DiagnosticsAligned:
		return !r.Reason.Has(domain.RejectMisaligned)
	default:
		return false
	}
}

// SlogObserver は評価値をデバッグログに出力します。
type SlogObserver struct {
	Logger *slog.Logger
}

func (o SlogObserver) Observe(ctx context.Context, r Reading) {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.DebugContext(ctx, "targeting reading",
		"index", r.Index,
		"enemy", r.Enemy,
		"distance", r.Distance,
		"alignment", r.Alignment,
		"reason", r.Reason,
	)
}

package arena

import (
	"context"
	"time"
)

const DefaultTickRate = 60

// Runner は一定間隔で ArenaApplication.Tick を呼び出すループです。
type Runner struct {
	app          *ArenaApplication
	tickInterval time.Duration
	maxTicks     uint64 // 0 なら無制限
	reports      chan TickReport
}

func NewRunner(app *ArenaApplication, tickRate int, maxTicks uint64) *Runner {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Runner{
		app:          app,
		tickInterval: time.Second / time.Duration(tickRate),
		maxTicks:     maxTicks,
		reports:      make(chan TickReport, 64),
	}
}

// Reports はtickごとの結果を流します。Run の終了時に閉じられます。
func (r *Runner) Reports() <-chan TickReport {
	return r.reports
}

// Run は ctx がキャンセルされるか maxTicks に達するまでtickを進めます。
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.reports)

	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			report := r.app.Tick(ctx)
			select {
			case r.reports <- report:
			case <-ctx.Done():
				return nil
			}
			n++
			if r.maxTicks > 0 && n >= r.maxTicks {
				return nil
			}
		}
	}
}

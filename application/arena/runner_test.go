package arena

import (
	"context"
	"testing"
	"time"
)

func TestRunner_StopsAfterMaxTicks(t *testing.T) {
	app := NewArenaApplication(NewField(10, 10))
	r := NewRunner(app, 1000, 5)

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	var ticks []uint64
	for report := range r.Reports() {
		ticks = append(ticks, report.Tick)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}

	if len(ticks) != 5 {
		t.Fatalf("reports = %d, want 5", len(ticks))
	}
	for i, tick := range ticks {
		if tick != uint64(i+1) {
			t.Errorf("report[%d].Tick = %d, want %d", i, tick, i+1)
		}
	}
}

func TestRunner_StopsOnContextCancel(t *testing.T) {
	app := NewArenaApplication(NewField(10, 10))
	r := NewRunner(app, 1000, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	<-r.Reports()
	cancel()

	// 残りを読み捨てて close を待つ
	for range r.Reports() {
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Runner did not stop after context cancel")
	}
}

func TestNewRunner_DefaultTickRate(t *testing.T) {
	r := NewRunner(NewArenaApplication(NewField(10, 10)), 0, 0)
	if r.tickInterval != time.Second/DefaultTickRate {
		t.Errorf("tickInterval = %v, want %v", r.tickInterval, time.Second/DefaultTickRate)
	}
}

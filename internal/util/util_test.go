package util

import (
	"context"
	"testing"
	"time"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level string
		want  bool // whether debug records are enabled
	}{
		{"debug", true},
		{"info", false},
		{"warn", false},
		{"bogus", false},
	}
	for _, tt := range tests {
		logger := NewLogger(tt.level, "text")
		got := logger.Enabled(context.Background(), -4) // slog.LevelDebug
		if got != tt.want {
			t.Errorf("level %q: debug enabled = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestRateLimiterFirstCallImmediate(t *testing.T) {
	rl := NewRateLimiter(60)

	start := time.Now()
	if err := rl.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Error("first Wait should not block")
	}
}

func TestRateLimiterPaces(t *testing.T) {
	// 600/min is one slot per 100ms.
	rl := NewRateLimiter(600)
	ctx := context.Background()

	if err := rl.Wait(ctx); err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	if err := rl.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("second Wait returned after %v, want ~100ms pacing", elapsed)
	}
}

func TestRateLimiterNoBurst(t *testing.T) {
	// Idle time does not accumulate credit: after a pause, consecutive
	// calls are still one interval apart.
	rl := NewRateLimiter(600)
	ctx := context.Background()

	if err := rl.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	time.Sleep(250 * time.Millisecond)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := rl.Wait(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Errorf("three calls after idle took %v, want >=200ms of pacing", elapsed)
	}
}

func TestRateLimiterCancellation(t *testing.T) {
	// One per minute: the second slot is a minute out.
	rl := NewRateLimiter(1)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := rl.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if err := rl.Wait(ctx); err == nil {
		t.Error("Wait should fail once the context expires")
	}
}

package redisdb

import (
	"testing"
	"time"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	window := 60 * time.Second

	// 30s since the last action: 30s left to wait.
	if got := Remaining(now.Add(-30*time.Second), now, window); got != 30*time.Second {
		t.Fatalf("expected 30s remaining, got %v", got)
	}

	// 120s since the last action: the window has passed.
	if got := Remaining(now.Add(-120*time.Second), now, window); got != 0 {
		t.Fatalf("expected no remaining cooldown, got %v", got)
	}

	// Exactly at the boundary.
	if got := Remaining(now.Add(-60*time.Second), now, window); got != 0 {
		t.Fatalf("expected no remaining cooldown at boundary, got %v", got)
	}
}

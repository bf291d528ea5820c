package hashing

import (
	"strings"
	"testing"
	"time"
)

func TestHashRoundTrip(t *testing.T) {
	expiry := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	token := Hash("/attendance/shot.png", expiry)

	if strings.Contains(token, "/") {
		t.Fatalf("token must be a single path segment, got %q", token)
	}

	opened := OpenHash(token)
	parts := strings.Split(opened, " ")
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d: %q", len(parts), opened)
	}
	if parts[0] != "/attendance/shot.png" {
		t.Fatalf("unexpected path: %q", parts[0])
	}
	if parts[1]+" "+parts[2] != "01.06.2025 12:30:00" {
		t.Fatalf("unexpected expiry: %q", parts[1]+" "+parts[2])
	}
}

func TestOpenHashGarbage(t *testing.T) {
	if got := OpenHash("not base64 at all!!"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

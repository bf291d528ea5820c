package service

import (
	"testing"
	"time"
)

func TestShiftLabel(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{5, ShiftNight},
		{6, ShiftMorning},
		{13, ShiftMorning},
		{14, ShiftAfternoon},
		{21, ShiftAfternoon},
		{22, ShiftNight},
		{0, ShiftNight},
	}

	for _, c := range cases {
		at := time.Date(2025, 1, 1, c.hour, 30, 0, 0, time.UTC)
		if got := ShiftLabel(at); got != c.want {
			t.Fatalf("hour %d: expected %s, got %s", c.hour, c.want, got)
		}
	}
}

func TestCalculateTotalHours(t *testing.T) {
	timeIn := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	timeOut := time.Date(2025, 1, 1, 17, 0, 0, 0, time.UTC)

	if got := CalculateTotalHours(&timeIn, &timeOut); got != "9.00" {
		t.Fatalf("expected 9.00, got %s", got)
	}

	// Swapped arguments still yield a non-negative total.
	if got := CalculateTotalHours(&timeOut, &timeIn); got != "9.00" {
		t.Fatalf("swapped: expected 9.00, got %s", got)
	}

	if got := CalculateTotalHours(nil, &timeOut); got != "0.00" {
		t.Fatalf("nil time-in: expected 0.00, got %s", got)
	}
	if got := CalculateTotalHours(&timeIn, nil); got != "0.00" {
		t.Fatalf("nil time-out: expected 0.00, got %s", got)
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime("2025-01-01T13:05:00"); got != "1:05 PM" {
		t.Fatalf("expected 1:05 PM, got %s", got)
	}
	if got := FormatTime("09:30:00"); got != "9:30 AM" {
		t.Fatalf("expected 9:30 AM, got %s", got)
	}
	if got := FormatTime("not-a-time"); got != "12:00 AM" {
		t.Fatalf("expected fallback 12:00 AM, got %s", got)
	}
}

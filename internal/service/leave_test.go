package service

import (
	"testing"
	"time"
)

func TestLeaveUnits(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	units, err := LeaveUnits(start, end, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if units != 3 {
		t.Fatalf("expected 3 units, got %v", units)
	}

	units, err = LeaveUnits(start, end, true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if units != 2 {
		t.Fatalf("expected 2 units, got %v", units)
	}

	units, err = LeaveUnits(start, start, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if units != 0.5 {
		t.Fatalf("expected 0.5 units, got %v", units)
	}
}

func TestLeaveUnitsInvalid(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	if _, err := LeaveUnits(start, end, false, false); err == nil {
		t.Fatal("expected error for reversed range")
	}

	if _, err := LeaveUnits(start, start, true, true); err == nil {
		t.Fatal("expected error for double half-day on a single day")
	}
}

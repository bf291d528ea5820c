package pagination

import "testing"

func TestOffset(t *testing.T) {
	if got := Offset(1, 5); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
	if got := Offset(3, 5); got != 10 {
		t.Fatalf("expected offset 10, got %d", got)
	}
	if got := Offset(0, 5); got != 0 {
		t.Fatalf("expected offset 0 for invalid page, got %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	if got := TotalPages(12, 5); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	if got := TotalPages(10, 5); got != 2 {
		t.Fatalf("expected 2 pages, got %d", got)
	}
	if got := TotalPages(0, 5); got != 0 {
		t.Fatalf("expected 0 pages, got %d", got)
	}
}

func TestBounds(t *testing.T) {
	start, end := Bounds(1, 5, 12)
	if start != 0 || end != 5 {
		t.Fatalf("page 1: expected [0,5), got [%d,%d)", start, end)
	}

	start, end = Bounds(3, 5, 12)
	if start != 10 || end != 12 {
		t.Fatalf("page 3: expected [10,12), got [%d,%d)", start, end)
	}

	start, end = Bounds(4, 5, 12)
	if start != end {
		t.Fatalf("page 4: expected empty range, got [%d,%d)", start, end)
	}
}

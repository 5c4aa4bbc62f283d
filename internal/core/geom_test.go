package core

import (
	"math"
	"testing"
)

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", b.Bottom())
	}
}

func TestBoxEmpty(t *testing.T) {
	tests := []struct {
		name     string
		b        Box
		expected bool
	}{
		{"regular", NewBox(0, 0, 10, 10), false},
		{"zero width", NewBox(0, 0, 0, 10), true},
		{"zero height", NewBox(0, 0, 10, 0), true},
		{"at infinity", NewBox(0, math.Inf(1), 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.b.Empty(); got != tc.expected {
				t.Errorf("Empty() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxCells(t *testing.T) {
	tests := []struct {
		name     string
		b        Box
		expected Rect
	}{
		{"aligned", NewBox(10, 20, 20, 40), NewRect(1, 1, 2, 2)},
		{"partial cells included", NewBox(15, 25, 10, 10), NewRect(1, 1, 2, 1)},
		{"origin", NewBox(0, 0, 1, 1), NewRect(0, 0, 1, 1)},
		{"negative x", NewBox(-15, 0, 10, 20), NewRect(-2, 0, 2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.b.Cells(10, 20)
			if got != tc.expected {
				t.Errorf("Cells() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestCanvasSize(t *testing.T) {
	cfg := DefaultConfig()
	w, h := cfg.CanvasSize()
	if w != 800 || h != 480 {
		t.Errorf("CanvasSize() = (%v, %v), expected (800, 480)", w, h)
	}
}

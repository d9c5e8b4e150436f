package geom

import "testing"

func TestRectContainsStrict(t *testing.T) {
	r := XYWH(2, 1, 4, 3) // [2,6) x [1,4)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Point{X: 3, Y: 2}, true},
		{"left edge", Point{X: 2, Y: 2}, false},
		{"right edge", Point{X: 6, Y: 2}, false},
		{"top edge", Point{X: 3, Y: 1}, false},
		{"bottom edge", Point{X: 3, Y: 4}, false},
		{"corner", Point{X: 2, Y: 1}, false},
		{"outside", Point{X: 10, Y: 10}, false},
		{"fractional interior", Point{X: 2.5, Y: 3.9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsStrict(tt.p); got != tt.want {
				t.Errorf("ContainsStrict(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := XYWH(0, 0, 3, 2)

	if !r.Contains(Point{X: 0, Y: 0}) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(Point{X: 3, Y: 0}) {
		t.Error("right edge should not be contained")
	}
	if r.Contains(Point{X: 0, Y: 2}) {
		t.Error("bottom edge should not be contained")
	}
}

func TestRectAccessors(t *testing.T) {
	r := XYWH(1, 2, 5, 7)

	if r.Width() != 5 {
		t.Errorf("Width() = %v, want 5", r.Width())
	}
	if r.Height() != 7 {
		t.Errorf("Height() = %v, want 7", r.Height())
	}
	if got := r.TopLeft(); got != (Point{X: 1, Y: 2}) {
		t.Errorf("TopLeft() = %v, want (1,2)", got)
	}

	moved := r.Translate(Point{X: -1, Y: 3})
	if moved != XYWH(0, 5, 5, 7) {
		t.Errorf("Translate() = %v, want %v", moved, XYWH(0, 5, 5, 7))
	}

	if !(Rect{}).Empty() {
		t.Error("zero rect should be empty")
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 5, Y: 4}
	q := Point{X: 2, Y: 1}

	if got := p.Sub(q); got != (Point{X: 3, Y: 3}) {
		t.Errorf("Sub() = %v, want (3,3)", got)
	}
	if got := p.Add(q); got != (Point{X: 7, Y: 5}) {
		t.Errorf("Add() = %v, want (7,5)", got)
	}
}

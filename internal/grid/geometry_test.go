package grid

import "testing"

func TestRectangleContains(t *testing.T) {
	r := Rectangle{X: 10, Y: 20, Width: 30, Height: 40}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Point{X: 25, Y: 40}, true},
		{"top-left edge inclusive", Point{X: 10, Y: 20}, true},
		{"right edge exclusive", Point{X: 40, Y: 40}, false},
		{"bottom edge exclusive", Point{X: 25, Y: 60}, false},
		{"outside left", Point{X: 5, Y: 40}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}

	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if got := b.Distance(a); got != 5 {
		t.Errorf("Distance() is not symmetric: %v", got)
	}
}

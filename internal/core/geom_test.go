package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = %d,%d, want 25,25", r.Right(), r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name           string
		outerW, outerH int
		w, h           int
		want           Rect
	}{
		{"classic layout", 100, 30, 79, 25, NewRect(10, 2, 79, 25)},
		{"odd remainder", 80, 24, 79, 25, NewRect(0, 0, 79, 25)},
		{"small layout", 80, 24, 63, 21, NewRect(8, 1, 63, 21)},
		{"larger than outer", 10, 5, 20, 8, NewRect(0, 0, 20, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenteredRect(tt.outerW, tt.outerH, tt.w, tt.h); got != tt.want {
				t.Errorf("CenteredRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

package core

import "testing"

func TestColorPalette(t *testing.T) {
	tests := []struct {
		c      Color
		want   int
		wantOK bool
	}{
		{ColorDefault, 0, false},
		{ColorRed, 1, true},
		{ColorBrightWhite, 15, true},
		{ColorOrange, 208, true},
		{ColorGray, 245, true},
		{Color(200), 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.c.Palette()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Color(%d).Palette() = %d, %v, want %d, %v", tt.c, got, ok, tt.want, tt.wantOK)
		}
	}
}

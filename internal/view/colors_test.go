package view

import (
	"image/color"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{65 * time.Second, "01:05"},
		{10 * time.Minute, "10:00"},
		{3661 * time.Second, "61:01"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestPaletteByName(t *testing.T) {
	for _, name := range []string{"neon", "ember", "mono"} {
		if got := paletteByName(name); got.name != name {
			t.Errorf("paletteByName(%q).name = %q", name, got.name)
		}
	}
	if got := paletteByName("unknown"); got.name != "neon" {
		t.Errorf("unknown palette resolved to %q, want neon fallback", got.name)
	}
}

func TestColorHelpers(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	if got := withAlpha(c, 7); got.A != 7 || got.R != 200 {
		t.Errorf("withAlpha = %v", got)
	}

	half := scaled(c, 0.5)
	if half.R != 100 || half.G != 50 || half.B != 25 || half.A != 255 {
		t.Errorf("scaled by 0.5 = %v", half)
	}
	if got := scaled(c, 2); got.R != 200 {
		t.Errorf("scaled clamps factor, got %v", got)
	}

	a := color.RGBA{A: 255}
	b := color.RGBA{R: 100, G: 200, B: 40, A: 255}
	if got := lerpColor(a, b, 0); got != a {
		t.Errorf("lerp at 0 = %v, want %v", got, a)
	}
	if got := lerpColor(a, b, 1); got != b {
		t.Errorf("lerp at 1 = %v, want %v", got, b)
	}
	if got := lerpColor(a, b, 0.5); got.G != 100 {
		t.Errorf("lerp midpoint green = %d, want 100", got.G)
	}
}

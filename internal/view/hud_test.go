package view

import "testing"

func TestTrendGlyph(t *testing.T) {
	rising := make([]float64, trendWindow)
	falling := make([]float64, trendWindow)
	flat := make([]float64, trendWindow)
	for i := range rising {
		rising[i] = float64(i) / float64(trendWindow)
		falling[i] = 1 - float64(i)/float64(trendWindow)
		flat[i] = 0.5
	}

	tests := []struct {
		name string
		hist []float64
		want string
	}{
		{"rising", rising, "^"},
		{"falling", falling, "v"},
		{"flat", flat, "-"},
		{"short", []float64{0, 1}, "-"},
		{"empty", nil, "-"},
	}
	for _, tt := range tests {
		if got := trendGlyph(tt.hist); got != tt.want {
			t.Errorf("%s: trendGlyph = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPushEnergyKeepsWindow(t *testing.T) {
	v := &View{}
	for i := 0; i < trendWindow*3; i++ {
		v.pushEnergy(float64(i))
	}
	if got := len(v.energyHist); got != trendWindow {
		t.Fatalf("history length = %d, want %d", got, trendWindow)
	}
	if last := v.energyHist[len(v.energyHist)-1]; last != float64(trendWindow*3-1) {
		t.Errorf("newest entry = %f, want %f", last, float64(trendWindow*3-1))
	}
	if first := v.energyHist[0]; first != float64(trendWindow*2) {
		t.Errorf("oldest entry = %f, want %f", first, float64(trendWindow*2))
	}
}

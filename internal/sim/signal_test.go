package sim

import (
	"math"
	"testing"
)

func TestSignalKindString(t *testing.T) {
	tests := []struct {
		kind SignalKind
		want string
	}{
		{SignalForward, "forward"},
		{SignalBackward, "backward"},
		{SignalLateral, "lateral"},
		{SignalKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	waypoints := []Point{{X: 0, Y: 0}, {X: 100, Y: 50}, {X: 200, Y: 0}}
	path := expandPath(waypoints)

	want := 1 + (len(waypoints)-1)*pathPointsPerHop
	if len(path) != want {
		t.Fatalf("path length = %d, want %d", len(path), want)
	}
	for i, wp := range waypoints {
		if got := path[i*pathPointsPerHop]; got != wp {
			t.Errorf("waypoint %d lands at %v, want %v", i, got, wp)
		}
	}
}

func TestExpandPathDegenerate(t *testing.T) {
	if got := expandPath(nil); got != nil {
		t.Errorf("expandPath(nil) = %v, want nil", got)
	}
	single := expandPath([]Point{{X: 1, Y: 2}})
	if len(single) != 1 || single[0] != (Point{X: 1, Y: 2}) {
		t.Errorf("single waypoint path = %v, want the waypoint alone", single)
	}
}

func TestSignalAt(t *testing.T) {
	sig := &Signal{Path: []Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}}}

	sig.Progress = 0
	if got := sig.At(); got != (Point{X: 0}) {
		t.Errorf("At(0) = %v, want first point", got)
	}
	sig.Progress = 1
	if got := sig.At(); got != (Point{X: 3}) {
		t.Errorf("At(1) = %v, want last point", got)
	}
	sig.Progress = 0.5
	if got := sig.At(); got != (Point{X: 1}) {
		t.Errorf("At(0.5) = %v, want %v", got, Point{X: 1})
	}

	empty := &Signal{}
	if got := empty.At(); got != (Point{}) {
		t.Errorf("At on empty path = %v, want origin", got)
	}
}

func TestSignalTrail(t *testing.T) {
	path := make([]Point, 40)
	for i := range path {
		path[i] = Point{X: float64(i)}
	}
	sig := &Signal{Path: path, Progress: 0.5}

	trail := sig.Trail()
	if len(trail) != TrailLength {
		t.Fatalf("trail length = %d, want %d", len(trail), TrailLength)
	}
	if last := trail[len(trail)-1]; last != sig.At() {
		t.Errorf("trail ends at %v, current position %v", last, sig.At())
	}
	for i := 1; i < len(trail); i++ {
		if trail[i].X <= trail[i-1].X {
			t.Errorf("trail not in travel order at %d", i)
		}
	}

	sig.Progress = 0
	if got := len(sig.Trail()); got != 1 {
		t.Errorf("trail length at start = %d, want 1", got)
	}
}

func TestReversePoints(t *testing.T) {
	pts := []Point{{X: 1}, {X: 2}, {X: 3}}
	reversePoints(pts)
	for i, want := range []float64{3, 2, 1} {
		if pts[i].X != want {
			t.Fatalf("pts[%d].X = %f, want %f", i, pts[i].X, want)
		}
	}

	even := []Point{{X: 1}, {X: 2}}
	reversePoints(even)
	if even[0].X != 2 || even[1].X != 1 {
		t.Errorf("even reversal = %v", even)
	}
}

func TestNewSignalShapes(t *testing.T) {
	s := New(Params{Seed: 11})
	seen := map[string]bool{}

	for i := 0; i < 200; i++ {
		sig := s.newSignal()
		if sig.ID == "" {
			t.Fatal("signal has empty id")
		}
		if seen[sig.ID] {
			t.Fatalf("duplicate signal id %q", sig.ID)
		}
		seen[sig.ID] = true
		if !sig.Active {
			t.Fatal("new signal not active")
		}
		if len(sig.Path) == 0 {
			t.Fatal("new signal has empty path")
		}
		if sig.Intensity < minIntensity || sig.Intensity > 1 {
			t.Fatalf("intensity = %f, want within [%f,1]", sig.Intensity, minIntensity)
		}

		first := sig.Path[0]
		last := sig.Path[len(sig.Path)-1]
		switch sig.Kind {
		case SignalForward:
			if first.X >= last.X {
				t.Errorf("forward path runs %f -> %f, want increasing x", first.X, last.X)
			}
		case SignalBackward:
			if first.X <= last.X {
				t.Errorf("backward path runs %f -> %f, want decreasing x", first.X, last.X)
			}
		case SignalLateral:
			for _, p := range sig.Path {
				if math.Abs(p.X-first.X) > 1e-9 {
					t.Errorf("lateral path leaves its layer: x %f vs %f", p.X, first.X)
					break
				}
			}
		}
	}
}

func TestRollKindCoversAllKinds(t *testing.T) {
	s := New(Params{Seed: 5})
	counts := map[SignalKind]int{}
	for i := 0; i < 2000; i++ {
		counts[s.rollKind()]++
	}
	for _, kind := range []SignalKind{SignalForward, SignalBackward, SignalLateral} {
		if counts[kind] == 0 {
			t.Errorf("kind %s never rolled in 2000 draws", kind)
		}
	}
	if counts[SignalForward] <= counts[SignalBackward] {
		t.Errorf("forward (%d) should dominate backward (%d)",
			counts[SignalForward], counts[SignalBackward])
	}
}

func TestLateralPathFallsBackOnThinLayers(t *testing.T) {
	s := New(Params{Layers: []int{1, 1, 1}, Seed: 3})
	path := s.lateralPath()
	if len(path) == 0 {
		t.Fatal("fallback path is empty")
	}
	if first, last := path[0], path[len(path)-1]; first.X >= last.X {
		t.Errorf("fallback path runs %f -> %f, want a forward path", first.X, last.X)
	}
}

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{60, 1, 1, 255, 255, 0},
		{120, 1, 1, 0, 255, 0},
		{240, 1, 1, 0, 0, 255},
		{0, 0, 1, 255, 255, 255},
		{0, 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, tt.s, tt.v)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hsvToRgb(%g,%g,%g) = (%d,%d,%d), want (%d,%d,%d)",
				tt.h, tt.s, tt.v, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestSignalPaletteDistinct(t *testing.T) {
	if len(signalPalette) != 6 {
		t.Fatalf("len(signalPalette) = %d, want 6", len(signalPalette))
	}
	seen := map[[4]uint8]bool{}
	for i, c := range signalPalette {
		if c.A != 255 {
			t.Errorf("palette[%d] alpha = %d, want 255", i, c.A)
		}
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if seen[key] {
			t.Errorf("palette[%d] %v duplicates an earlier entry", i, c)
		}
		seen[key] = true
	}
}

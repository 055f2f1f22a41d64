package sim

import (
	"image/color"
	"math"

	"github.com/google/uuid"
)

// SignalKind classifies how a signal travels across the network.
type SignalKind int

const (
	// SignalForward runs input layer to output layer. Only forward signals
	// are drawn; the other kinds still influence node activation.
	SignalForward SignalKind = iota
	// SignalBackward runs the same path in reverse.
	SignalBackward
	// SignalLateral wanders between nodes of a single layer.
	SignalLateral
)

func (k SignalKind) String() string {
	switch k {
	case SignalForward:
		return "forward"
	case SignalBackward:
		return "backward"
	case SignalLateral:
		return "lateral"
	default:
		return "unknown"
	}
}

// Interpolated points inserted between two consecutive path waypoints. Dense
// enough that per-tick movement stays visually smooth at the default speed.
const pathPointsPerHop = 18

// TrailLength is the number of recent path points kept for the motion trail.
const TrailLength = 10

const minIntensity = 0.6

// Spawn palette: six hues swept around the color wheel starting at cyan.
// Intensity scales brightness at draw time, so the palette stays fully
// saturated here.
var signalPalette = buildSignalPalette()

func buildSignalPalette() []color.RGBA {
	colors := make([]color.RGBA, 6)
	for i := range colors {
		hue := 190 + float64(i)*55
		r, g, b := hsvToRgb(hue, 0.75, 1.0)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// Signal is a transient particle travelling a precomputed path across the
// node layout. Progress advances monotonically from 0 to 1; once it reaches
// 1 the signal is deactivated and purged at the end of the tick.
type Signal struct {
	ID        string
	Kind      SignalKind
	Path      []Point
	Progress  float64
	Intensity float64
	Color     color.RGBA
	Active    bool
}

// At returns the signal's current position on its path.
func (s *Signal) At() Point {
	if len(s.Path) == 0 {
		return Point{}
	}
	return s.Path[s.pathIndex()]
}

// Trail returns up to TrailLength recent path points in travel order, the
// current position last. The slice aliases the path; callers must not
// modify it.
func (s *Signal) Trail() []Point {
	if len(s.Path) == 0 {
		return nil
	}
	end := s.pathIndex() + 1
	start := end - TrailLength
	if start < 0 {
		start = 0
	}
	return s.Path[start:end]
}

func (s *Signal) pathIndex() int {
	idx := int(s.Progress * float64(len(s.Path)-1))
	if idx < 0 {
		idx = 0
	}
	if idx > len(s.Path)-1 {
		idx = len(s.Path) - 1
	}
	return idx
}

// newSignal builds a signal with a random path, color, intensity and kind.
func (s *Simulation) newSignal() *Signal {
	kind := s.rollKind()

	var path []Point
	switch kind {
	case SignalLateral:
		path = s.lateralPath()
	case SignalBackward:
		path = s.forwardPath()
		reversePoints(path)
	default:
		path = s.forwardPath()
	}

	return &Signal{
		ID:        uuid.NewString(),
		Kind:      kind,
		Path:      path,
		Intensity: minIntensity + s.rng.Float64()*(1-minIntensity),
		Color:     signalPalette[s.rng.Intn(len(signalPalette))],
		Active:    true,
	}
}

func (s *Simulation) rollKind() SignalKind {
	r := s.rng.Float64()
	switch {
	case r < 0.7:
		return SignalForward
	case r < 0.9:
		return SignalBackward
	default:
		return SignalLateral
	}
}

// forwardPath picks one random node per layer, input to output, and expands
// the waypoints into a dense eased curve.
func (s *Simulation) forwardPath() []Point {
	waypoints := make([]Point, len(s.positions))
	for li, nodes := range s.positions {
		waypoints[li] = nodes[s.rng.Intn(len(nodes))]
	}
	return expandPath(waypoints)
}

// lateralPath wanders between a few distinct nodes of one layer. Falls back
// to a forward path when no layer has at least two nodes.
func (s *Simulation) lateralPath() []Point {
	candidates := make([]int, 0, len(s.positions))
	for li, nodes := range s.positions {
		if len(nodes) >= 2 {
			candidates = append(candidates, li)
		}
	}
	if len(candidates) == 0 {
		return s.forwardPath()
	}

	nodes := s.positions[candidates[s.rng.Intn(len(candidates))]]
	hops := 3
	if len(nodes) < hops {
		hops = len(nodes)
	}
	order := s.rng.Perm(len(nodes))[:hops]

	waypoints := make([]Point, hops)
	for i, ni := range order {
		waypoints[i] = nodes[ni]
	}
	return expandPath(waypoints)
}

// expandPath interpolates an eased curve through the waypoints, producing a
// point sequence dense enough for smooth motion and trailing effects.
func expandPath(waypoints []Point) []Point {
	if len(waypoints) == 0 {
		return nil
	}
	path := make([]Point, 1, 1+(len(waypoints)-1)*pathPointsPerHop)
	path[0] = waypoints[0]
	for i := 1; i < len(waypoints); i++ {
		seg := CurvePoints(waypoints[i-1], waypoints[i], pathPointsPerHop+1)
		path = append(path, seg[1:]...)
	}
	return path
}

func reversePoints(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

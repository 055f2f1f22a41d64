package sim

import "math"

// Point is a position on the logical canvas.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Fraction of the canvas height kept clear above and below the node band,
// leaving room for the HUD overlays.
const layoutMargin = 0.1

// Jitter cap in canvas units. The effective amplitude is also limited to a
// fraction of the per-node spacing so jittered nodes never leave the band.
const maxJitter = 12.0

// Layout computes canvas positions for every node of the given layer
// configuration. Layers are spread evenly across the width, nodes evenly
// inside the vertical band with a small sinusoidal offset per node.
//
// The result is deterministic for a fixed (width, height, layers) triple and
// must be recomputed whenever the canvas size changes.
func Layout(width, height float64, layers []int) [][]Point {
	positions := make([][]Point, len(layers))
	top := height * layoutMargin
	band := height * (1 - 2*layoutMargin)

	for li, count := range layers {
		if count < 1 {
			count = 1
		}
		x := width * float64(li+1) / float64(len(layers)+1)
		spacing := band / float64(count)
		amp := math.Min(spacing*0.18, maxJitter)

		nodes := make([]Point, count)
		for ni := range nodes {
			jitter := amp * math.Sin(float64(ni)*2.399+float64(li)*1.7)
			nodes[ni] = Point{
				X: x,
				Y: top + spacing*(float64(ni)+0.5) + jitter,
			}
		}
		positions[li] = nodes
	}
	return positions
}

// easeInOutCubic maps t in [0,1] to an s-shaped [0,1] curve: slow start,
// fast middle, slow arrival.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// CurvePoints interpolates n points from a to b, advancing linearly in x and
// easing in y. Both the signal paths and the drawn connection strands use
// this curve so motion follows the visible geometry.
func CurvePoints(a, b Point, n int) []Point {
	if n < 2 {
		n = 2
	}
	pts := make([]Point, n)
	for i := range pts {
		t := float64(i) / float64(n-1)
		e := easeInOutCubic(t)
		pts[i] = Point{
			X: a.X + (b.X-a.X)*t,
			Y: a.Y + (b.Y-a.Y)*e,
		}
	}
	return pts
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package view

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/whispem/Neural-Network-View/internal/sim"
)

// Segments per connection strand. Coarser than signal paths since strands
// only need to look smooth, not carry motion.
const strandSegments = 12

func (v *View) drawConnections(dst *ebiten.Image) {
	snap := &v.snap
	for li := 0; li+1 < len(snap.Nodes); li++ {
		for _, from := range snap.Nodes[li] {
			for _, to := range snap.Nodes[li+1] {
				avg := (from.Activation + to.Activation) / 2
				alpha := uint8(16 + 100*avg)
				width := float32(0.5 + avg)
				clr := withAlpha(v.pal.strand, alpha)

				pts := sim.CurvePoints(from.Pos, to.Pos, strandSegments)
				for i := 1; i < len(pts); i++ {
					vector.StrokeLine(dst,
						float32(pts[i-1].X), float32(pts[i-1].Y),
						float32(pts[i].X), float32(pts[i].Y),
						width, clr, false)
				}
			}
		}
	}
}

// drawSignals renders travelling pulses. Backward and lateral signals stay
// invisible; they only stir node activation.
func (v *View) drawSignals(dst *ebiten.Image) {
	for _, sig := range v.snap.Signals {
		if sig.Kind != sim.SignalForward {
			continue
		}
		clr := scaled(sig.Color, 0.55+0.45*sig.Intensity)

		trail := sig.Trail
		for i, p := range trail {
			fade := float64(i+1) / float64(len(trail))
			alpha := uint8(150 * fade * sig.Intensity)
			radius := float32(1 + 2*fade)
			vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), radius, withAlpha(clr, alpha), false)
		}

		// Soft halo under the head, then the head itself.
		halo := uint8(40 + 50*sig.Intensity)
		vector.DrawFilledCircle(dst, float32(sig.Pos.X), float32(sig.Pos.Y), float32(5+4*sig.Intensity), withAlpha(clr, halo), false)
		vector.DrawFilledCircle(dst, float32(sig.Pos.X), float32(sig.Pos.Y), float32(2+1.5*sig.Intensity), withAlpha(clr, 230), false)
	}
}

func (v *View) drawNodes(dst *ebiten.Image) {
	for _, layer := range v.snap.Nodes {
		for _, n := range layer {
			pulse := math.Sin(n.Phase) * 0.5
			radius := 3.5 + n.Activation*4.5 + pulse

			bright := 0.35 + 0.65*n.Activation
			body := scaled(v.pal.node, bright)
			vector.DrawFilledCircle(dst, float32(n.Pos.X), float32(n.Pos.Y), float32(radius), body, false)

			if n.Activation > 0.55 {
				ringAlpha := uint8(70 + 120*(n.Activation-0.55)/0.45)
				vector.StrokeCircle(dst, float32(n.Pos.X), float32(n.Pos.Y), float32(radius+3), 1, withAlpha(v.pal.nodeRing, ringAlpha), false)
			}

			if n.Load > 0.7 {
				dotAlpha := uint8(120 + 135*(n.Load-0.7)/0.3)
				vector.DrawFilledCircle(dst, float32(n.Pos.X+radius+2), float32(n.Pos.Y-radius-2), 2, withAlpha(v.pal.loadDot, dotAlpha), false)
			}
		}
	}
}

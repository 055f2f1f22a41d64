package sim

import "image/color"

// NodeView is the render-facing copy of one node.
type NodeView struct {
	Pos        Point
	Activation float64
	Load       float64
	Phase      float64
}

// SignalView is the render-facing copy of one active signal.
type SignalView struct {
	Pos       Point
	Trail     []Point
	Color     color.RGBA
	Intensity float64
	Kind      SignalKind
	Progress  float64
}

// Snapshot is a self-contained copy of everything a frame needs. It shares
// no memory with the simulation, so a renderer may hold it across ticks or
// hand it to another goroutine.
type Snapshot struct {
	Width   float64
	Height  float64
	Tick    int
	Nodes   [][]NodeView
	Signals []SignalView
	Metrics Metrics
}

// Snapshot copies the current state out of the simulation.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Width:   s.params.Width,
		Height:  s.params.Height,
		Tick:    s.tick,
		Nodes:   make([][]NodeView, len(s.nodes)),
		Signals: make([]SignalView, 0, len(s.signals)),
		Metrics: s.metrics,
	}
	for li, layer := range s.nodes {
		views := make([]NodeView, len(layer))
		for ni, n := range layer {
			views[ni] = NodeView{
				Pos:        s.positions[li][ni],
				Activation: n.Activation,
				Load:       n.Load,
				Phase:      n.Phase,
			}
		}
		snap.Nodes[li] = views
	}
	for _, sig := range s.signals {
		trail := sig.Trail()
		view := SignalView{
			Pos:       sig.At(),
			Trail:     make([]Point, len(trail)),
			Color:     sig.Color,
			Intensity: sig.Intensity,
			Kind:      sig.Kind,
			Progress:  sig.Progress,
		}
		copy(view.Trail, trail)
		snap.Signals = append(snap.Signals, view)
	}
	return snap
}

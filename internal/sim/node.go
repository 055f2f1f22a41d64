package sim

// Activation rules. A node lights up to the strongest influence of any
// signal within InfluenceRadius and glows down multiplicatively once
// signals move on, which produces the afterglow effect.
const (
	InfluenceRadius = 35.0
	ActivationDecay = 0.88
	LoadDecay       = 0.92

	// Fraction of each contributing signal's influence added to the
	// processing load per tick.
	loadGain = 0.1

	phaseStep = 0.05
)

// NodeState holds the animation scalars of a single node.
type NodeState struct {
	Activation float64 // instantaneous visual intensity, 0..1
	Load       float64 // cumulative nearby influence, 0..1
	Phase      float64 // free-running pulse phase used for idle shimmer
	LastPulse  int     // tick of the most recent signal influence
}

// updateNodes applies signal influence and decay for the current tick.
func (s *Simulation) updateNodes() {
	type live struct {
		pos       Point
		intensity float64
	}
	active := make([]live, 0, len(s.signals))
	for _, sig := range s.signals {
		if sig.Active {
			active = append(active, live{sig.At(), sig.Intensity})
		}
	}

	for li := range s.nodes {
		for ni := range s.nodes[li] {
			n := &s.nodes[li][ni]
			n.Phase += phaseStep

			pos := s.positions[li][ni]
			maxInfluence := 0.0
			gain := 0.0
			for _, sig := range active {
				d := pos.Dist(sig.pos)
				if d >= InfluenceRadius {
					continue
				}
				influence := (InfluenceRadius - d) / InfluenceRadius * sig.intensity
				if influence > maxInfluence {
					maxInfluence = influence
				}
				gain += influence * loadGain
			}

			if maxInfluence > 0 {
				// Strongest influence wins; influences are not summed.
				n.Activation = clamp01(maxInfluence)
				n.Load = clamp01(n.Load + gain)
				n.LastPulse = s.tick
			} else {
				n.Activation *= ActivationDecay
				n.Load *= LoadDecay
			}
		}
	}
}

// NodeAt returns the state of the node at (layer, idx). Out-of-range
// indices yield a zero state rather than a panic.
func (s *Simulation) NodeAt(layer, idx int) NodeState {
	if layer < 0 || layer >= len(s.nodes) {
		return NodeState{}
	}
	if idx < 0 || idx >= len(s.nodes[layer]) {
		return NodeState{}
	}
	return s.nodes[layer][idx]
}

// PositionAt returns the canvas position of the node at (layer, idx), or
// the origin when out of range.
func (s *Simulation) PositionAt(layer, idx int) Point {
	if layer < 0 || layer >= len(s.positions) {
		return Point{}
	}
	if idx < 0 || idx >= len(s.positions[layer]) {
		return Point{}
	}
	return s.positions[layer][idx]
}

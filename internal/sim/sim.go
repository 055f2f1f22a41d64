// Package sim implements the fixed-timestep simulation behind the network
// view: deterministic node layout, signal spawning and travel, proximity
// driven activation with multiplicative decay, and the decorative metrics
// derived from all of it.
//
// The package is UI-free. A Simulation is advanced by calling Step once per
// tick; renderers and other consumers read value snapshots and never mutate
// state. There is no persistence: everything lives for the process and
// resets on restart.
package sim

import (
	"math/rand"
	"time"
)

// Params is the immutable tuning of one simulation run.
type Params struct {
	Width  float64
	Height float64

	// Layers holds the node count of each layer, input to output.
	Layers []int

	// SignalSpeed is the progress added to every active signal per tick.
	SignalSpeed float64

	// SpawnEvery is the tick interval between spawn attempts. Zero or
	// negative disables spawning.
	SpawnEvery int

	// MaxSignals caps the number of concurrently active signals.
	MaxSignals int

	// Seed for the run's random source. Zero picks a time-based seed.
	Seed int64
}

// DefaultParams returns the classic six-layer configuration.
func DefaultParams() Params {
	return Params{
		Width:       400,
		Height:      800,
		Layers:      []int{6, 10, 8, 10, 6, 4},
		SignalSpeed: 0.008,
		SpawnEvery:  12,
		MaxSignals:  18,
	}
}

// Simulation holds the whole animation state: node positions and scalars,
// the active signal set and the derived metrics. All methods must be called
// from a single goroutine.
type Simulation struct {
	params     Params
	positions  [][]Point
	nodes      [][]NodeState
	signals    []*Signal
	metrics    Metrics
	tick       int
	totalNodes int
	rng        *rand.Rand
}

// New builds a simulation for the given parameters. Degenerate values are
// normalized rather than rejected: empty layers fall back to the defaults,
// node counts below one become one.
func New(p Params) *Simulation {
	if len(p.Layers) == 0 {
		p.Layers = DefaultParams().Layers
	}
	layers := make([]int, len(p.Layers))
	copy(layers, p.Layers)
	for i, c := range layers {
		if c < 1 {
			layers[i] = 1
		}
	}
	p.Layers = layers

	if p.MaxSignals < 1 {
		p.MaxSignals = 1
	}
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Simulation{
		params:  p,
		rng:     rand.New(rand.NewSource(seed)),
		metrics: Metrics{Accuracy: accuracyStart},
	}
	s.rebuildLayout()
	return s
}

func (s *Simulation) rebuildLayout() {
	s.positions = Layout(s.params.Width, s.params.Height, s.params.Layers)
	s.nodes = make([][]NodeState, len(s.params.Layers))
	s.totalNodes = 0
	for li, count := range s.params.Layers {
		s.nodes[li] = make([]NodeState, count)
		for ni := range s.nodes[li] {
			s.nodes[li][ni].Phase = float64(li)*1.3 + float64(ni)*0.7
		}
		s.totalNodes += count
	}
}

// Step advances the simulation by one tick: spawn when due, move signals,
// apply influence and decay to nodes, purge finished signals, refresh
// metrics.
func (s *Simulation) Step() {
	s.tick++

	if s.params.SpawnEvery > 0 && s.tick%s.params.SpawnEvery == 0 {
		s.SpawnSignal()
	}

	for _, sig := range s.signals {
		sig.Progress += s.params.SignalSpeed
		if sig.Progress >= 1 {
			sig.Progress = 1
			sig.Active = false
		}
	}

	s.updateNodes()
	s.retireSignals()
	s.updateMetrics()
}

// SpawnSignal attempts to create one signal. It reports false when the
// active set already sits at the configured cap.
func (s *Simulation) SpawnSignal() bool {
	if len(s.signals) >= s.params.MaxSignals {
		return false
	}
	s.signals = append(s.signals, s.newSignal())
	return true
}

func (s *Simulation) retireSignals() {
	keep := s.signals[:0]
	for _, sig := range s.signals {
		if sig.Active {
			keep = append(keep, sig)
		}
	}
	for i := len(keep); i < len(s.signals); i++ {
		s.signals[i] = nil
	}
	s.signals = keep
}

// Resize recomputes the node layout for a new canvas size. Node scalars are
// reset along with positions; active signals reference the old coordinate
// space and are dropped.
func (s *Simulation) Resize(width, height float64) {
	if width < 1 || height < 1 {
		return
	}
	if width == s.params.Width && height == s.params.Height {
		return
	}
	s.params.Width = width
	s.params.Height = height
	s.rebuildLayout()
	s.signals = s.signals[:0]
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() int { return s.tick }

// ActiveSignals returns the size of the active signal set.
func (s *Simulation) ActiveSignals() int { return len(s.signals) }

// Metrics returns the latest derived metrics.
func (s *Simulation) Metrics() Metrics { return s.metrics }

// Params returns a copy of the run parameters.
func (s *Simulation) Params() Params {
	p := s.params
	p.Layers = make([]int, len(s.params.Layers))
	copy(p.Layers, s.params.Layers)
	return p
}

package sim

import "time"

// Metrics tuning. All of this is display dressing: the values are derived
// from the animation state or random-walked, never measured work.
const (
	// Empirical activation ceiling per node used to normalize energy.
	energyPerNode = 0.45

	speedPerSignal = 147.0
	speedJitter    = 12.0

	accuracyStart   = 0.62
	accuracyCeiling = 0.983
	accuracyRate    = 0.0005

	// Ticks between slow-counter updates; one second at 60 TPS.
	slowEvery = 60

	samplesMinStep = 50
	samplesMaxStep = 400
)

// Metrics is the derived display state recomputed every tick. Energy, Flow,
// Speed and Accuracy are fast-path values; Elapsed and Samples advance on
// the slow one-second path.
type Metrics struct {
	Energy   float64
	Flow     float64
	Speed    float64
	Accuracy float64
	Elapsed  time.Duration
	Samples  int64
}

func (s *Simulation) updateMetrics() {
	sum := 0.0
	for li := range s.nodes {
		for ni := range s.nodes[li] {
			sum += s.nodes[li][ni].Activation
		}
	}

	active := float64(len(s.signals))
	m := &s.metrics
	m.Energy = clamp01(sum / (energyPerNode * float64(s.totalNodes)))
	m.Flow = clamp01(active / float64(s.params.MaxSignals))
	m.Speed = active*speedPerSignal + s.rng.Float64()*speedJitter

	// Random-scaled asymptotic climb; the step never exceeds the remaining
	// gap, so accuracy is monotone and stays below the ceiling.
	m.Accuracy += (accuracyCeiling - m.Accuracy) * accuracyRate * (0.5 + s.rng.Float64())

	if s.tick%slowEvery == 0 {
		m.Elapsed += time.Second
		m.Samples += int64(samplesMinStep + s.rng.Intn(samplesMaxStep-samplesMinStep))
	}
}

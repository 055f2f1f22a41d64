package sim

import (
	"testing"
	"time"
)

func TestAccuracyClimbsMonotonically(t *testing.T) {
	p := DefaultParams()
	p.Seed = 13
	s := New(p)

	if got := s.Metrics().Accuracy; got != accuracyStart {
		t.Fatalf("starting accuracy = %f, want %f", got, accuracyStart)
	}

	prev := accuracyStart
	for i := 0; i < 5000; i++ {
		s.Step()
		got := s.Metrics().Accuracy
		if got < prev {
			t.Fatalf("accuracy dropped at tick %d: %f < %f", i, got, prev)
		}
		if got >= accuracyCeiling {
			t.Fatalf("accuracy reached ceiling at tick %d: %f", i, got)
		}
		prev = got
	}
	if prev <= accuracyStart {
		t.Errorf("accuracy never moved above %f", accuracyStart)
	}
}

func TestSlowCountersAdvanceOncePerSecond(t *testing.T) {
	p := DefaultParams()
	p.SpawnEvery = 0
	p.Seed = 13
	s := New(p)

	for i := 0; i < 59; i++ {
		s.Step()
	}
	m := s.Metrics()
	if m.Elapsed != 0 || m.Samples != 0 {
		t.Fatalf("slow counters moved early: elapsed=%v samples=%d", m.Elapsed, m.Samples)
	}

	s.Step()
	m = s.Metrics()
	if m.Elapsed != time.Second {
		t.Errorf("elapsed after 60 ticks = %v, want 1s", m.Elapsed)
	}
	if m.Samples < samplesMinStep || m.Samples >= samplesMaxStep {
		t.Errorf("samples after one update = %d, want within [%d,%d)", m.Samples, samplesMinStep, samplesMaxStep)
	}

	first := m.Samples
	for i := 0; i < 60; i++ {
		s.Step()
	}
	m = s.Metrics()
	if m.Elapsed != 2*time.Second {
		t.Errorf("elapsed after 120 ticks = %v, want 2s", m.Elapsed)
	}
	if m.Samples < first+samplesMinStep {
		t.Errorf("samples = %d after second update, want at least %d", m.Samples, first+samplesMinStep)
	}
}

func TestMetricsIdleFloor(t *testing.T) {
	p := DefaultParams()
	p.SpawnEvery = 0
	p.Seed = 3
	s := New(p)

	for i := 0; i < 300; i++ {
		s.Step()
	}
	m := s.Metrics()
	if m.Energy != 0 {
		t.Errorf("idle energy = %f, want 0", m.Energy)
	}
	if m.Flow != 0 {
		t.Errorf("idle flow = %f, want 0", m.Flow)
	}
	if m.Speed < 0 || m.Speed >= speedJitter {
		t.Errorf("idle speed = %f, want jitter only below %f", m.Speed, speedJitter)
	}
}

func TestFlowTracksActiveSignals(t *testing.T) {
	p := DefaultParams()
	p.SpawnEvery = 0
	p.Seed = 3
	s := New(p)
	for i := 0; i < 9; i++ {
		s.SpawnSignal()
	}

	s.Step()
	m := s.Metrics()
	if want := 9.0 / float64(p.MaxSignals); m.Flow != want {
		t.Errorf("flow = %f with 9 of %d signals, want %f", m.Flow, p.MaxSignals, want)
	}
	if min := 9 * speedPerSignal; m.Speed < min || m.Speed >= min+speedJitter {
		t.Errorf("speed = %f, want within [%f,%f)", m.Speed, min, min+speedJitter)
	}
}

func TestEnergyNormalization(t *testing.T) {
	p := DefaultParams()
	p.SpawnEvery = 0
	p.Seed = 3
	s := New(p)
	s.tick = 1

	for li := range s.nodes {
		for ni := range s.nodes[li] {
			s.nodes[li][ni].Activation = energyPerNode
		}
	}
	s.updateMetrics()
	if got := s.Metrics().Energy; !almostEqual(got, 1) {
		t.Errorf("energy at per-node ceiling = %f, want 1", got)
	}

	for li := range s.nodes {
		for ni := range s.nodes[li] {
			s.nodes[li][ni].Activation = 1
		}
	}
	s.updateMetrics()
	if got := s.Metrics().Energy; got != 1 {
		t.Errorf("energy above ceiling = %f, want clamped to 1", got)
	}
}

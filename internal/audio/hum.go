// Package audio provides the optional sonification of the animation: a
// quiet synthesized hum whose pitch follows the network's energy and whose
// volume follows the signal flow ratio.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	baseFreq = 70.0
	freqSpan = 180.0

	// Second oscillator sits near a fifth above; the slight detune keeps
	// the hum from sounding static.
	fifthRatio = 1.498

	baseGain = 0.025
	gainSpan = 0.06

	// Per-sample approach rate toward the published targets. Smoothing at
	// the sample level avoids zipper noise when metrics jump.
	slew = 0.00025
)

// Hum is a beep.Streamer synthesizing the sonification. The view publishes
// metric targets from the game loop; Stream runs on the speaker goroutine
// and only shares the two target values, guarded by the mutex.
type Hum struct {
	mu         sync.RWMutex
	targetFreq float64
	targetGain float64

	// speaker-side state, touched only inside Stream
	freq   float64
	gain   float64
	phase1 float64
	phase2 float64
}

func NewHum() *Hum {
	return &Hum{
		targetFreq: baseFreq,
		freq:       baseFreq,
	}
}

// Publish sets the synthesis targets from the latest metrics. Safe to call
// concurrently with Stream.
func (h *Hum) Publish(energy, flow float64) {
	h.mu.Lock()
	h.targetFreq = baseFreq + clamp01(energy)*freqSpan
	h.targetGain = baseGain + clamp01(flow)*gainSpan
	h.mu.Unlock()
}

func (h *Hum) Stream(samples [][2]float64) (int, bool) {
	h.mu.RLock()
	tf, tg := h.targetFreq, h.targetGain
	h.mu.RUnlock()

	dt := 1.0 / float64(sampleRate)
	for i := range samples {
		h.freq += (tf - h.freq) * slew
		h.gain += (tg - h.gain) * slew

		h.phase1 += 2 * math.Pi * h.freq * dt
		h.phase2 += 2 * math.Pi * h.freq * fifthRatio * dt
		if h.phase1 > 2*math.Pi {
			h.phase1 -= 2 * math.Pi
		}
		if h.phase2 > 2*math.Pi {
			h.phase2 -= 2 * math.Pi
		}

		v := (math.Sin(h.phase1)*0.7 + math.Sin(h.phase2)*0.3) * h.gain
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (h *Hum) Err() error { return nil }

// Start initializes the speaker and begins playing a new hum. The hum is
// silent until the first Publish raises the gain target.
func Start() (*Hum, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	h := NewHum()
	speaker.Play(h)
	return h, nil
}

// Stop drops all playing streamers.
func Stop() {
	speaker.Clear()
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

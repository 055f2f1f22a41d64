package audio

import (
	"math"
	"testing"
)

func streamRMS(h *Hum, buffers, size int) float64 {
	samples := make([][2]float64, size)
	for i := 0; i < buffers-1; i++ {
		h.Stream(samples)
	}
	n, ok := h.Stream(samples)
	if !ok || n != size {
		return -1
	}
	var sum float64
	for _, s := range samples {
		sum += s[0] * s[0]
	}
	return math.Sqrt(sum / float64(size))
}

func TestStreamFillsBuffer(t *testing.T) {
	h := NewHum()
	h.Publish(0.5, 0.5)

	samples := make([][2]float64, 512)
	n, ok := h.Stream(samples)
	if !ok {
		t.Fatal("Stream reported end of stream")
	}
	if n != len(samples) {
		t.Fatalf("Stream filled %d samples, want %d", n, len(samples))
	}
	for i, s := range samples {
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono: %f vs %f", i, s[0], s[1])
		}
		if math.Abs(s[0]) > 0.2 {
			t.Fatalf("sample %d = %f, beyond the quiet ceiling", i, s[0])
		}
	}
	if h.Err() != nil {
		t.Errorf("Err() = %v, want nil", h.Err())
	}
}

func TestStartsSilent(t *testing.T) {
	h := NewHum()
	if rms := streamRMS(h, 1, 1024); rms > 0.001 {
		t.Errorf("unpublished hum rms = %f, want near silence", rms)
	}
}

func TestGainFollowsFlow(t *testing.T) {
	quiet := NewHum()
	quiet.Publish(0.5, 0)
	loud := NewHum()
	loud.Publish(0.5, 1)

	// Enough buffers for the slewed gain to settle on its target.
	quietRMS := streamRMS(quiet, 100, 1024)
	loudRMS := streamRMS(loud, 100, 1024)

	if quietRMS <= 0 || loudRMS <= 0 {
		t.Fatalf("rms not measured: quiet=%f loud=%f", quietRMS, loudRMS)
	}
	if loudRMS <= quietRMS*1.5 {
		t.Errorf("full flow rms %f not clearly above zero flow rms %f", loudRMS, quietRMS)
	}
}

func TestPublishClampsInputs(t *testing.T) {
	h := NewHum()
	h.Publish(-3, 42)

	h.mu.RLock()
	tf, tg := h.targetFreq, h.targetGain
	h.mu.RUnlock()

	if tf != baseFreq {
		t.Errorf("target freq = %f with negative energy, want %f", tf, baseFreq)
	}
	if want := baseGain + gainSpan; tg != want {
		t.Errorf("target gain = %f with runaway flow, want %f", tg, want)
	}
}

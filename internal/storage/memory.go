package storage

import (
	"context"
	"sync"
)

type MemoryRecorder struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]RunSummary
	ticks       map[string][]TickSample
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) Init(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.initialized = true
	r.runs = make(map[string]RunSummary)
	r.ticks = make(map[string][]TickSample)
	return nil
}

func (r *MemoryRecorder) RecordRun(_ context.Context, run RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs[run.ID] = run
	return nil
}

func (r *MemoryRecorder) RecordTick(_ context.Context, runID string, sample TickSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ticks[runID] = append(r.ticks[runID], sample)
	return nil
}

func (r *MemoryRecorder) GetRun(_ context.Context, id string) (RunSummary, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, ok := r.runs[id]
	return run, ok, nil
}

func (r *MemoryRecorder) GetTicks(_ context.Context, runID string) ([]TickSample, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	samples, ok := r.ticks[runID]
	if !ok {
		return nil, false, nil
	}
	out := make([]TickSample, len(samples))
	copy(out, samples)
	return out, true, nil
}

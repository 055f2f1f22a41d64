// Package storage persists headless benchmark runs: one summary row per
// run plus a metrics row per recorded tick. The windowed application never
// touches it; animation state stays in memory and resets on restart.
package storage

import (
	"context"
	"time"
)

// RunSummary describes one benchmark run.
type RunSummary struct {
	ID        string
	StartedAt time.Time
	Layers    string // comma-separated node counts
	Ticks     int
	Seed      int64
}

// TickSample is the metrics state of one simulation tick.
type TickSample struct {
	Tick     int
	Energy   float64
	Flow     float64
	Speed    float64
	Accuracy float64
	Active   int
	Samples  int64
}

// Recorder stores benchmark runs and their per-tick samples.
type Recorder interface {
	Init(ctx context.Context) error
	RecordRun(ctx context.Context, run RunSummary) error
	RecordTick(ctx context.Context, runID string, sample TickSample) error
	GetRun(ctx context.Context, id string) (RunSummary, bool, error)
	GetTicks(ctx context.Context, runID string) ([]TickSample, bool, error)
}

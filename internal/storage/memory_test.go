package storage

import (
	"context"
	"testing"
	"time"
)

func TestMemoryRecorderRoundTrip(t *testing.T) {
	ctx := context.Background()
	rec := NewMemoryRecorder()
	if err := rec.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	run := RunSummary{
		ID:        "r1",
		StartedAt: time.Unix(1700000000, 0).UTC(),
		Layers:    "6,10,8,10,6,4",
		Ticks:     600,
		Seed:      42,
	}
	if err := rec.RecordRun(ctx, run); err != nil {
		t.Fatalf("record run: %v", err)
	}
	for i := 0; i < 3; i++ {
		sample := TickSample{Tick: i, Energy: float64(i) * 0.1, Active: i}
		if err := rec.RecordTick(ctx, run.ID, sample); err != nil {
			t.Fatalf("record tick %d: %v", i, err)
		}
	}

	loaded, ok, err := rec.GetRun(ctx, run.ID)
	if err != nil || !ok {
		t.Fatalf("get run: ok=%v err=%v", ok, err)
	}
	if loaded != run {
		t.Fatalf("loaded run %+v, want %+v", loaded, run)
	}

	samples, ok, err := rec.GetTicks(ctx, run.ID)
	if err != nil || !ok {
		t.Fatalf("get ticks: ok=%v err=%v", ok, err)
	}
	if len(samples) != 3 {
		t.Fatalf("tick count = %d, want 3", len(samples))
	}
	for i, s := range samples {
		if s.Tick != i {
			t.Errorf("sample %d has tick %d", i, s.Tick)
		}
	}
}

func TestMemoryRecorderMissing(t *testing.T) {
	ctx := context.Background()
	rec := NewMemoryRecorder()
	if err := rec.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if _, ok, err := rec.GetRun(ctx, "nope"); ok || err != nil {
		t.Errorf("missing run: ok=%v err=%v", ok, err)
	}
	if _, ok, err := rec.GetTicks(ctx, "nope"); ok || err != nil {
		t.Errorf("missing ticks: ok=%v err=%v", ok, err)
	}
}

func TestMemoryRecorderTicksCopied(t *testing.T) {
	ctx := context.Background()
	rec := NewMemoryRecorder()
	if err := rec.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := rec.RecordTick(ctx, "r1", TickSample{Tick: 1, Energy: 0.5}); err != nil {
		t.Fatal(err)
	}

	samples, _, _ := rec.GetTicks(ctx, "r1")
	samples[0].Energy = 99

	again, _, _ := rec.GetTicks(ctx, "r1")
	if again[0].Energy != 0.5 {
		t.Errorf("stored sample mutated through returned slice: %f", again[0].Energy)
	}
}

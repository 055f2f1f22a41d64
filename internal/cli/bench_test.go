package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestResolveBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		dbPath  string
		want    string
	}{
		{name: "default", backend: "", dbPath: "", want: "memory"},
		{name: "db implies sqlite", backend: "", dbPath: "runs.db", want: "sqlite"},
		{name: "explicit wins", backend: "memory", dbPath: "runs.db", want: "memory"},
		{name: "explicit sqlite", backend: "sqlite", dbPath: "", want: "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveBackend(tt.backend, tt.dbPath); got != tt.want {
				t.Errorf("resolveBackend(%q, %q) = %q, want %q", tt.backend, tt.dbPath, got, tt.want)
			}
		})
	}
}

func TestLayersString(t *testing.T) {
	tests := []struct {
		name   string
		layers []int
		want   string
	}{
		{name: "classic", layers: []int{6, 10, 8, 10, 6, 4}, want: "6,10,8,10,6,4"},
		{name: "single", layers: []int{5}, want: "5"},
		{name: "empty", layers: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := layersString(tt.layers); got != tt.want {
				t.Errorf("layersString(%v) = %q, want %q", tt.layers, got, tt.want)
			}
		})
	}
}

func quietContext() context.Context {
	return withLogger(context.Background(), newLogger(io.Discard, log.FatalLevel))
}

func TestRunBenchMemory(t *testing.T) {
	err := runBench(quietContext(), benchOptions{
		ticks: 10,
		seed:  1,
		every: 2,
	})
	if err != nil {
		t.Fatalf("runBench() error = %v", err)
	}
}

func TestRunBenchSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	err := runBench(quietContext(), benchOptions{
		ticks:  20,
		seed:   1,
		every:  1,
		dbPath: dbPath,
	})
	if err != nil {
		t.Fatalf("runBench() error = %v", err)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file should exist: %v", err)
	}
}

func TestRunBenchRejectsBadTicks(t *testing.T) {
	err := runBench(quietContext(), benchOptions{ticks: 0})
	if err == nil {
		t.Fatal("runBench() should reject zero ticks")
	}
}

func TestRunBenchUnknownBackend(t *testing.T) {
	err := runBench(quietContext(), benchOptions{ticks: 5, backend: "redis"})
	if err == nil {
		t.Fatal("runBench() should reject an unknown backend")
	}
}

func TestRunBenchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(quietContext())
	cancel()

	err := runBench(ctx, benchOptions{ticks: 1000, seed: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("runBench() error = %v, want context.Canceled", err)
	}
}

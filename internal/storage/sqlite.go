package storage

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteRecorder struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteRecorder(path string) *SQLiteRecorder {
	return &SQLiteRecorder{path: path}
}

func (r *SQLiteRecorder) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.path == "" {
		return errors.New("sqlite path is required")
	}
	if r.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", r.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	r.db = db
	return nil
}

func (r *SQLiteRecorder) RecordRun(ctx context.Context, run RunSummary) error {
	db, err := r.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, layers, ticks, seed)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			started_at = excluded.started_at,
			layers = excluded.layers,
			ticks = excluded.ticks,
			seed = excluded.seed
	`, run.ID, run.StartedAt.Unix(), run.Layers, run.Ticks, run.Seed)
	return err
}

func (r *SQLiteRecorder) RecordTick(ctx context.Context, runID string, sample TickSample) error {
	db, err := r.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO ticks (run_id, tick, energy, flow, speed, accuracy, active, samples)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, tick) DO UPDATE SET
			energy = excluded.energy,
			flow = excluded.flow,
			speed = excluded.speed,
			accuracy = excluded.accuracy,
			active = excluded.active,
			samples = excluded.samples
	`, runID, sample.Tick, sample.Energy, sample.Flow, sample.Speed, sample.Accuracy, sample.Active, sample.Samples)
	return err
}

func (r *SQLiteRecorder) GetRun(ctx context.Context, id string) (RunSummary, bool, error) {
	db, err := r.getDB()
	if err != nil {
		return RunSummary{}, false, err
	}

	var run RunSummary
	var startedAt int64
	err = db.QueryRowContext(ctx, `
		SELECT id, started_at, layers, ticks, seed FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &startedAt, &run.Layers, &run.Ticks, &run.Seed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunSummary{}, false, nil
		}
		return RunSummary{}, false, err
	}
	run.StartedAt = time.Unix(startedAt, 0).UTC()
	return run, true, nil
}

func (r *SQLiteRecorder) GetTicks(ctx context.Context, runID string) ([]TickSample, bool, error) {
	db, err := r.getDB()
	if err != nil {
		return nil, false, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT tick, energy, flow, speed, accuracy, active, samples
		FROM ticks WHERE run_id = ? ORDER BY tick
	`, runID)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var samples []TickSample
	for rows.Next() {
		var s TickSample
		if err := rows.Scan(&s.Tick, &s.Energy, &s.Flow, &s.Speed, &s.Accuracy, &s.Active, &s.Samples); err != nil {
			return nil, false, err
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if len(samples) == 0 {
		return nil, false, nil
	}
	return samples, true, nil
}

func (r *SQLiteRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

func (r *SQLiteRecorder) getDB() (*sql.DB, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.db == nil {
		return nil, errors.New("recorder is not initialized")
	}
	return r.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			layers TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			seed INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS ticks (
			run_id TEXT NOT NULL,
			tick INTEGER NOT NULL,
			energy REAL NOT NULL,
			flow REAL NOT NULL,
			speed REAL NOT NULL,
			accuracy REAL NOT NULL,
			active INTEGER NOT NULL,
			samples INTEGER NOT NULL,
			PRIMARY KEY (run_id, tick)
		);
	`)
	return err
}

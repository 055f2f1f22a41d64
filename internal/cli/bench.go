package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/whispem/Neural-Network-View/internal/sim"
	"github.com/whispem/Neural-Network-View/internal/storage"
)

type benchOptions struct {
	preset     string
	configPath string
	layers     string
	ticks      int
	seed       int64
	every      int
	dbPath     string
	backend    string
}

func newBenchCmd() *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Step the simulation headlessly and record metrics",
		Long: `bench runs the simulation without a window, stepping it a fixed number
of ticks and recording the derived metrics. Results go to an in-memory
recorder by default, or to a SQLite file with --db.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "built-in preset (see 'nnview presets')")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().StringVarP(&opts.layers, "layers", "l", "", "comma-separated node counts per layer")
	cmd.Flags().IntVarP(&opts.ticks, "ticks", "t", 600, "number of simulation ticks to run")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&opts.every, "every", 1, "record every Nth tick")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "SQLite file to record into")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "recorder backend (memory, sqlite)")

	return cmd
}

// resolveBackend picks the recorder backend: an explicit --backend wins,
// otherwise --db implies sqlite and the default is memory.
func resolveBackend(backend, dbPath string) string {
	if backend != "" {
		return backend
	}
	if dbPath != "" {
		return "sqlite"
	}
	return "memory"
}

func layersString(layers []int) string {
	parts := make([]string, len(layers))
	for i, n := range layers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func runBench(ctx context.Context, opts benchOptions) error {
	logger := loggerFromContext(ctx)

	if opts.ticks < 1 {
		return fmt.Errorf("ticks must be at least 1, got %d", opts.ticks)
	}
	if opts.every < 1 {
		opts.every = 1
	}

	cfg, err := buildConfig(runOptions{
		preset:     opts.preset,
		configPath: opts.configPath,
		layers:     opts.layers,
		seed:       opts.seed,
	})
	if err != nil {
		return err
	}

	backend := resolveBackend(opts.backend, opts.dbPath)
	rec, err := storage.NewRecorder(backend, opts.dbPath)
	if err != nil {
		return err
	}
	if err := rec.Init(ctx); err != nil {
		return fmt.Errorf("initializing %s recorder: %w", backend, err)
	}
	defer func() {
		if err := storage.CloseIfSupported(rec); err != nil {
			logger.Warn("closing recorder", "err", err)
		}
	}()

	s := sim.New(cfg.SimParams())
	runID := uuid.NewString()

	if err := rec.RecordRun(ctx, storage.RunSummary{
		ID:        runID,
		StartedAt: time.Now().UTC(),
		Layers:    layersString(cfg.Network.Layers),
		Ticks:     opts.ticks,
		Seed:      cfg.Network.Seed,
	}); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	logger.Info("benchmarking",
		"layers", cfg.Network.Layers,
		"ticks", opts.ticks,
		"backend", backend)

	prog := newProgress(logger)
	for i := 0; i < opts.ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Step()
		if s.Tick()%opts.every != 0 {
			continue
		}
		m := s.Metrics()
		if err := rec.RecordTick(ctx, runID, storage.TickSample{
			Tick:     s.Tick(),
			Energy:   m.Energy,
			Flow:     m.Flow,
			Speed:    m.Speed,
			Accuracy: m.Accuracy,
			Active:   s.ActiveSignals(),
			Samples:  m.Samples,
		}); err != nil {
			return fmt.Errorf("recording tick %d: %w", s.Tick(), err)
		}
	}
	elapsed := time.Since(prog.start)
	prog.done(fmt.Sprintf("Stepped %d ticks", opts.ticks))

	rate := "n/a"
	if elapsed.Seconds() > 0 {
		rate = fmt.Sprintf("%s ticks/s", humanize.CommafWithDigits(float64(opts.ticks)/elapsed.Seconds(), 0))
	}

	m := s.Metrics()
	printNewline()
	printSuccess("Benchmark complete")
	printKeyValue("run", runID)
	printKeyValue("layers", layersString(cfg.Network.Layers))
	printKeyValue("ticks", strconv.Itoa(opts.ticks))
	printKeyValue("rate", rate)
	printKeyValue("energy", fmt.Sprintf("%.0f%%", m.Energy*100))
	printKeyValue("flow", fmt.Sprintf("%.0f%%", m.Flow*100))
	printKeyValue("accuracy", fmt.Sprintf("%.1f%%", m.Accuracy*100))
	printKeyValue("signals", strconv.Itoa(s.ActiveSignals()))
	if backend == "sqlite" {
		printFile(opts.dbPath)
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mattn/go-isatty"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/whispem/Neural-Network-View/internal/audio"
	"github.com/whispem/Neural-Network-View/internal/config"
	"github.com/whispem/Neural-Network-View/internal/sim"
	"github.com/whispem/Neural-Network-View/internal/view"
)

type runOptions struct {
	preset     string
	configPath string
	layers     string
	seed       int64
	width      int
	height     int
	palette    string
	noMetrics  bool
	sound      bool
	pick       bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the animation window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "built-in preset (see 'nnview presets')")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().StringVarP(&opts.layers, "layers", "l", "", "comma-separated node counts per layer (e.g. 6,10,8,4)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "window width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "window height in pixels")
	cmd.Flags().StringVar(&opts.palette, "palette", "", "color palette (neon, ember, mono)")
	cmd.Flags().BoolVar(&opts.noMetrics, "no-metrics", false, "start with the dashboard hidden")
	cmd.Flags().BoolVar(&opts.sound, "sound", false, "enable the ambient hum")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose a preset interactively before launching")

	return cmd
}

// buildConfig resolves the effective configuration: defaults, then preset,
// then config file, then individual flags, each layer overriding the last.
func buildConfig(opts runOptions) (config.Config, error) {
	cfg := config.Default()

	if opts.preset != "" {
		preset, ok := config.Preset(opts.preset)
		if !ok {
			return config.Config{}, fmt.Errorf("unknown preset %q (available: %v)", opts.preset, config.PresetNames())
		}
		cfg = preset
	}

	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if opts.layers != "" {
		layers, err := config.ParseLayers(opts.layers)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Network.Layers = layers
	}
	if opts.seed != 0 {
		cfg.Network.Seed = opts.seed
	}
	if opts.width > 0 {
		cfg.Window.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Window.Height = opts.height
	}
	if opts.palette != "" {
		cfg.View.Palette = opts.palette
	}
	if opts.noMetrics {
		cfg.View.ShowMetrics = false
	}
	if opts.sound {
		cfg.Audio.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runView(ctx context.Context, opts runOptions) error {
	logger := loggerFromContext(ctx)

	if opts.pick {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			name, ok, err := pickPreset()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			opts.preset = name
		} else {
			logger.Warn("not a terminal, skipping preset picker")
		}
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	s := sim.New(cfg.SimParams())

	var hum *audio.Hum
	if cfg.Audio.Enabled {
		h, err := audio.Start()
		if err != nil {
			logger.Warn("sonification unavailable", "err", err)
		} else {
			hum = h
			defer audio.Stop()
		}
	}

	v := view.New(cfg, s, logger, hum)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting animation",
		"layers", cfg.Network.Layers,
		"seed", cfg.Network.Seed,
		"palette", cfg.View.Palette)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		_ = zenity.Error(err.Error(), zenity.Title("nnview"))
		return fmt.Errorf("running animation: %w", err)
	}
	return nil
}

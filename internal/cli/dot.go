package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/whispem/Neural-Network-View/internal/export"
)

type dotOptions struct {
	preset     string
	configPath string
	layers     string
	format     string
	out        string
}

func newDotCmd() *cobra.Command {
	var opts dotOptions

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the network topology as Graphviz DOT or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "built-in preset (see 'nnview presets')")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().StringVarP(&opts.layers, "layers", "l", "", "comma-separated node counts per layer")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format (dot, svg)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func runDot(ctx context.Context, opts dotOptions) error {
	cfg, err := buildConfig(runOptions{
		preset:     opts.preset,
		configPath: opts.configPath,
		layers:     opts.layers,
	})
	if err != nil {
		return err
	}

	dot := export.ToDOT(cfg.Network.Layers)

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = export.RenderSVG(dot)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (available: dot, svg)", opts.format)
	}

	if opts.out == "" || opts.out == "-" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(opts.out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.out, err)
	}
	printSuccess("Topology exported")
	printFile(opts.out)
	return nil
}

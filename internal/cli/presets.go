package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whispem/Neural-Network-View/internal/config"
)

func newPresetsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo("Built-in presets")
			for _, name := range config.PresetNames() {
				cfg, _ := config.Preset(name)
				printKeyValue(name, describeConfig(cfg))
			}
			if dir != "" {
				printNewline()
				printInfo("Presets in %s", dir)
				if err := listPresetDir(dir); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "also list TOML configs in a directory")
	return cmd
}

func describeConfig(cfg config.Config) string {
	return fmt.Sprintf("layers %s · cap %d · palette %s",
		layersString(cfg.Network.Layers), cfg.Network.MaxSignals, cfg.View.Palette)
}

// listPresetDir prints every valid TOML config in dir; invalid files get a
// warning instead of aborting the listing.
func listPresetDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		cfg, err := config.Load(path)
		if err != nil {
			printWarning("skipping %s: %v", entry.Name(), err)
			continue
		}
		printKeyValue(strings.TrimSuffix(entry.Name(), ".toml"), describeConfig(cfg))
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. Typically
// called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the nnview CLI. A bare invocation opens the animation window
// with the classic preset; tuning and the other modes live on the
// subcommands.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "nnview",
		Short: "nnview animates signals flowing through a layered network",
		Long: `nnview opens a window with a decorative animation of a layered network:
signals travel eased paths between nodes, nearby nodes light up and cool
back down, and a metrics dashboard shows playful derived numbers.

The animation is entirely cosmetic. Nothing is trained and nothing is
persisted; every launch starts fresh.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.Context(), runOptions{})
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("nnview %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newPresetsCmd())

	return root.ExecuteContext(ctx)
}

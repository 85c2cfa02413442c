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

// SetVersion sets the version information displayed by --version. The main
// package calls this at startup with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the spanmark CLI and returns an error if any command fails.
//
// The root command wires up all subcommands, loads the TOML configuration,
// and attaches a logger to the context: info level by default, debug with
// --verbose (-v). Both logger and config are available to every command via
// the context helpers in this package.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "spanmark",
		Short:        "Spanmark renders overlapping labeled text spans",
		Long:         `Spanmark is a CLI tool for rendering annotation documents (text plus possibly-overlapping labeled spans) as terminal diagrams, HTML fragments, and machine-readable exports.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}

			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("spanmark %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./spanmark.toml if present)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newOverlapCmd())
	root.AddCommand(newViewCmd())

	return root.ExecuteContext(ctx)
}

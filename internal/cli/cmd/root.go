// Package cmd provides Cobra CLI commands for kursor.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/kursor/internal/config"
	"github.com/bnema/kursor/internal/logging"
	"github.com/bnema/kursor/pkg/cursortheme"
)

var (
	cfg     *config.Config
	log     zerolog.Logger
	rootCmd = &cobra.Command{
		Use:   "kursor",
		Short: "Resolve XDG cursor themes and extract pixel frames",
		Long: `Kursor resolves a named cursor theme across the XDG icon search path,
follows its inheritance chain, and extracts RGBA frames from legacy
Xcursor files or scalable SVG icons at any requested size.

Use 'kursor render' to rasterize a cursor shape to PNG, or explore the
subcommands for inspecting the search path and metadata schema.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log = logging.New(logging.Config{
				Level:      logging.ParseLevel(cfg.Logging.Level),
				Format:     cfg.Logging.Format,
				TimeFormat: logging.DefaultConfig().TimeFormat,
			})
			cursortheme.SetLogger(log)
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package cli provides the command-line interface for bondangles.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rmera/bondangles/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose    bool
	configPath string

	// Global config and logger
	cfg           config.Config
	logger        = slog.Default()
	loggerCleanup = func() error { return nil }
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bondangles",
	Short: "Angles between the bonds at a particle",
	Long: `Bondangles computes the angles formed by every pair of bonds that meet
at a particle, for molecules and periodic systems.

Systems are read from (extended) xyz files, where bonds are assigned from
covalent radii, or from JSON system files with explicit bonds. Both can be
gzip (.gz) or zstd (.zst) compressed.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
		logger, loggerCleanup = config.SetupLogger(cfg.LogFile, cfg.LogLevel)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := loggerCleanup(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")

	// Add subcommands
	rootCmd.AddCommand(anglesCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(histogramCmd)
	rootCmd.AddCommand(bondsCmd)
}

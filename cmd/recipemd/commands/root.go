// Package commands wires the recipemd CLI surface.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/recipemd/recipemd/config"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config

	configPath string
	outputDir  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "recipemd",
	Short: "recipemd fetches recipes from cooking websites and renders them as Markdown.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(verbose)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if outputDir != "" {
			loaded.OutputDir = outputDir
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file.")
	rootCmd.PersistentFlags().StringVar(&outputDir, "dir", "", "Output directory for saved recipes.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
}

// ExecuteContext runs the CLI and exits non-zero on error.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if isTerminal(os.Stderr) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

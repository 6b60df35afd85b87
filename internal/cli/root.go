// Package cli implements the doc2report command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roboco-io/doc2report/internal/config"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "doc2report [file]",
	Short: "Convert laid-out documents into banded report definitions",
	Long: `doc2report converts a laid-out word-processing document snapshot into a
banded report definition.

Text becomes markup labels, tables become table controls, repeating lists
become nested detail reports with group headers and footers.

Examples:
  doc2report invoice.yaml
  doc2report convert invoice.yaml -o invoice.report.json
  doc2report inspect invoice.yaml --format text`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runConvert(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ~/.doc2report/config.yaml)")
	addConvertFlags(rootCmd)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

// newConfigLoader honours the --config flag.
func newConfigLoader() (*config.Loader, error) {
	if configPath != "" {
		return config.NewLoaderWithPath(configPath), nil
	}
	return config.NewLoader()
}

func loadConfig() (*config.Config, error) {
	loader, err := newConfigLoader()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

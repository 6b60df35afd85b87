package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roboco-io/doc2report/internal/config"
	"github.com/roboco-io/doc2report/internal/datasource"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage doc2report configuration.

Config file: ~/.doc2report/config.yaml

Subcommands:
  show    show the current configuration
  init    create a default config file
  set     change a setting
  path    print the config file path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Long: `Show the configuration as stored in the config file. Defaults are shown
when no file exists. Connection secrets are masked.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Create a default config file at ~/.doc2report/config.yaml.

Fails when the file already exists unless --force is given.`,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting.

Supported keys:
  output.format                        json, yaml
  output.pretty                        true, false
  log.level                            debug, info, warn, error
  conversion.merge_tolerance           column matching tolerance (1/100 inch)
  conversion.skip_headers_footers      true, false
  data_connections.<name>.provider
  data_connections.<name>.connection_string
  data_connections.<name>.data_member

Examples:
  doc2report config set output.format yaml
  doc2report config set data_connections.Shop.connection_string '${SHOP_DSN}'`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newConfigLoader()
		if err != nil {
			return fmt.Errorf("failed to initialize config loader: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader.ConfigPath())
		return nil
	},
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	loader, err := newConfigLoader()
	if err != nil {
		return fmt.Errorf("failed to initialize config loader: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	if loader.Exists() {
		fmt.Fprintf(out, "Config file: %s\n\n", loader.ConfigPath())
	} else {
		fmt.Fprintf(out, "Config file: (defaults)\n\n")
	}

	data, err := yaml.Marshal(maskConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	fmt.Fprintln(out, string(data))

	fmt.Fprintln(out, "Environment:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	envVars := []struct {
		key  string
		desc string
	}{
		{config.EnvFormat, "output format"},
		{config.EnvLogLevel, "log level"},
		{config.EnvSkipHeaders, "skip page headers and footers"},
	}
	for _, ev := range envVars {
		status := "(not set)"
		if v := os.Getenv(ev.key); v != "" {
			status = v
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", ev.key, ev.desc, status)
	}
	return w.Flush()
}

// maskConfig returns a copy of cfg with connection secrets hidden.
func maskConfig(cfg *config.Config) *config.Config {
	cp := *cfg
	cp.DataConnections = make(map[string]config.DataConnection, len(cfg.DataConnections))
	for name, dc := range cfg.DataConnections {
		dc.ConnectionString = datasource.MaskSecrets(dc.ConnectionString)
		cp.DataConnections[name] = dc
	}
	return &cp
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	loader, err := newConfigLoader()
	if err != nil {
		return fmt.Errorf("failed to initialize config loader: %w", err)
	}

	if loader.Exists() && !configForce {
		return fmt.Errorf("config file already exists: %s\nuse --force to overwrite", loader.ConfigPath())
	}

	if err := loader.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file created: %s\n", loader.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	loader, err := newConfigLoader()
	if err != nil {
		return fmt.Errorf("failed to initialize config loader: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Setting changed: %s = %s\n", key, value)
	return nil
}

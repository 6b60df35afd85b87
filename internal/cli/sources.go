package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roboco-io/doc2report/internal/datasource"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List configured data connections",
	Long: `List the data connections configured under data_connections.

When a document registers a data source with the same name, its provider,
connection string and data member are replaced by the configured values
before conversion. Secrets in connection strings are masked.`,
	RunE: runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	registry, err := cfg.Registry()
	if err != nil {
		return fmt.Errorf("invalid data connections: %w", err)
	}

	out := cmd.OutOrStdout()
	if registry.Count() == 0 {
		fmt.Fprintln(out, "No data connections configured.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPROVIDER\tDATA MEMBER\tCONNECTION")
	for _, name := range registry.List() {
		c, err := registry.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, orDash(c.Provider), orDash(c.DataMember), orDash(datasource.MaskSecrets(c.ConnectionString)))
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

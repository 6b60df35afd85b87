package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboco-io/doc2report/internal/document"
	"github.com/roboco-io/doc2report/internal/parser"
)

var (
	inspectOutput string
	inspectFormat string
	inspectPretty bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize the structure of a source document",
	Long: `Load a document snapshot and print a summary of what the converter will
see: sections, fields by entity kind, repeating lists, tables and layout pages.

Examples:
  doc2report inspect invoice.yaml
  doc2report inspect invoice.yaml --format text
  doc2report inspect invoice.cfb -o summary.json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", "", "output file (default: stdout)")
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "json", "output format (json, text)")
	inspectCmd.Flags().BoolVar(&inspectPretty, "pretty", true, "indent JSON output")

	rootCmd.AddCommand(inspectCmd)
}

// documentSummary describes a source document.
type documentSummary struct {
	Format      string         `json:"format"`
	Title       string         `json:"title,omitempty"`
	Sections    int            `json:"sections"`
	Paragraphs  int            `json:"paragraphs"`
	Fields      map[string]int `json:"fields"`
	Lists       []listSummary  `json:"lists,omitempty"`
	Tables      int            `json:"tables"`
	Pages       int            `json:"pages"`
	MultiColumn bool           `json:"multi_column,omitempty"`
	DataSources []string       `json:"data_sources,omitempty"`
	Parameters  []string       `json:"parameters,omitempty"`
}

type listSummary struct {
	Name       string `json:"name,omitempty"`
	DataSource string `json:"data_source,omitempty"`
	DataMember string `json:"data_member"`
	Groups     int    `json:"groups"`
	Filters    int    `json:"filters"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, format, err := loadDocument(args[0], parser.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	output, err := formatSummary(summarize(doc, format), inspectFormat)
	if err != nil {
		return fmt.Errorf("failed to format summary: %w", err)
	}

	if inspectOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}
	if err := os.WriteFile(inspectOutput, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "summary written: %s\n", inspectOutput)
	return nil
}

func summarize(doc *document.Document, format parser.Format) documentSummary {
	s := documentSummary{
		Format:      format.String(),
		Title:       doc.Metadata.Title,
		Sections:    len(doc.Sections),
		Paragraphs:  len(doc.Paragraphs),
		Fields:      map[string]int{},
		Tables:      len(doc.Tables),
		MultiColumn: doc.Layout.HasMultiColumnAreas(),
	}
	if doc.Layout != nil {
		s.Pages = len(doc.Layout.Pages)
	}

	for _, f := range doc.Fields {
		kind := string(doc.ParseField(f).Kind)
		if kind == "" {
			kind = "unknown"
		}
		s.Fields[kind]++
	}
	for _, f := range doc.TopLevelLists() {
		l := doc.ParseField(f).List
		s.Lists = append(s.Lists, listSummary{
			Name:       l.Name,
			DataSource: l.DataSourceName,
			DataMember: l.DataMember,
			Groups:     len(l.Groups),
			Filters:    len(l.Filters),
		})
	}
	for _, ds := range doc.DataSources {
		s.DataSources = append(s.DataSources, ds.Name)
	}
	for _, p := range doc.Parameters {
		s.Parameters = append(s.Parameters, p.Name)
	}
	return s
}

func formatSummary(s documentSummary, format string) (string, error) {
	switch format {
	case "json":
		var data []byte
		var err error
		if inspectPretty {
			data, err = json.MarshalIndent(s, "", "  ")
		} else {
			data, err = json.Marshal(s)
		}
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "text":
		return formatSummaryAsText(s), nil

	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatSummaryAsText(s documentSummary) string {
	var sb strings.Builder

	if s.Title != "" {
		fmt.Fprintf(&sb, "Title: %s\n", s.Title)
	}
	fmt.Fprintf(&sb, "Format: %s\n", s.Format)
	fmt.Fprintf(&sb, "Sections: %d\n", s.Sections)
	fmt.Fprintf(&sb, "Paragraphs: %d\n", s.Paragraphs)
	fmt.Fprintf(&sb, "Tables: %d\n", s.Tables)
	fmt.Fprintf(&sb, "Pages: %d\n", s.Pages)
	if s.MultiColumn {
		sb.WriteString("Multi-column layout: yes\n")
	}

	if len(s.Fields) > 0 {
		kinds := make([]string, 0, len(s.Fields))
		for k := range s.Fields {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		sb.WriteString("Fields:\n")
		for _, k := range kinds {
			fmt.Fprintf(&sb, "  %s: %d\n", k, s.Fields[k])
		}
	}

	if len(s.Lists) > 0 {
		sb.WriteString("Lists:\n")
		for _, l := range s.Lists {
			name := l.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Fprintf(&sb, "  - %s: %s (groups: %d, filters: %d)\n", name, l.DataMember, l.Groups, l.Filters)
		}
	}

	if len(s.DataSources) > 0 {
		fmt.Fprintf(&sb, "Data sources: %s\n", strings.Join(s.DataSources, ", "))
	}
	if len(s.Parameters) > 0 {
		fmt.Fprintf(&sb, "Parameters: %s\n", strings.Join(s.Parameters, ", "))
	}
	return sb.String()
}

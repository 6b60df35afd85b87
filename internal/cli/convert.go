package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roboco-io/doc2report/internal/convert"
	"github.com/roboco-io/doc2report/internal/datasource"
	"github.com/roboco-io/doc2report/internal/parser"
	"github.com/roboco-io/doc2report/internal/writer"
)

var (
	convertOutput    string
	convertFormat    string
	convertPretty    bool
	convertNoHeaders bool
	convertStrict    bool
	convertVerbose   bool
	convertQuiet     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a document into a report definition",
	Long: `Convert a document snapshot (YAML, JSON or compound file) into a banded
report definition.

Data connections configured under data_connections are applied to the data
sources of the document before conversion.

Environment:
  DOC2REPORT_FORMAT=json|yaml       output format
  DOC2REPORT_LOG_LEVEL=debug|info   log level

Examples:
  doc2report convert invoice.yaml
  doc2report convert invoice.yaml -o invoice.report.json
  doc2report convert invoice.cfb --format yaml --no-headers`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	addConvertFlags(convertCmd)
	rootCmd.AddCommand(convertCmd)
}

// addConvertFlags binds the conversion flags. The root command shares them
// so that "doc2report <file>" converts directly.
func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&convertFormat, "format", "", "output format (json, yaml)")
	cmd.Flags().BoolVar(&convertPretty, "pretty", true, "indent JSON output")
	cmd.Flags().BoolVar(&convertNoHeaders, "no-headers", false, "skip page headers and footers")
	cmd.Flags().BoolVar(&convertStrict, "strict", false, "reject unknown keys in snapshots")
	cmd.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "verbose output")
	cmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "only report errors")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	formatName := cfg.Output.Format
	if convertFormat != "" {
		formatName = convertFormat
	}
	format, err := writer.ParseFormat(formatName)
	if err != nil {
		return err
	}

	level := cfg.Log.SlogLevel()
	switch {
	case convertQuiet:
		level = slog.LevelError
	case convertVerbose:
		level = slog.LevelDebug
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	opts := parser.DefaultOptions()
	opts.Strict = convertStrict
	doc, srcFormat, err := loadDocument(inputPath, opts)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	logger.Info("document loaded", "path", inputPath, "format", srcFormat.String(),
		"paragraphs", len(doc.Paragraphs), "fields", len(doc.Fields), "tables", len(doc.Tables))

	registry, err := cfg.Registry()
	if err != nil {
		return fmt.Errorf("invalid data connections: %w", err)
	}

	conv := convert.New(convert.Options{
		Logger:             logger,
		Configurer:         datasource.RegistryConfigurer(registry),
		MergeTolerance:     cfg.Conversion.MergeTolerance,
		SkipHeadersFooters: convertNoHeaders || cfg.Conversion.SkipHeadersFooters,
	})
	rep, err := conv.Convert(doc)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	pretty := convertPretty
	if !cmd.Flags().Changed("pretty") {
		pretty = cfg.Output.Pretty
	}
	data, err := writer.Marshal(rep, writer.Options{Format: format, Pretty: pretty})
	if err != nil {
		return err
	}

	if convertOutput == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(convertOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !convertQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "report written: %s\n", convertOutput)
	}
	return nil
}

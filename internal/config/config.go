// Package config manages application configuration.
package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/roboco-io/doc2report/internal/datasource"
)

// Environment variables overriding file settings.
const (
	EnvFormat      = "DOC2REPORT_FORMAT"
	EnvLogLevel    = "DOC2REPORT_LOG_LEVEL"
	EnvSkipHeaders = "DOC2REPORT_SKIP_HEADERS"
)

// Config represents the application configuration.
type Config struct {
	Output          OutputConfig              `yaml:"output"`
	Log             LogConfig                 `yaml:"log"`
	Conversion      ConversionConfig          `yaml:"conversion"`
	DataConnections map[string]DataConnection `yaml:"data_connections,omitempty"`
}

// OutputConfig controls report serialization.
type OutputConfig struct {
	Format string `yaml:"format"`
	Pretty bool   `yaml:"pretty"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ConversionConfig tunes the converter.
type ConversionConfig struct {
	MergeTolerance     float64 `yaml:"merge_tolerance"`
	SkipHeadersFooters bool    `yaml:"skip_headers_footers"`
}

// SlogLevel maps the configured level to a slog level. Unknown values map
// to warn.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// DataConnection configures a named data source.
type DataConnection struct {
	Provider         string `yaml:"provider,omitempty"`
	ConnectionString string `yaml:"connection_string,omitempty"`
	DataMember       string `yaml:"data_member,omitempty"`
}

var (
	validFormats   = []string{"json", "yaml"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "json",
			Pretty: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Conversion: ConversionConfig{
			MergeTolerance: 0.5,
		},
		DataConnections: map[string]DataConnection{},
	}
}

// GetConnection returns the data connection by name.
func (c *Config) GetConnection(name string) (*DataConnection, bool) {
	dc, ok := c.DataConnections[name]
	if !ok {
		return nil, false
	}
	return &dc, true
}

// ConnectionNames returns the configured connection names (sorted).
func (c *Config) ConnectionNames() []string {
	names := make([]string, 0, len(c.DataConnections))
	for name := range c.DataConnections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registry builds a data-connection registry from the configuration.
func (c *Config) Registry() (*datasource.Registry, error) {
	r := datasource.NewRegistry()
	for _, name := range c.ConnectionNames() {
		dc := c.DataConnections[name]
		err := r.Register(datasource.Connection{
			Name:             name,
			Provider:         dc.Provider,
			ConnectionString: dc.ConnectionString,
			DataMember:       dc.DataMember,
		})
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() {
	if v := GetEnvOrDefault(EnvFormat, ""); v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v := GetEnvOrDefault(EnvLogLevel, ""); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if GetEnvBool(EnvSkipHeaders) {
		c.Conversion.SkipHeadersFooters = true
	}
}

// Set updates a single setting addressed by its dotted key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "output.format":
		if !contains(validFormats, value) {
			return fmt.Errorf("invalid output format: %s (supported: %s)", value, strings.Join(validFormats, ", "))
		}
		c.Output.Format = value

	case "output.pretty":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %s", value)
		}
		c.Output.Pretty = b

	case "log.level":
		if !contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s (supported: %s)", value, strings.Join(validLogLevels, ", "))
		}
		c.Log.Level = value

	case "conversion.merge_tolerance":
		tol, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid tolerance value: %s", value)
		}
		if tol < 0 {
			return fmt.Errorf("tolerance must not be negative: %f", tol)
		}
		c.Conversion.MergeTolerance = tol

	case "conversion.skip_headers_footers":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %s", value)
		}
		c.Conversion.SkipHeadersFooters = b

	default:
		return c.setConnection(key, value)
	}
	return nil
}

// setConnection handles data_connections.<name>.<field> keys.
func (c *Config) setConnection(key, value string) error {
	rest, ok := strings.CutPrefix(key, "data_connections.")
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}
	name, field, ok := cutLast(rest, ".")
	if !ok || name == "" {
		return fmt.Errorf("unknown config key: %s", key)
	}

	if c.DataConnections == nil {
		c.DataConnections = map[string]DataConnection{}
	}
	dc := c.DataConnections[name]
	switch field {
	case "provider":
		dc.Provider = value
	case "connection_string":
		dc.ConnectionString = value
	case "data_member":
		dc.DataMember = value
	default:
		return fmt.Errorf("unknown data connection field: %s", field)
	}
	c.DataConnections[name] = dc
	return nil
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

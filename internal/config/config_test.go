package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "json" {
		t.Errorf("expected default format 'json', got %s", cfg.Output.Format)
	}
	if !cfg.Output.Pretty {
		t.Error("expected pretty output by default")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Log.Level)
	}
	if cfg.Conversion.MergeTolerance != 0.5 {
		t.Errorf("expected merge tolerance 0.5, got %f", cfg.Conversion.MergeTolerance)
	}
	if len(cfg.DataConnections) != 0 {
		t.Errorf("expected no data connections, got %d", len(cfg.DataConnections))
	}
}

func TestConfig_GetConnection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataConnections["Shop"] = DataConnection{Provider: "sqlite"}

	dc, ok := cfg.GetConnection("Shop")
	if !ok {
		t.Fatal("expected to find 'Shop' connection")
	}
	if dc.Provider != "sqlite" {
		t.Errorf("expected provider 'sqlite', got %s", dc.Provider)
	}

	_, ok = cfg.GetConnection("nonexistent")
	if ok {
		t.Error("expected not to find 'nonexistent' connection")
	}
}

func TestConfig_Registry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataConnections["b"] = DataConnection{Provider: "pg"}
	cfg.DataConnections["a"] = DataConnection{ConnectionString: "file:a.db"}

	r, err := cfg.Registry()
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}
	if got := r.List(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", got)
	}
	c, err := r.Get("a")
	if err != nil {
		t.Fatalf("failed to get connection: %v", err)
	}
	if c.ConnectionString != "file:a.db" {
		t.Errorf("unexpected connection string %q", c.ConnectionString)
	}
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
		check   func(*Config) bool
	}{
		{"output.format", "yaml", false, func(c *Config) bool { return c.Output.Format == "yaml" }},
		{"output.format", "xml", true, nil},
		{"output.pretty", "false", false, func(c *Config) bool { return !c.Output.Pretty }},
		{"output.pretty", "maybe", true, nil},
		{"log.level", "debug", false, func(c *Config) bool { return c.Log.Level == "debug" }},
		{"log.level", "trace", true, nil},
		{"conversion.merge_tolerance", "1.5", false, func(c *Config) bool { return c.Conversion.MergeTolerance == 1.5 }},
		{"conversion.merge_tolerance", "-1", true, nil},
		{"conversion.skip_headers_footers", "true", false, func(c *Config) bool { return c.Conversion.SkipHeadersFooters }},
		{"data_connections.Shop.provider", "sqlite", false, func(c *Config) bool { return c.DataConnections["Shop"].Provider == "sqlite" }},
		{"data_connections.my.db.data_member", "Orders", false, func(c *Config) bool { return c.DataConnections["my.db"].DataMember == "Orders" }},
		{"data_connections.Shop.password", "x", true, nil},
		{"data_connections.provider", "x", true, nil},
		{"unknown", "x", true, nil},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Set(tc.key, tc.value)
			if tc.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.check(cfg) {
				t.Errorf("setting %s=%s had no effect", tc.key, tc.value)
			}
		})
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
	}

	for _, tc := range tests {
		if got := (LogConfig{Level: tc.level}).SlogLevel(); got != tc.expected {
			t.Errorf("SlogLevel(%q) = %v, want %v", tc.level, got, tc.expected)
		}
	}
}

func TestLoader_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	loader := NewLoaderWithPath(configPath)

	cfg := DefaultConfig()
	cfg.Output.Format = "yaml"
	cfg.DataConnections["Shop"] = DataConnection{Provider: "sqlite"}

	if err := loader.Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	if !loader.Exists() {
		t.Error("expected config file to exist after save")
	}

	loaded, err := loader.LoadRaw()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if loaded.Output.Format != "yaml" {
		t.Errorf("expected format 'yaml', got %s", loaded.Output.Format)
	}
	if loaded.DataConnections["Shop"].Provider != "sqlite" {
		t.Errorf("expected Shop provider 'sqlite', got %+v", loaded.DataConnections)
	}
}

func TestLoader_LoadNonExistent(t *testing.T) {
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
	loader := NewLoaderWithPath(filepath.Join(t.TempDir(), "nonexistent", "config.yaml"))

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected default format 'json', got %s", cfg.Output.Format)
	}
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("log:\n  level: debug\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := NewLoaderWithPath(configPath).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Log.Level)
	}
	if cfg.Conversion.MergeTolerance != 0.5 {
		t.Errorf("expected default tolerance 0.5, got %f", cfg.Conversion.MergeTolerance)
	}
}

func TestLoader_ExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_SHOP_DSN", "host=db;password=secret")
	t.Setenv("UNSET_VAR_FOR_TEST", "")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `data_connections:
  Shop:
    provider: postgres
    connection_string: ${TEST_SHOP_DSN}
  Archive:
    connection_string: ${UNSET_VAR_FOR_TEST}
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	loader := NewLoaderWithPath(configPath)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	shop, ok := cfg.GetConnection("Shop")
	if !ok {
		t.Fatal("expected to find 'Shop' connection")
	}
	if shop.ConnectionString != "host=db;password=secret" {
		t.Errorf("expected expanded connection string, got %s", shop.ConnectionString)
	}
	archive, _ := cfg.GetConnection("Archive")
	if archive.ConnectionString != "" {
		t.Errorf("expected empty connection string for unset env var, got %s", archive.ConnectionString)
	}

	raw, err := loader.LoadRaw()
	if err != nil {
		t.Fatalf("failed to load raw config: %v", err)
	}
	if raw.DataConnections["Shop"].ConnectionString != "${TEST_SHOP_DSN}" {
		t.Errorf("expected raw reference, got %s", raw.DataConnections["Shop"].ConnectionString)
	}
}

func TestLoader_EnvOverrides(t *testing.T) {
	t.Setenv(EnvFormat, "YAML")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvSkipHeaders, "1")

	cfg, err := NewLoaderWithPath(filepath.Join(t.TempDir(), "config.yaml")).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("expected format override 'yaml', got %s", cfg.Output.Format)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected level override 'debug', got %s", cfg.Log.Level)
	}
	if !cfg.Conversion.SkipHeadersFooters {
		t.Error("expected headers and footers to be skipped")
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_VAR", "test-value")

	if v := GetEnvOrDefault("TEST_VAR", "default"); v != "test-value" {
		t.Errorf("expected 'test-value', got %s", v)
	}
	if v := GetEnvOrDefault("NONEXISTENT_VAR", "default"); v != "default" {
		t.Errorf("expected 'default', got %s", v)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"", false},
		{"invalid", false},
	}

	for _, tc := range tests {
		t.Setenv("TEST_BOOL", tc.value)
		if got := GetEnvBool("TEST_BOOL"); got != tc.expected {
			t.Errorf("GetEnvBool(%q): expected %v, got %v", tc.value, tc.expected, got)
		}
	}
}

func TestNewLoader(t *testing.T) {
	loader, err := NewLoader()
	if err != nil {
		t.Fatalf("failed to create loader: %v", err)
	}

	path := loader.ConfigPath()
	if filepath.Base(path) != ConfigFileName {
		t.Errorf("expected config file name %s, got %s", ConfigFileName, filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != ConfigDirName {
		t.Errorf("expected config dir %s, got %s", ConfigDirName, filepath.Dir(path))
	}
}

func TestLoader_Init(t *testing.T) {
	loader := NewLoaderWithPath(filepath.Join(t.TempDir(), "config.yaml"))

	if err := loader.Init(); err != nil {
		t.Fatalf("failed to init config: %v", err)
	}
	if !loader.Exists() {
		t.Error("expected config file to exist after init")
	}
	if err := loader.Init(); err == nil {
		t.Error("expected error when initializing existing config")
	}
}

func TestLoader_LoadInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("{{{{invalid yaml"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := NewLoaderWithPath(configPath).Load(); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

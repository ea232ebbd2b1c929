package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_PORT", "CATALOG_SOURCE", "CATALOG_FILE", "LOG_LEVEL", "LOG_FORMAT", "METRICS_ENABLED", "TRACING_ENABLED", "DB_MAX_CONNS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.HTTPPort != "8000" {
		t.Errorf("HTTPPort = %q, want 8000", cfg.HTTPPort)
	}
	if cfg.CatalogSource != SourceBuiltin {
		t.Errorf("CatalogSource = %q, want %q", cfg.CatalogSource, SourceBuiltin)
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled should default to true")
	}
	if cfg.TracingEnabled {
		t.Error("TracingEnabled should default to false")
	}
	if cfg.DBMaxConns != 4 {
		t.Errorf("DBMaxConns = %d, want 4", cfg.DBMaxConns)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CATALOG_SOURCE", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "not-a-number")

	cfg := Load()
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.CatalogSource != SourceRedis {
		t.Errorf("CatalogSource = %q, want %q", cfg.CatalogSource, SourceRedis)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("RedisDB = %d", cfg.RedisDB)
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled should be false")
	}
	if !cfg.TracingEnabled {
		t.Error("TracingEnabled should be true")
	}
	if cfg.ShutdownTimeoutSeconds != 10 {
		t.Errorf("unparsable int should fall back, got %d", cfg.ShutdownTimeoutSeconds)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{HTTPPort: "8000", CatalogSource: SourceBuiltin, LogLevel: "info", LogFormat: "text"}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"file without path", func(c *Config) { c.CatalogSource = SourceFile }, true},
		{"file with path", func(c *Config) { c.CatalogSource = SourceFile; c.CatalogFile = "cars.yaml" }, false},
		{"unknown source", func(c *Config) { c.CatalogSource = "mongo" }, true},
		{"unknown format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"unknown level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"bad port", func(c *Config) { c.HTTPPort = "eighty" }, true},
		{"port zero", func(c *Config) { c.HTTPPort = "0" }, true},
		{"negative port", func(c *Config) { c.HTTPPort = "-1" }, true},
		{"port too large", func(c *Config) { c.HTTPPort = "99999" }, true},
		{"lowest port", func(c *Config) { c.HTTPPort = "1" }, false},
		{"highest port", func(c *Config) { c.HTTPPort = "65535" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPostgresURL(t *testing.T) {
	c := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d", DBMaxConns: 2}
	want := "postgres://u:p@h:5432/d?pool_max_conns=2"
	if got := c.PostgresURL(); got != want {
		t.Errorf("PostgresURL() = %q, want %q", got, want)
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceRedis    = "redis"
)

type Config struct {
	// HTTP
	HTTPPort                 string
	ReadHeaderTimeoutSeconds int
	ShutdownTimeoutSeconds   int

	// Catalog seeding
	CatalogSource string
	CatalogFile   string

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBMaxConns int32

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Observability
	LogLevel       string
	LogFormat      string
	MetricsEnabled bool
	TracingEnabled bool
}

func Load() *Config {
	return &Config{
		HTTPPort:                 getEnv("HTTP_PORT", "8000"),
		ReadHeaderTimeoutSeconds: getEnvInt("READ_HEADER_TIMEOUT_SECONDS", 5),
		ShutdownTimeoutSeconds:   getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10),
		CatalogSource:            strings.ToLower(getEnv("CATALOG_SOURCE", SourceBuiltin)),
		CatalogFile:              getEnv("CATALOG_FILE", ""),
		DBHost:                   getEnv("DB_HOST", "localhost"),
		DBPort:                   getEnv("DB_PORT", "5432"),
		DBUser:                   getEnv("DB_USER", "fleet_user"),
		DBPassword:               getEnv("DB_PASSWORD", "fleet_password"),
		DBName:                   getEnv("DB_NAME", "fleet_monitor"),
		DBMaxConns:               int32(getEnvInt("DB_MAX_CONNS", 4)),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:            getEnv("REDIS_PASSWORD", ""),
		RedisDB:                  getEnvInt("REDIS_DB", 0),
		LogLevel:                 strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:                strings.ToLower(getEnv("LOG_FORMAT", "text")),
		MetricsEnabled:           getEnvBool("METRICS_ENABLED", true),
		TracingEnabled:           getEnvBool("TRACING_ENABLED", false),
	}
}

func (c *Config) Validate() error {
	switch c.CatalogSource {
	case SourceBuiltin, SourcePostgres, SourceRedis:
	case SourceFile:
		if c.CatalogFile == "" {
			return fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE=%s", SourceFile)
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel)
	}

	port, err := strconv.Atoi(c.HTTPPort)
	if err != nil {
		return fmt.Errorf("invalid HTTP_PORT %q: %w", c.HTTPPort, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("HTTP_PORT %d out of range 1-65535", port)
	}
	return nil
}

// PostgresURL is the pgx connection string for the vehicles database.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?pool_max_conns=%d",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBMaxConns,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

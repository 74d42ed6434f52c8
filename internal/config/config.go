package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Supported relational drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported audit log backends.
const (
	AuditBackendAzureTable = "azuretable"
	AuditBackendRedis      = "redis"
	AuditBackendMemory     = "memory"
)

// Config holds application configuration. It is built once at startup and
// passed by value into the components that need it.
type Config struct {
	// Runtime
	Env      string
	LogLevel string

	// Server
	Port string

	// Database
	DB DBConfig

	// Audit log store
	Audit AuditConfig
}

// DBConfig describes the relational Record Store connection.
type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Schema   string
	Path     string // sqlite only
}

// AuditConfig describes the key-value audit log store connection.
type AuditConfig struct {
	Backend          string
	ConnectionString string
	TableName        string
	KeyPrefix        string // redis only
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	// Load .env file if present; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read .env file: %w", err)
	}

	cfg := Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnv("PORT", "8080"),

		DB: DBConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "staffaudit"),
			Password: getEnv("DB_PASSWORD", "staffaudit"),
			Name:     getEnv("DB_NAME", "staffaudit"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Schema:   getEnv("DB_SCHEMA", "public"),
			Path:     getEnv("DB_PATH", "staffaudit.db"),
		},

		Audit: AuditConfig{
			Backend:          strings.ToLower(getEnv("AUDIT_BACKEND", AuditBackendMemory)),
			ConnectionString: getEnv("AUDIT_CONNECTION_STRING", ""),
			TableName:        getEnv("AUDIT_TABLE_NAME", "EmployeeLog"),
			KeyPrefix:        getEnv("AUDIT_KEY_PREFIX", "staffaudit"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration combinations the service cannot start with.
func (c Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", c.DB.Driver, DriverPostgres, DriverSQLite)
	}

	switch c.Audit.Backend {
	case AuditBackendAzureTable, AuditBackendRedis:
		if c.Audit.ConnectionString == "" {
			return fmt.Errorf("AUDIT_CONNECTION_STRING is required for audit backend %q", c.Audit.Backend)
		}
	case AuditBackendMemory:
	default:
		return fmt.Errorf("unsupported AUDIT_BACKEND %q", c.Audit.Backend)
	}

	if c.Audit.TableName == "" {
		return fmt.Errorf("AUDIT_TABLE_NAME must not be empty")
	}
	return nil
}

// IsProduction reports whether the service runs with production defaults.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

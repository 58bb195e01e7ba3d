package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"hisaab/internal/i18n"
)

type Config struct {
	// HTTP Server
	Port string

	// Storage
	DataBackend  string
	SQLiteDBPath string

	// Preference defaults applied when nothing is persisted yet
	DefaultRate     string
	DefaultLanguage string
	DefaultTheme    string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		DataBackend:  getEnv("DATA_BACKEND", "sqlite"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/hisaab.db"),

		DefaultRate:     getEnv("DEFAULT_RATE", "50"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", i18n.DefaultLanguage),
		DefaultTheme:    getEnv("DEFAULT_THEME", "light"),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	case "memory":
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [sqlite memory]", c.DataBackend))
	}

	if v, err := decimal.NewFromString(c.DefaultRate); err != nil {
		errors = append(errors, fmt.Sprintf("invalid default rate '%s': must be a decimal number", c.DefaultRate))
	} else if v.Sign() < 0 {
		errors = append(errors, fmt.Sprintf("invalid default rate '%s': must not be negative", c.DefaultRate))
	}

	if !i18n.Supported(c.DefaultLanguage) {
		errors = append(errors, fmt.Sprintf("unsupported default language '%s': must be one of %v", c.DefaultLanguage, i18n.Languages()))
	}

	if c.DefaultTheme != "light" && c.DefaultTheme != "dark" {
		errors = append(errors, fmt.Sprintf("invalid default theme '%s': must be 'light' or 'dark'", c.DefaultTheme))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

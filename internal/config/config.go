package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime settings. Command-line flags override these.
type Config struct {
	Port       int
	LogLevel   string
	LogJSON    bool
	GroupsFile string

	// Contact form submissions allowed per minute across all clients.
	ContactPerMinute int
}

// Load reads .env (if present) and the ACADCALC_* environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvAsInt("ACADCALC_PORT", 0),
		LogLevel:         getEnv("ACADCALC_LOG_LEVEL", "info"),
		LogJSON:          getEnvAsBool("ACADCALC_LOG_JSON", false),
		GroupsFile:       getEnv("ACADCALC_GROUPS_FILE", ""),
		ContactPerMinute: getEnvAsInt("ACADCALC_CONTACT_PER_MINUTE", 10),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.ContactPerMinute < 1 {
		return fmt.Errorf("contact rate must be >= 1 per minute, got %d", c.ContactPerMinute)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

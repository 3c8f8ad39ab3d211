package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Valuation ValuationConfig
	Scheduler SchedulerConfig
	Pricing   PricingConfig
	Security  SecurityConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ValuationConfig holds the engine-wide financial rates. Defaults match
// the Italian capital-gains regime and the broker's holding fee.
type ValuationConfig struct {
	TaxRate                  float64 // fraction, e.g. 0.26
	DefaultAnnualHoldingRate float64 // percent per year, e.g. 0.20
}

// SchedulerConfig holds the price-refresh schedule. An empty cron spec
// disables the scheduler.
type SchedulerConfig struct {
	PriceRefreshCron string
}

// PricingConfig holds quote-source configuration. The AlphaVantage key
// here is a bootstrap fallback; a key stored through the settings API
// takes precedence.
type PricingConfig struct {
	AlphaVantageKey string
}

// SecurityConfig holds secret-handling configuration. FernetKey is the
// base64 key used to encrypt stored secrets; when empty, secrets are
// stored in plaintext.
type SecurityConfig struct {
	FernetKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	taxRate, err := getEnvFloat("TAX_RATE", 0.26)
	if err != nil {
		return nil, err
	}
	holdingRate, err := getEnvFloat("DEFAULT_HOLDING_RATE", 0.20)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/trading_journal.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS",
				[]string{"http://localhost:3000", "http://localhost"}),
		},
		Valuation: ValuationConfig{
			TaxRate:                  taxRate,
			DefaultAnnualHoldingRate: holdingRate,
		},
		Scheduler: SchedulerConfig{
			PriceRefreshCron: getEnv("PRICE_REFRESH_CRON", ""),
		},
		Pricing: PricingConfig{
			AlphaVantageKey: getEnv("ALPHAVANTAGE_API_KEY", ""),
		},
		Security: SecurityConfig{
			FernetKey: getEnv("FERNET_KEY", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvList gets a comma-separated environment variable or returns a
// default value. Entries are trimmed; empty entries are dropped.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var list []string
	for _, entry := range strings.Split(value, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			list = append(list, entry)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

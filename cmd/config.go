package cmd

import (
	"os"
	"strconv"

	"github.com/etnz/pnl"
	"github.com/joho/godotenv"
)

// Config holds the default values of the command flags.
type Config struct {
	Method    string // PNL_METHOD
	Precision int    // PNL_PRECISION
	Format    string // PNL_FORMAT
	Currency  string // PNL_CURRENCY
	Verbose   bool   // PNL_VERBOSE
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Method:    pnl.FIFO.String(),
		Precision: int(pnl.DefaultPrecision),
		Format:    formatCSV,
	}
}

// LoadConfig loads configuration from .env file (if exists) and environment variables.
// Priority: ENV > .env file > defaults
func LoadConfig(envPath string) Config {
	cfg := DefaultConfig()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load() // loads .env from current directory
	}

	cfg.Method = getEnv("PNL_METHOD", cfg.Method)
	cfg.Format = getEnv("PNL_FORMAT", cfg.Format)
	cfg.Currency = getEnv("PNL_CURRENCY", cfg.Currency)
	if p := os.Getenv("PNL_PRECISION"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n >= 0 {
			cfg.Precision = n
		}
	}
	if v := os.Getenv("PNL_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
	return cfg
}

// getEnv returns environment variable value or default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

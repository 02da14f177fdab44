package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Rate sources
	RatesFile         string // JSON rate table, re-read on every request
	RateOverridesFile string // optional file of KEY: rate overrides (json, yaml, toml, env)

	// Logging
	LogFormat string // json or text
	LogLevel  string

	// HTTP extras
	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("RATES_FILE", "exchangeRates.json")
	v.SetDefault("RATE_OVERRIDES_FILE", "")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.RatesFile = v.GetString("RATES_FILE")
	if cfg.RatesFile == "" {
		cfg.RatesFile = "exchangeRates.json"
		log.Printf("Warning: RATES_FILE is empty. Defaulting to %s\n", cfg.RatesFile)
	}

	cfg.LogFormat = strings.ToLower(v.GetString("LOG_FORMAT"))
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		log.Printf("Warning: Invalid value for LOG_FORMAT ('%s'). Defaulting to json.\n", cfg.LogFormat)
		cfg.LogFormat = "json"
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.RateOverridesFile = v.GetString("RATE_OVERRIDES_FILE")
	cfg.LogLevel = v.GetString("LOG_LEVEL")
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

// LoadRateOverrides builds the configuration that rate overrides are read from:
// process environment (e.g. USD_TO_EUR=0.95) layered over path, if given.
// A configured but missing file is logged and ignored.
func LoadRateOverrides(path string) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()

	if path == "" {
		return v, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: RATE_OVERRIDES_FILE '%s' not found. Using environment overrides only.\n", path)
			return v, nil
		}
		return nil, fmt.Errorf("failed to read rate overrides from %s: %w", path, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/AnglerBot_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"gt=0,lte=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string
	Version     string

	// Catch overrides, sourced from persisted user configuration.
	AlwaysSuccess     bool
	AlwaysPerfect     bool
	SuccessMultiplier float64 `validate:"gte=0"`
	QualityOverride   int     `validate:"gte=-1,lte=4"`
	RetryOnFailure    bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.AlwaysSuccess, err = getEnvBool("CATCH_ALWAYS_SUCCESS", false)
	if err != nil {
		return nil, err
	}
	cfg.AlwaysPerfect, err = getEnvBool("CATCH_ALWAYS_PERFECT", false)
	if err != nil {
		return nil, err
	}
	cfg.RetryOnFailure, err = getEnvBool("CATCH_RETRY_ON_FAILURE", false)
	if err != nil {
		return nil, err
	}
	cfg.SuccessMultiplier, err = getEnvFloat("CATCH_SUCCESS_MULTIPLIER", 1.0)
	if err != nil {
		return nil, err
	}
	cfg.QualityOverride, err = getEnvInt("CATCH_QUALITY_OVERRIDE", domain.QualityAuto)
	if err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Overrides returns the catch overrides carried by this configuration.
func (c *Config) Overrides() domain.CatchOverrides {
	return domain.CatchOverrides{
		AlwaysSuccess:     c.AlwaysSuccess,
		AlwaysPerfect:     c.AlwaysPerfect,
		SuccessMultiplier: c.SuccessMultiplier,
		QualityOverride:   c.QualityOverride,
		RetryOnFailure:    c.RetryOnFailure,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return b, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return f, nil
}

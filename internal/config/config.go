package config

import (
	"os"
	"strconv"

	"simlab/domain/core"
)

// Config represents the complete application configuration
type Config struct {
	Sim    SimConfig
	Output OutputConfig
}

// SimConfig holds simulation defaults
type SimConfig struct {
	Seed     int64
	PerGroup int
	Trials   int
	Workers  int
}

// OutputConfig holds output sink settings
type OutputConfig struct {
	Dir    string
	Format string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Sim: SimConfig{
			Seed:     getEnvInt64OrDefault("SIM_SEED", 42),
			PerGroup: getEnvIntOrDefault("SIM_PER_GROUP", 50),
			Trials:   getEnvIntOrDefault("SIM_TRIALS", 1000),
			Workers:  getEnvIntOrDefault("SIM_WORKERS", 1),
		},
		Output: OutputConfig{
			Dir:    getEnvOrDefault("OUT_DIR", "."),
			Format: getEnvOrDefault("OUT_FORMAT", "csv"),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Sim.PerGroup < 1 {
		return core.NewInvalidArgumentError("SIM_PER_GROUP", "must be >= 1")
	}
	if cfg.Sim.Trials < 1 {
		return core.NewInvalidArgumentError("SIM_TRIALS", "must be >= 1")
	}
	if cfg.Sim.Workers < 1 {
		return core.NewInvalidArgumentError("SIM_WORKERS", "must be >= 1")
	}
	if cfg.Output.Format != "csv" && cfg.Output.Format != "xlsx" {
		return core.NewInvalidArgumentError("OUT_FORMAT", "must be csv or xlsx")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

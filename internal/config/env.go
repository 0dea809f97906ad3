package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// FromEnv applies MISSIONSIM_* overrides on top of cfg.
// A .env file in the working directory is loaded first when present; a
// .env that exists but does not parse is an error.
func FromEnv(cfg Config) (Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load .env: %w", err)
		}
		slog.Debug("no .env file found, using system environment variables")
	}

	if val := os.Getenv("MISSIONSIM_SEED"); val != "" {
		seed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("MISSIONSIM_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if val := os.Getenv("MISSIONSIM_TICK_INTERVAL"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return cfg, fmt.Errorf("MISSIONSIM_TICK_INTERVAL: %w", err)
		}
		cfg.Simulation.TickInterval = d
	}
	if val := getEnvFloat("MISSIONSIM_TIME_SCALE"); val > 0 {
		cfg.Simulation.TimeScale = val
	}
	if val := getEnvInt("MISSIONSIM_MISSION_BATCH"); val > 0 {
		cfg.Missions.BatchSize = val
	}
	cfg.Logging.Level = getEnv("MISSIONSIM_LOG_LEVEL", cfg.Logging.Level)
	if val := os.Getenv("MISSIONSIM_LOG_JSON"); val != "" {
		cfg.Logging.JSONFormat = val == "true"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return val
}

func getEnvFloat(key string) float64 {
	val, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return 0
	}
	return val
}

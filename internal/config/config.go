package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Server
	Port int

	// Generation
	SampleRate         int // Hz, 44100 canonical
	MaxDurationMinutes int // upper bound for the duration slider
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		Port:               envInt("HEALWAVE_PORT", 8080),
		SampleRate:         envInt("HEALWAVE_SAMPLE_RATE", 44100),
		MaxDurationMinutes: envInt("HEALWAVE_MAX_DURATION_MINUTES", 120),
	}
}

// MaxDurationSeconds converts the configured cap to seconds.
func (c Config) MaxDurationSeconds() float64 {
	return float64(c.MaxDurationMinutes) * 60
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

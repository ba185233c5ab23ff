package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HEALWAVE_PORT", "HEALWAVE_SAMPLE_RATE", "HEALWAVE_MAX_DURATION_MINUTES"} {
		os.Unsetenv(k)
	}

	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
	if cfg.MaxDurationMinutes != 120 {
		t.Errorf("MaxDurationMinutes = %d, want 120", cfg.MaxDurationMinutes)
	}
	if cfg.MaxDurationSeconds() != 7200 {
		t.Errorf("MaxDurationSeconds() = %g, want 7200", cfg.MaxDurationSeconds())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HEALWAVE_PORT", "3000")
	t.Setenv("HEALWAVE_SAMPLE_RATE", "48000")
	t.Setenv("HEALWAVE_MAX_DURATION_MINUTES", "30")

	cfg := Load()

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", cfg.SampleRate)
	}
	if cfg.MaxDurationMinutes != 30 {
		t.Errorf("MaxDurationMinutes = %d, want 30", cfg.MaxDurationMinutes)
	}
}

func TestEnvIntInvalidFallsBack(t *testing.T) {
	t.Setenv("HEALWAVE_PORT", "not-a-number")
	cfg := Load()
	if cfg.Port != 8080 {
		t.Errorf("Invalid int env should fall back to default: got %d, want 8080", cfg.Port)
	}
}

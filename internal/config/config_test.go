package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default Port '8080', got '%s'", cfg.Port)
	}

	if cfg.HopSize != 256 {
		t.Errorf("Expected default HopSize 256, got %d", cfg.HopSize)
	}

	if cfg.Threshold != 0.5 {
		t.Errorf("Expected default Threshold 0.5, got %f", cfg.Threshold)
	}

	if cfg.MinPauseDuration != 0.3 {
		t.Errorf("Expected default MinPauseDuration 0.3, got %f", cfg.MinPauseDuration)
	}

	if cfg.LongPauseDuration != 1.0 {
		t.Errorf("Expected default LongPauseDuration 1.0, got %f", cfg.LongPauseDuration)
	}

	if cfg.MinSpeechDuration != 0.1 {
		t.Errorf("Expected default MinSpeechDuration 0.1, got %f", cfg.MinSpeechDuration)
	}

	if cfg.EnergyRef != 5000.0 {
		t.Errorf("Expected default EnergyRef 5000.0, got %f", cfg.EnergyRef)
	}
}

func TestLoad_Overrides(t *testing.T) {
	os.Setenv("HOP_SIZE", "160")
	os.Setenv("MIN_PAUSE_DURATION", "0.5")
	defer os.Unsetenv("HOP_SIZE")
	defer os.Unsetenv("MIN_PAUSE_DURATION")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.HopSize != 160 {
		t.Errorf("Expected HopSize 160, got %d", cfg.HopSize)
	}

	if cfg.MinPauseDuration != 0.5 {
		t.Errorf("Expected MinPauseDuration 0.5, got %f", cfg.MinPauseDuration)
	}
}

func TestLoad_InvalidHopSize(t *testing.T) {
	os.Setenv("HOP_SIZE", "0")
	defer os.Unsetenv("HOP_SIZE")

	if _, err := Load(); err == nil {
		t.Error("Expected error for non-positive HOP_SIZE")
	}
}

func TestLoad_InvalidThreshold(t *testing.T) {
	os.Setenv("THRESHOLD", "1.5")
	defer os.Unsetenv("THRESHOLD")

	if _, err := Load(); err == nil {
		t.Error("Expected error for out-of-range THRESHOLD")
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("PORT", "9090")
	defer os.Unsetenv("PORT")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected Port '9090', got '%s'", cfg.Port)
	}
}

func TestLoad_ObservabilityDefaults(t *testing.T) {
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default LogLevel 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.LogPretty {
		t.Error("Expected default LogPretty false, got true")
	}

	if !cfg.MetricsEnabled {
		t.Error("Expected default MetricsEnabled true, got false")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_KEY", "test-value")
	defer os.Unsetenv("TEST_KEY")

	value := GetEnv("TEST_KEY", "default")
	if value != "test-value" {
		t.Errorf("Expected 'test-value', got '%s'", value)
	}

	value = GetEnv("NON_EXISTENT_KEY", "default")
	if value != "default" {
		t.Errorf("Expected 'default', got '%s'", value)
	}
}

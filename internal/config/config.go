package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the segmentation service
type Config struct {
	// Server configuration
	Port string `envconfig:"PORT" default:"8080"`

	// Segmentation configuration. Frame duration is HOP_SIZE / 16000; all
	// durations are in seconds.
	HopSize           int     `envconfig:"HOP_SIZE" default:"256"`            // Samples per frame (160 or 256 at 16kHz)
	Threshold         float64 `envconfig:"THRESHOLD" default:"0.5"`           // Speech probability threshold
	MinPauseDuration  float64 `envconfig:"MIN_PAUSE_DURATION" default:"0.3"`  // Silence before a pause is reported
	LongPauseDuration float64 `envconfig:"LONG_PAUSE_DURATION" default:"1.0"` // Silence that ends a speech episode
	MinSpeechDuration float64 `envconfig:"MIN_SPEECH_DURATION" default:"0.1"` // Speech before an episode is confirmed

	// Classifier configuration
	EnergyRef float64 `envconfig:"ENERGY_REF" default:"5000.0"` // RMS level mapped to probability 1.0

	// Observability configuration
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`       // Log level: debug, info, warn, error
	LogPretty      bool   `envconfig:"LOG_PRETTY" default:"false"`     // Pretty print logs (for development)
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"` // Enable Prometheus metrics
}

// Load reads configuration from environment variables.
// It first attempts to load from .env file if it exists, then from environment.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return LoadFromEnv()
}

// LoadFromEnv loads configuration directly from environment variables
// without attempting to load .env file (useful for containerized deployments)
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.HopSize <= 0 {
		return nil, fmt.Errorf("HOP_SIZE must be positive, got %d", cfg.HopSize)
	}
	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		return nil, fmt.Errorf("THRESHOLD must be in [0, 1], got %f", cfg.Threshold)
	}

	return &cfg, nil
}

// GetEnv returns the value of an environment variable or a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

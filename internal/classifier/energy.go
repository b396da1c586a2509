package classifier

import (
	"fmt"

	"github.com/voicelab/speech-segmenter/internal/audio"
)

// EnergyConfig holds configuration for the RMS energy classifier
type EnergyConfig struct {
	Threshold float64 // Speech probability threshold in [0, 1]
	FrameSize int     // Samples per frame (160 or 256 at 16kHz)
	EnergyRef float64 // RMS level mapped to probability 1.0
}

// DefaultEnergyConfig returns a default energy classifier configuration
func DefaultEnergyConfig() EnergyConfig {
	return EnergyConfig{
		Threshold: 0.5,
		FrameSize: 256, // 16ms at 16kHz
		EnergyRef: 5000.0,
	}
}

// Energy is an RMS-energy frame classifier. It maps a frame's RMS level to a
// speech probability and thresholds it.
type Energy struct {
	config EnergyConfig
}

// NewEnergy creates an energy classifier. It fails if the configuration is
// invalid; the error is propagated, not retried.
func NewEnergy(config EnergyConfig) (*Energy, error) {
	if config.Threshold < 0 || config.Threshold > 1 {
		return nil, fmt.Errorf("threshold must be in [0, 1], got %f", config.Threshold)
	}
	if config.FrameSize <= 0 {
		return nil, fmt.Errorf("frame size must be positive, got %d", config.FrameSize)
	}
	if config.EnergyRef <= 0 {
		return nil, fmt.Errorf("energy reference must be positive, got %f", config.EnergyRef)
	}
	return &Energy{config: config}, nil
}

// Classify classifies one frame of samples
func (e *Energy) Classify(frame []int16) (Result, error) {
	if len(frame) != e.config.FrameSize {
		return Result{}, fmt.Errorf("frame size mismatch: expected %d samples, got %d", e.config.FrameSize, len(frame))
	}

	probability := audio.CalculateRMS(frame) / e.config.EnergyRef
	if probability > 1.0 {
		probability = 1.0
	}

	return Result{
		Probability: probability,
		IsSpeech:    probability >= e.config.Threshold,
	}, nil
}

// Close releases the classifier. The energy classifier holds no native
// resources, so this is a no-op kept for the Classifier contract.
func (e *Energy) Close() error {
	return nil
}

// FrameSize returns the configured samples-per-frame
func (e *Energy) FrameSize() int {
	return e.config.FrameSize
}

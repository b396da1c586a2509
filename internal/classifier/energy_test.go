package classifier

import (
	"testing"
)

func constantFrame(size int, amplitude int16) []int16 {
	frame := make([]int16, size)
	for i := range frame {
		frame[i] = amplitude
	}
	return frame
}

func TestEnergy_ClassifySpeech(t *testing.T) {
	clf, err := NewEnergy(EnergyConfig{Threshold: 0.5, FrameSize: 256, EnergyRef: 5000.0})
	if err != nil {
		t.Fatalf("NewEnergy() failed: %v", err)
	}
	defer clf.Close()

	result, err := clf.Classify(constantFrame(256, 5000))
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}
	if !result.IsSpeech {
		t.Error("Expected high-energy frame to classify as speech")
	}
	if result.Probability != 1.0 {
		t.Errorf("Expected probability clamped to 1.0, got %f", result.Probability)
	}
}

func TestEnergy_ClassifySilence(t *testing.T) {
	clf, err := NewEnergy(EnergyConfig{Threshold: 0.5, FrameSize: 256, EnergyRef: 5000.0})
	if err != nil {
		t.Fatalf("NewEnergy() failed: %v", err)
	}
	defer clf.Close()

	result, err := clf.Classify(constantFrame(256, 10))
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}
	if result.IsSpeech {
		t.Error("Expected low-energy frame to classify as silence")
	}
	if result.Probability < 0 || result.Probability > 1 {
		t.Errorf("Expected probability in [0, 1], got %f", result.Probability)
	}
}

func TestEnergy_Threshold(t *testing.T) {
	// A frame with RMS 1000 maps to probability 0.2 at reference 5000
	frame := constantFrame(256, 1000)

	low, err := NewEnergy(EnergyConfig{Threshold: 0.1, FrameSize: 256, EnergyRef: 5000.0})
	if err != nil {
		t.Fatalf("NewEnergy() failed: %v", err)
	}
	result, err := low.Classify(frame)
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}
	if !result.IsSpeech {
		t.Error("Expected low threshold to classify as speech")
	}

	high, err := NewEnergy(EnergyConfig{Threshold: 0.9, FrameSize: 256, EnergyRef: 5000.0})
	if err != nil {
		t.Fatalf("NewEnergy() failed: %v", err)
	}
	result, err = high.Classify(frame)
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}
	if result.IsSpeech {
		t.Error("Expected high threshold to classify as silence")
	}
}

func TestEnergy_FrameSizeMismatch(t *testing.T) {
	clf, err := NewEnergy(DefaultEnergyConfig())
	if err != nil {
		t.Fatalf("NewEnergy() failed: %v", err)
	}

	if _, err := clf.Classify(constantFrame(100, 5000)); err == nil {
		t.Error("Expected error for mismatched frame size")
	}
}

func TestEnergy_InvalidConfig(t *testing.T) {
	invalid := []EnergyConfig{
		{Threshold: -0.1, FrameSize: 256, EnergyRef: 5000.0},
		{Threshold: 1.5, FrameSize: 256, EnergyRef: 5000.0},
		{Threshold: 0.5, FrameSize: 0, EnergyRef: 5000.0},
		{Threshold: 0.5, FrameSize: 256, EnergyRef: 0},
	}
	for i, cfg := range invalid {
		if _, err := NewEnergy(cfg); err == nil {
			t.Errorf("Expected error for invalid config %d", i)
		}
	}
}

func TestDefaultEnergyConfig(t *testing.T) {
	cfg := DefaultEnergyConfig()
	if cfg.Threshold != 0.5 {
		t.Errorf("Expected default Threshold 0.5, got %f", cfg.Threshold)
	}
	if cfg.FrameSize != 256 {
		t.Errorf("Expected default FrameSize 256, got %d", cfg.FrameSize)
	}
	if cfg.EnergyRef != 5000.0 {
		t.Errorf("Expected default EnergyRef 5000.0, got %f", cfg.EnergyRef)
	}
}

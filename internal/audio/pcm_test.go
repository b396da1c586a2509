package audio

import (
	"testing"
)

func TestBytesToInt16(t *testing.T) {
	// Little-endian: 0x0100 = 256, 0xFFFF = -1
	data := []byte{0x00, 0x01, 0xFF, 0xFF}
	samples, err := BytesToInt16(data)
	if err != nil {
		t.Fatalf("BytesToInt16() failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(samples))
	}
	if samples[0] != 256 {
		t.Errorf("Expected 256, got %d", samples[0])
	}
	if samples[1] != -1 {
		t.Errorf("Expected -1, got %d", samples[1])
	}
}

func TestBytesToInt16_OddLength(t *testing.T) {
	if _, err := BytesToInt16([]byte{0x00, 0x01, 0xFF}); err == nil {
		t.Error("Expected error for odd-length input")
	}
}

func TestBytesToInt16_Empty(t *testing.T) {
	samples, err := BytesToInt16(nil)
	if err != nil {
		t.Fatalf("BytesToInt16() failed: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("Expected 0 samples, got %d", len(samples))
	}
}

func TestResample_SameRate(t *testing.T) {
	samples := []int16{1, 2, 3, 4}
	output := Resample(samples, 16000, 16000)
	if len(output) != 4 {
		t.Errorf("Expected unchanged length, got %d", len(output))
	}
}

func TestResample_Downsample(t *testing.T) {
	samples := make([]int16, 441)
	output := Resample(samples, 44100, 16000)
	expected := int(float64(441) * 16000.0 / 44100.0)
	if len(output) != expected {
		t.Errorf("Expected %d samples, got %d", expected, len(output))
	}
}

func TestResample_Upsample(t *testing.T) {
	samples := []int16{0, 100, 200, 300}
	output := Resample(samples, 8000, 16000)
	if len(output) != 8 {
		t.Fatalf("Expected 8 samples, got %d", len(output))
	}
	// Interpolated midpoints land between neighboring inputs
	if output[1] < 0 || output[1] > 100 {
		t.Errorf("Expected interpolated sample in [0, 100], got %d", output[1])
	}
}

func TestCalculateRMS(t *testing.T) {
	// Expected RMS: sqrt((1000^2 + 1000^2 + 2000^2 + 2000^2) / 4)
	samples := []int16{1000, -1000, 2000, -2000}
	rms := CalculateRMS(samples)

	expected := 1581.14 // Approximate
	tolerance := 1.0
	if rms < expected-tolerance || rms > expected+tolerance {
		t.Errorf("Expected RMS around %.2f, got %.2f", expected, rms)
	}
}

func TestCalculateRMS_Empty(t *testing.T) {
	if rms := CalculateRMS(nil); rms != 0.0 {
		t.Errorf("Expected RMS 0 for empty input, got %f", rms)
	}
}

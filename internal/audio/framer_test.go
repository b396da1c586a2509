package audio

import (
	"testing"
)

func TestFramer_ExactFrames(t *testing.T) {
	f := NewFramer(4)
	f.Write([]int16{1, 2, 3, 4, 5, 6, 7, 8})

	frame, ok := f.Next()
	if !ok {
		t.Fatal("Expected a frame")
	}
	if len(frame) != 4 || frame[0] != 1 || frame[3] != 4 {
		t.Errorf("Unexpected first frame: %v", frame)
	}

	frame, ok = f.Next()
	if !ok {
		t.Fatal("Expected a second frame")
	}
	if frame[0] != 5 || frame[3] != 8 {
		t.Errorf("Unexpected second frame: %v", frame)
	}

	if _, ok = f.Next(); ok {
		t.Error("Expected no further frames")
	}
}

func TestFramer_PartialCarryover(t *testing.T) {
	f := NewFramer(4)

	f.Write([]int16{1, 2, 3})
	if _, ok := f.Next(); ok {
		t.Error("Expected no frame with only 3 samples pending")
	}
	if f.Pending() != 3 {
		t.Errorf("Expected 3 pending samples, got %d", f.Pending())
	}

	f.Write([]int16{4, 5})
	frame, ok := f.Next()
	if !ok {
		t.Fatal("Expected a frame after remainder filled")
	}
	if frame[0] != 1 || frame[3] != 4 {
		t.Errorf("Unexpected frame: %v", frame)
	}
	if f.Pending() != 1 {
		t.Errorf("Expected 1 pending sample, got %d", f.Pending())
	}
}

func TestFramer_FrameIsCopy(t *testing.T) {
	f := NewFramer(2)
	f.Write([]int16{1, 2, 3, 4})

	frame, _ := f.Next()
	frame[0] = 99

	next, _ := f.Next()
	if next[0] != 3 {
		t.Errorf("Expected pending samples untouched, got %v", next)
	}
}

func TestFramer_Clear(t *testing.T) {
	f := NewFramer(4)
	f.Write([]int16{1, 2, 3, 4, 5})

	f.Clear()
	if f.Pending() != 0 {
		t.Errorf("Expected 0 pending after clear, got %d", f.Pending())
	}
	if _, ok := f.Next(); ok {
		t.Error("Expected no frames after clear")
	}
}

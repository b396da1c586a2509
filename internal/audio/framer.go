package audio

import (
	"sync"
)

// Framer accumulates arbitrarily-sized sample chunks and yields fixed-size
// frames. Incoming network chunks rarely align with the analysis hop size,
// so the remainder is carried over between writes.
type Framer struct {
	frameSize int
	pending   []int16
	mu        sync.Mutex
}

// NewFramer creates a framer that emits frames of frameSize samples
func NewFramer(frameSize int) *Framer {
	return &Framer{
		frameSize: frameSize,
		pending:   make([]int16, 0, frameSize*4),
	}
}

// Write appends samples to the pending buffer
func (f *Framer) Write(samples []int16) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pending = append(f.pending, samples...)
}

// Next returns the next complete frame, or false if fewer than frameSize
// samples are pending. The returned slice is a copy and safe to retain.
func (f *Framer) Next() ([]int16, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.pending) < f.frameSize {
		return nil, false
	}

	frame := make([]int16, f.frameSize)
	copy(frame, f.pending[:f.frameSize])
	f.pending = f.pending[f.frameSize:]
	return frame, true
}

// Pending returns the number of samples not yet emitted as a frame
func (f *Framer) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// Clear discards any buffered samples
func (f *Framer) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = f.pending[:0]
}

// Package classifier provides the per-frame speech classification boundary.
// Implementations take one fixed-size frame of 16 kHz mono PCM samples and
// return a speech probability plus a boolean decision.
package classifier

// Result is the classification output for a single audio frame.
type Result struct {
	// Probability is the speech probability in [0, 1]
	Probability float64 `json:"probability"`

	// IsSpeech is the thresholded decision for this frame
	IsSpeech bool `json:"is_speech"`
}

// Classifier classifies fixed-size audio frames. Implementations may hold a
// native resource; callers must Close when done.
type Classifier interface {
	// Classify classifies one frame. The frame length must match the
	// classifier's configured frame size.
	Classify(frame []int16) (Result, error)

	// Close releases any underlying resources
	Close() error
}

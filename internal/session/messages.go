// Package session implements the service's analysis ingress: a WebSocket
// stream that feeds audio through the classifier and segmentation engine,
// and an HTTP endpoint for batch pause analysis over precomputed results.
package session

import (
	"github.com/voicelab/speech-segmenter/internal/segmentation"
)

// Message is the JSON envelope exchanged over the analysis WebSocket.
// Clients send "start", optional "reset", then "stop"; audio goes in binary
// frames between start and stop. The server sends "started", one "event" per
// segmentation event, a final "summary", and "error" on failures.
type Message struct {
	Event string `json:"event"`

	// Client -> server
	Start *StartParams `json:"start,omitempty"`

	// Server -> client
	SessionID         string              `json:"session_id,omitempty"`
	FrameDuration     float64             `json:"frame_duration,omitempty"`
	SegmentationEvent *segmentation.Event `json:"segmentation_event,omitempty"`
	Summary           *Summary            `json:"summary,omitempty"`
	Error             string              `json:"error,omitempty"`
}

// StartParams overrides the server's default segmentation parameters for one
// session. Zero values fall back to the server configuration.
type StartParams struct {
	HopSize           int      `json:"hop_size,omitempty"`
	Threshold         *float64 `json:"threshold,omitempty"`
	MinPauseDuration  *float64 `json:"min_pause_duration,omitempty"`
	LongPauseDuration *float64 `json:"long_pause_duration,omitempty"`
	MinSpeechDuration *float64 `json:"min_speech_duration,omitempty"`
	EnergyRef         *float64 `json:"energy_ref,omitempty"`
}

// Summary reports the whole session after a stop: the batch pause intervals
// and coarse segment labeling over every frame received.
type Summary struct {
	Frames    int                     `json:"frames"`
	Duration  float64                 `json:"duration"`
	Intervals []segmentation.Interval `json:"intervals"`
	Segments  []segmentation.Segment  `json:"segments"`
}

// Package segmentation turns a stream of per-frame speech classifications
// into higher-level speech/pause structure. The streaming Engine applies
// hysteresis and emits discrete events; FindPauses and Segments analyze a
// complete results buffer after the fact.
package segmentation

import (
	"fmt"

	"github.com/voicelab/speech-segmenter/internal/classifier"
)

// SampleRate is the fixed analysis sample rate in Hz. Classification results
// fed to the engine must come from audio at this rate.
const SampleRate = 16000

// EventType identifies a segmentation event
type EventType string

const (
	// EventSpeechStarted fires when a speech run survives the hysteresis window
	EventSpeechStarted EventType = "speech_started"

	// EventSpeechEnded fires when silence within a speech episode reaches the
	// long-pause threshold; Duration is the episode's speech duration
	EventSpeechEnded EventType = "speech_ended"

	// EventPauseDetected fires once per silence run when the accumulated
	// silence first reaches the minimum pause duration
	EventPauseDetected EventType = "pause_detected"

	// EventLongPauseDetected fires immediately after EventSpeechEnded;
	// Duration is the accumulated silence at that point
	EventLongPauseDetected EventType = "long_pause_detected"
)

// Event is a segmentation event. Time is the engine clock at emission;
// Duration is the speech or silence duration the event reports (zero for
// EventSpeechStarted).
type Event struct {
	Type     EventType `json:"type"`
	Time     float64   `json:"time"`
	Duration float64   `json:"duration,omitempty"`
}

// EventSink receives events synchronously, in emission order, from the same
// goroutine that calls ProcessFrame. The engine never spawns goroutines.
type EventSink func(Event)

// Config holds segmentation parameters. Set once at construction; immutable
// thereafter. All durations are in seconds.
type Config struct {
	// Threshold is the speech probability threshold. It is informational to
	// the engine - thresholding happens in the classifier - but is carried
	// here so one config describes a full analysis session.
	Threshold float64

	// HopSize is the frame length in samples; with SampleRate it fixes the
	// frame duration (256 -> 16ms)
	HopSize int

	// MinPauseDuration is the silence needed before a pause is reported
	MinPauseDuration float64

	// LongPauseDuration is the silence that ends a speech episode. Callers
	// normally keep this >= MinPauseDuration; the engine does not enforce it.
	LongPauseDuration float64

	// MinSpeechDuration is the consecutive speech needed before a speech
	// episode is confirmed
	MinSpeechDuration float64
}

// DefaultConfig returns the default segmentation configuration
func DefaultConfig() Config {
	return Config{
		Threshold:         0.5,
		HopSize:           256,
		MinPauseDuration:  0.3,
		LongPauseDuration: 1.0,
		MinSpeechDuration: 0.1,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if c.HopSize <= 0 {
		return fmt.Errorf("hop size must be positive, got %d", c.HopSize)
	}
	if c.MinPauseDuration < 0 {
		return fmt.Errorf("min pause duration must be non-negative, got %f", c.MinPauseDuration)
	}
	if c.LongPauseDuration < 0 {
		return fmt.Errorf("long pause duration must be non-negative, got %f", c.LongPauseDuration)
	}
	if c.MinSpeechDuration < 0 {
		return fmt.Errorf("min speech duration must be non-negative, got %f", c.MinSpeechDuration)
	}
	return nil
}

// FrameDuration returns the duration of one frame in seconds
func (c Config) FrameDuration() float64 {
	return float64(c.HopSize) / float64(SampleRate)
}

// Engine is the streaming pause/speech segmentation state machine. It assumes
// one ProcessFrame call per frame in time order; each call advances the clock
// by exactly one frame duration.
//
// An Engine is not safe for concurrent use. Callers needing parallel analyses
// must use independent instances.
type Engine struct {
	config        Config
	frameDuration float64
	sink          EventSink

	// Mutable state, reset by Reset
	isSpeaking               bool
	speechStartTime          float64
	silenceStartTime         float64
	currentTime              float64
	consecutiveSpeechFrames  int
	consecutiveSilenceFrames int
}

// NewEngine creates a segmentation engine. The sink receives events
// synchronously from ProcessFrame; a nil sink discards events.
func NewEngine(config Config, sink EventSink) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid segmentation config: %w", err)
	}
	if sink == nil {
		sink = func(Event) {}
	}
	return &Engine{
		config:        config,
		frameDuration: config.FrameDuration(),
		sink:          sink,
	}, nil
}

// ProcessFrame consumes one classification result and emits zero or more
// events to the sink. Results must arrive in frame order.
func (e *Engine) ProcessFrame(result classifier.Result) {
	e.currentTime += e.frameDuration

	if result.IsSpeech {
		e.processSpeechFrame()
	} else {
		e.processSilenceFrame()
	}
}

func (e *Engine) processSpeechFrame() {
	e.consecutiveSpeechFrames++
	e.consecutiveSilenceFrames = 0

	if e.isSpeaking {
		return
	}

	minSpeechFrames := int(e.config.MinSpeechDuration / e.frameDuration)
	if e.consecutiveSpeechFrames >= minSpeechFrames {
		e.isSpeaking = true
		// Back-date to the first frame of the qualifying run
		e.speechStartTime = e.currentTime - e.config.MinSpeechDuration
		e.sink(Event{Type: EventSpeechStarted, Time: e.currentTime})
	}
}

func (e *Engine) processSilenceFrame() {
	e.consecutiveSilenceFrames++
	e.consecutiveSpeechFrames = 0

	// Silence outside a speech episode is not tracked
	if !e.isSpeaking {
		return
	}

	if e.consecutiveSilenceFrames == 1 {
		e.silenceStartTime = e.currentTime
	}

	silenceDuration := e.currentTime - e.silenceStartTime

	if silenceDuration >= e.config.LongPauseDuration {
		// The episode is over: flip state first so the remaining silence
		// frames in this run emit nothing further.
		speechDuration := e.silenceStartTime - e.speechStartTime
		e.isSpeaking = false
		e.sink(Event{Type: EventSpeechEnded, Time: e.currentTime, Duration: speechDuration})
		e.sink(Event{Type: EventLongPauseDetected, Time: e.currentTime, Duration: silenceDuration})
	} else if silenceDuration >= e.config.MinPauseDuration {
		// Report only on the frame that first crosses the threshold
		if silenceDuration-e.frameDuration < e.config.MinPauseDuration {
			e.sink(Event{Type: EventPauseDetected, Time: e.currentTime, Duration: silenceDuration})
		}
	}
}

// Reset returns the engine to its initial state, keeping the configuration
// and sink. Replaying the same frames after Reset yields the same events.
func (e *Engine) Reset() {
	e.isSpeaking = false
	e.speechStartTime = 0
	e.silenceStartTime = 0
	e.currentTime = 0
	e.consecutiveSpeechFrames = 0
	e.consecutiveSilenceFrames = 0
}

// IsSpeaking reports whether the engine is inside a confirmed speech episode
func (e *Engine) IsSpeaking() bool {
	return e.isSpeaking
}

// CurrentTime returns the engine clock in seconds (frames processed times
// frame duration)
func (e *Engine) CurrentTime() float64 {
	return e.currentTime
}

// Config returns the engine's configuration
func (e *Engine) Config() Config {
	return e.config
}

package session

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/voicelab/speech-segmenter/internal/audio"
	"github.com/voicelab/speech-segmenter/internal/classifier"
	"github.com/voicelab/speech-segmenter/internal/config"
	"github.com/voicelab/speech-segmenter/internal/observability"
	"github.com/voicelab/speech-segmenter/internal/segmentation"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Development default; restrict origins when deployed
		return true
	},
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// Session holds the state of one streaming analysis connection. All frame
// processing happens on the read loop goroutine; the engine requires external
// serialization and gets it for free here.
type Session struct {
	conn      *websocket.Conn
	sessionID string

	mu       sync.RWMutex
	isActive bool

	config *config.Config

	// Analysis pipeline, built on the start message
	clf     classifier.Classifier
	engine  *segmentation.Engine
	framer  *audio.Framer
	results []classifier.Result

	logger  zerolog.Logger
	metrics *observability.SessionMetrics
}

// NewSession creates a session for one WebSocket connection
func NewSession(conn *websocket.Conn, cfg *config.Config) *Session {
	sessionID := observability.NewSessionID()

	metrics := observability.NewSessionMetrics(sessionID)
	metrics.RecordSessionStart()

	return &Session{
		conn:      conn,
		sessionID: sessionID,
		isActive:  true,
		config:    cfg,
		logger:    observability.WithSessionID(sessionID),
		metrics:   metrics,
	}
}

// HandleStreamWS is the entry point for streaming analysis connections
func HandleStreamWS(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger := observability.GetLogger()
			logger.Error().Err(err).Msg("Failed to upgrade connection to WebSocket")
			return
		}
		defer conn.Close()

		session := NewSession(conn, cfg)
		session.logger.Info().Msg("Analysis session connected")

		session.run()
	}
}

// run processes incoming messages until the client stops or disconnects
func (s *Session) run() {
	defer func() {
		if s.clf != nil {
			if err := s.clf.Close(); err != nil {
				s.logger.Error().Err(err).Msg("Error closing classifier")
			}
		}
		s.metrics.RecordSessionEnd()
		s.logger.Info().Msg("Analysis session ended")
	}()

	for s.IsActive() {
		msgType, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn().Err(err).Msg("WebSocket read error")
			}
			s.setActive(false)
			return
		}

		switch msgType {
		case websocket.BinaryMessage:
			s.handleAudio(message)
		case websocket.TextMessage:
			if done := s.handleControl(message); done {
				return
			}
		}
	}
}

// handleControl processes a JSON control message; returns true when the
// session should end
func (s *Session) handleControl(message []byte) bool {
	var msg Message
	if err := json.Unmarshal(message, &msg); err != nil {
		s.logger.Error().Err(err).Msg("Failed to parse control message")
		s.sendError("malformed control message")
		return false
	}

	switch msg.Event {
	case "start":
		s.handleStart(msg.Start)
		return false

	case "reset":
		if s.engine != nil {
			s.engine.Reset()
			s.framer.Clear()
			s.results = nil
			s.logger.Info().Msg("Session reset")
		}
		return false

	case "stop":
		s.logger.Info().Int("frames", len(s.results)).Msg("Session stopped")
		s.sendSummary()
		s.setActive(false)
		return true

	default:
		s.logger.Warn().Str("event", msg.Event).Msg("Unknown control event")
		return false
	}
}

// handleStart builds the analysis pipeline from server defaults plus any
// per-session overrides
func (s *Session) handleStart(params *StartParams) {
	segCfg, energyCfg := s.resolveConfigs(params)

	clf, err := classifier.NewEnergy(energyCfg)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create classifier")
		s.metrics.RecordError("classifier_init", "session")
		s.sendError(err.Error())
		return
	}

	engine, err := segmentation.NewEngine(segCfg, s.emitEvent)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create segmentation engine")
		s.metrics.RecordError("engine_init", "session")
		s.sendError(err.Error())
		clf.Close()
		return
	}

	s.clf = clf
	s.engine = engine
	s.framer = audio.NewFramer(segCfg.HopSize)
	s.results = nil

	s.logger.Info().
		Int("hop_size", segCfg.HopSize).
		Float64("threshold", segCfg.Threshold).
		Float64("min_pause", segCfg.MinPauseDuration).
		Float64("long_pause", segCfg.LongPauseDuration).
		Float64("min_speech", segCfg.MinSpeechDuration).
		Msg("Session started")

	s.send(Message{
		Event:         "started",
		SessionID:     s.sessionID,
		FrameDuration: segCfg.FrameDuration(),
	})
}

// resolveConfigs merges server defaults with per-session overrides
func (s *Session) resolveConfigs(params *StartParams) (segmentation.Config, classifier.EnergyConfig) {
	segCfg := segmentation.Config{
		Threshold:         s.config.Threshold,
		HopSize:           s.config.HopSize,
		MinPauseDuration:  s.config.MinPauseDuration,
		LongPauseDuration: s.config.LongPauseDuration,
		MinSpeechDuration: s.config.MinSpeechDuration,
	}
	energyRef := s.config.EnergyRef

	if params != nil {
		if params.HopSize > 0 {
			segCfg.HopSize = params.HopSize
		}
		if params.Threshold != nil {
			segCfg.Threshold = *params.Threshold
		}
		if params.MinPauseDuration != nil {
			segCfg.MinPauseDuration = *params.MinPauseDuration
		}
		if params.LongPauseDuration != nil {
			segCfg.LongPauseDuration = *params.LongPauseDuration
		}
		if params.MinSpeechDuration != nil {
			segCfg.MinSpeechDuration = *params.MinSpeechDuration
		}
		if params.EnergyRef != nil {
			energyRef = *params.EnergyRef
		}
	}

	energyCfg := classifier.EnergyConfig{
		Threshold: segCfg.Threshold,
		FrameSize: segCfg.HopSize,
		EnergyRef: energyRef,
	}
	return segCfg, energyCfg
}

// handleAudio frames a binary PCM chunk and feeds complete frames through the
// classifier and engine
func (s *Session) handleAudio(data []byte) {
	if s.engine == nil {
		s.sendError("audio received before start")
		return
	}

	s.metrics.RecordAudioBytes(int64(len(data)))

	samples, err := audio.BytesToInt16(data)
	if err != nil {
		s.logger.Error().Err(err).Msg("Malformed PCM chunk")
		s.metrics.RecordError("pcm_decode", "session")
		s.sendError(err.Error())
		return
	}

	s.framer.Write(samples)
	for {
		frame, ok := s.framer.Next()
		if !ok {
			break
		}

		result, err := s.clf.Classify(frame)
		if err != nil {
			s.logger.Error().Err(err).Msg("Classification failed")
			s.metrics.RecordError("classify", "session")
			s.sendError(err.Error())
			return
		}

		s.metrics.RecordFrame()
		s.results = append(s.results, result)
		s.engine.ProcessFrame(result)
	}
}

// emitEvent is the engine sink: every event goes to the client in order
func (s *Session) emitEvent(ev segmentation.Event) {
	s.metrics.RecordEvent(string(ev.Type))
	s.logger.Debug().
		Str("type", string(ev.Type)).
		Float64("time", ev.Time).
		Float64("duration", ev.Duration).
		Msg("Segmentation event")
	s.send(Message{Event: "event", SegmentationEvent: &ev})
}

// sendSummary runs the batch analyses over everything received and reports
func (s *Session) sendSummary() {
	if s.engine == nil {
		return
	}

	summary := &Summary{
		Frames:    len(s.results),
		Duration:  float64(len(s.results)) * s.engine.Config().FrameDuration(),
		Intervals: s.engine.FindPauses(s.results),
		Segments:  s.engine.Segments(s.results),
	}
	s.send(Message{Event: "summary", Summary: summary})
}

func (s *Session) send(msg Message) {
	if err := s.conn.WriteJSON(msg); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write message")
		s.metrics.RecordError("ws_write", "session")
	}
}

func (s *Session) sendError(message string) {
	s.send(Message{Event: "error", Error: message})
}

// IsActive returns whether the session is still active
func (s *Session) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isActive
}

func (s *Session) setActive(active bool) {
	s.mu.Lock()
	s.isActive = active
	s.mu.Unlock()
}

// SessionID returns the session's correlation ID
func (s *Session) SessionID() string {
	return s.sessionID
}

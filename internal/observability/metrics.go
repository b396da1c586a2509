package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Session metrics
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "segmenter_active_sessions",
		Help: "Number of active analysis sessions",
	})

	totalSessions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "segmenter_sessions_total",
		Help: "Total number of analysis sessions processed",
	})

	sessionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "segmenter_session_duration_seconds",
		Help:    "Duration of analysis sessions in seconds",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
	})

	// Frame metrics
	framesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "segmenter_frames_total",
		Help: "Total number of classified frames",
	})

	audioBytesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "segmenter_audio_bytes_total",
		Help: "Total audio bytes received",
	})

	// Segmentation event metrics
	eventsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segmenter_events_total",
		Help: "Total segmentation events emitted",
	}, []string{"type"})

	// Batch analysis metrics
	batchAnalyses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segmenter_batch_analyses_total",
		Help: "Total batch pause analyses",
	}, []string{"status"})

	batchLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "segmenter_batch_latency_seconds",
		Help:    "Batch pause analysis latency in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
	})

	// Error metrics
	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segmenter_errors_total",
		Help: "Total number of errors",
	}, []string{"type", "component"})
)

// SessionMetrics tracks metrics for a single analysis session
type SessionMetrics struct {
	sessionID string
	startTime time.Time
}

// NewSessionMetrics creates a metrics tracker for one session
func NewSessionMetrics(sessionID string) *SessionMetrics {
	return &SessionMetrics{
		sessionID: sessionID,
		startTime: time.Now(),
	}
}

// RecordSessionStart records the start of a session
func (m *SessionMetrics) RecordSessionStart() {
	activeSessions.Inc()
	totalSessions.Inc()
}

// RecordSessionEnd records the end of a session
func (m *SessionMetrics) RecordSessionEnd() {
	activeSessions.Dec()
	sessionDuration.Observe(time.Since(m.startTime).Seconds())
}

// RecordFrame records one classified frame
func (m *SessionMetrics) RecordFrame() {
	framesProcessed.Inc()
}

// RecordAudioBytes records audio bytes received
func (m *SessionMetrics) RecordAudioBytes(bytes int64) {
	audioBytesReceived.Add(float64(bytes))
}

// RecordEvent records one emitted segmentation event
func (m *SessionMetrics) RecordEvent(eventType string) {
	eventsEmitted.WithLabelValues(eventType).Inc()
}

// RecordError records an error
func (m *SessionMetrics) RecordError(errorType, component string) {
	errorsTotal.WithLabelValues(errorType, component).Inc()
}

// RecordBatchAnalysis records one batch analysis with its latency
func RecordBatchAnalysis(success bool, latency time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	batchAnalyses.WithLabelValues(status).Inc()
	if success {
		batchLatency.Observe(latency.Seconds())
	}
}

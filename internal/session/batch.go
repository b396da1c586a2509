package session

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/voicelab/speech-segmenter/internal/classifier"
	"github.com/voicelab/speech-segmenter/internal/config"
	"github.com/voicelab/speech-segmenter/internal/observability"
	"github.com/voicelab/speech-segmenter/internal/segmentation"
)

// BatchRequest is the body of a POST /analyze call: a complete ordered
// buffer of classification results plus optional parameter overrides.
type BatchRequest struct {
	Results          []classifier.Result `json:"results"`
	HopSize          int                 `json:"hop_size,omitempty"`
	MinPauseDuration *float64            `json:"min_pause_duration,omitempty"`
}

// BatchResponse carries the pause intervals and segment labeling
type BatchResponse struct {
	FrameDuration float64                 `json:"frame_duration"`
	Intervals     []segmentation.Interval `json:"intervals"`
	Segments      []segmentation.Segment  `json:"segments"`
}

// HandleBatchAnalyze runs batch pause analysis over a posted results buffer
func HandleBatchAnalyze(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		start := time.Now()
		logger := observability.GetLogger()

		var req BatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error().Err(err).Msg("Failed to decode batch request")
			observability.RecordBatchAnalysis(false, 0)
			http.Error(w, "malformed request body", http.StatusBadRequest)
			return
		}

		segCfg := segmentation.Config{
			Threshold:         cfg.Threshold,
			HopSize:           cfg.HopSize,
			MinPauseDuration:  cfg.MinPauseDuration,
			LongPauseDuration: cfg.LongPauseDuration,
			MinSpeechDuration: cfg.MinSpeechDuration,
		}
		if req.HopSize > 0 {
			segCfg.HopSize = req.HopSize
		}
		if req.MinPauseDuration != nil {
			segCfg.MinPauseDuration = *req.MinPauseDuration
		}

		engine, err := segmentation.NewEngine(segCfg, nil)
		if err != nil {
			logger.Error().Err(err).Msg("Invalid batch analysis config")
			observability.RecordBatchAnalysis(false, 0)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := BatchResponse{
			FrameDuration: segCfg.FrameDuration(),
			Intervals:     engine.FindPauses(req.Results),
			Segments:      engine.Segments(req.Results),
		}

		observability.RecordBatchAnalysis(true, time.Since(start))
		logger.Info().
			Int("frames", len(req.Results)).
			Int("intervals", len(resp.Intervals)).
			Msg("Batch analysis completed")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

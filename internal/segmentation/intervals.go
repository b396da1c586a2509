package segmentation

import (
	"github.com/voicelab/speech-segmenter/internal/classifier"
)

// Interval is one silence run found by FindPauses. Times are in seconds from
// the start of the results buffer.
type Interval struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

// FindPauses scans a complete, ordered results buffer and returns every
// maximal silence run at least MinPauseDuration long, in start order.
//
// Unlike the streaming engine this applies no hysteresis: speech runs are not
// filtered by MinSpeechDuration, and a sub-threshold silence run is simply
// dropped from the output without affecting its neighbors. It does not touch
// streaming state and emits no events.
func (e *Engine) FindPauses(results []classifier.Result) []Interval {
	frameDuration := e.frameDuration
	minPause := e.config.MinPauseDuration

	var intervals []Interval
	pauseOpen := false
	var pauseStart float64

	for i, result := range results {
		t := float64(i) * frameDuration

		if !result.IsSpeech {
			if !pauseOpen {
				pauseOpen = true
				pauseStart = t
			}
			continue
		}

		if pauseOpen {
			if t-pauseStart >= minPause {
				intervals = append(intervals, Interval{
					Start:    pauseStart,
					End:      t,
					Duration: t - pauseStart,
				})
			}
			pauseOpen = false
		}
	}

	// Trailing silence closes at the end of the buffer
	if pauseOpen {
		end := float64(len(results)) * frameDuration
		if end-pauseStart >= minPause {
			intervals = append(intervals, Interval{
				Start:    pauseStart,
				End:      end,
				Duration: end - pauseStart,
			})
		}
	}

	return intervals
}

package segmentation

import (
	"github.com/voicelab/speech-segmenter/internal/classifier"
)

// Segment is a contiguous run of same-label frames. Times are in seconds from
// the start of the results buffer.
type Segment struct {
	IsSpeech bool    `json:"is_speech"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
}

// Segments partitions a results buffer into contiguous speech/silence runs
// with no duration filtering. A coarse companion to FindPauses, useful for
// visualization. Empty input yields nil; a uniform buffer yields one segment
// spanning the whole duration.
func (e *Engine) Segments(results []classifier.Result) []Segment {
	if len(results) == 0 {
		return nil
	}

	frameDuration := e.frameDuration

	var segments []Segment
	current := results[0].IsSpeech
	start := 0.0

	for i := 1; i < len(results); i++ {
		if results[i].IsSpeech == current {
			continue
		}
		t := float64(i) * frameDuration
		segments = append(segments, Segment{IsSpeech: current, Start: start, End: t})
		current = results[i].IsSpeech
		start = t
	}

	segments = append(segments, Segment{
		IsSpeech: current,
		Start:    start,
		End:      float64(len(results)) * frameDuration,
	})

	return segments
}

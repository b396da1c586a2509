// Command analyze runs pause segmentation over a WAV file and prints the
// detected events, pause intervals, and speech/silence segments.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/voicelab/speech-segmenter/internal/audio"
	"github.com/voicelab/speech-segmenter/internal/classifier"
	"github.com/voicelab/speech-segmenter/internal/segmentation"
)

type report struct {
	File          string                  `json:"file"`
	Frames        int                     `json:"frames"`
	Duration      float64                 `json:"duration"`
	Events        []segmentation.Event    `json:"events"`
	Intervals     []segmentation.Interval `json:"intervals"`
	Segments      []segmentation.Segment  `json:"segments"`
	FrameDuration float64                 `json:"frame_duration"`
}

func main() {
	var (
		hopSize   = flag.Int("hop", 256, "frame hop size in samples")
		threshold = flag.Float64("threshold", 0.5, "speech probability threshold")
		minPause  = flag.Float64("min-pause", 0.3, "minimum reportable pause in seconds")
		longPause = flag.Float64("long-pause", 1.0, "pause that ends a speech episode, in seconds")
		minSpeech = flag.Float64("min-speech", 0.1, "speech required to confirm an episode, in seconds")
		energyRef = flag.Float64("energy-ref", 5000.0, "RMS amplitude mapped to probability 1.0")
		asJSON    = flag.Bool("json", false, "emit the full report as JSON")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file.wav>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	samples, err := decodeWAV(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", path, err)
		os.Exit(1)
	}

	clf, err := classifier.NewEnergy(classifier.EnergyConfig{
		Threshold: *threshold,
		FrameSize: *hopSize,
		EnergyRef: *energyRef,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid classifier config: %v\n", err)
		os.Exit(1)
	}
	defer clf.Close()

	var events []segmentation.Event
	engine, err := segmentation.NewEngine(segmentation.Config{
		Threshold:         *threshold,
		HopSize:           *hopSize,
		MinPauseDuration:  *minPause,
		LongPauseDuration: *longPause,
		MinSpeechDuration: *minSpeech,
	}, func(ev segmentation.Event) {
		events = append(events, ev)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid segmentation config: %v\n", err)
		os.Exit(1)
	}

	framer := audio.NewFramer(*hopSize)
	framer.Write(samples)

	var results []classifier.Result
	for {
		frame, ok := framer.Next()
		if !ok {
			break
		}
		result, err := clf.Classify(frame)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Classification failed: %v\n", err)
			os.Exit(1)
		}
		results = append(results, result)
		engine.ProcessFrame(result)
	}

	rep := report{
		File:          path,
		Frames:        len(results),
		Duration:      engine.CurrentTime(),
		Events:        events,
		Intervals:     engine.FindPauses(results),
		Segments:      engine.Segments(results),
		FrameDuration: engine.Config().FrameDuration(),
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode report: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printReport(rep)
}

// decodeWAV reads a WAV file, mixes it down to mono, and resamples to the
// engine's sample rate
func decodeWAV(path string) ([]int16, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding PCM: %w", err)
	}

	samples := mixdown(buf)
	if buf.Format.SampleRate != segmentation.SampleRate {
		samples = audio.Resample(samples, buf.Format.SampleRate, segmentation.SampleRate)
	}
	return samples, nil
}

// mixdown averages interleaved channels into mono int16 samples
func mixdown(buf *goaudio.IntBuffer) []int16 {
	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	frames := len(buf.Data) / channels
	samples := make([]int16, frames)
	for i := 0; i < frames; i++ {
		sum := 0
		for c := 0; c < channels; c++ {
			sum += buf.Data[i*channels+c]
		}
		samples[i] = int16(sum / channels)
	}
	return samples
}

func printReport(rep report) {
	fmt.Printf("%s: %d frames, %.3fs at %.0fms per frame\n",
		rep.File, rep.Frames, rep.Duration, rep.FrameDuration*1000)

	fmt.Printf("\nEvents (%d):\n", len(rep.Events))
	for _, ev := range rep.Events {
		fmt.Printf("  %8.3fs  %-20s duration=%.3fs\n", ev.Time, ev.Type, ev.Duration)
	}

	fmt.Printf("\nPause intervals (%d):\n", len(rep.Intervals))
	for _, iv := range rep.Intervals {
		fmt.Printf("  %8.3fs - %8.3fs  (%.3fs)\n", iv.Start, iv.End, iv.Duration)
	}

	fmt.Printf("\nSegments (%d):\n", len(rep.Segments))
	for _, seg := range rep.Segments {
		label := "silence"
		if seg.IsSpeech {
			label = "speech"
		}
		fmt.Printf("  %8.3fs - %8.3fs  %s\n", seg.Start, seg.End, label)
	}
}

// Command intona analyzes the intonation of a recorded utterance and prints
// the result as JSON. It accepts a WAV file or headerless 16-bit
// little-endian mono PCM.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/intona-audio/intona/intonation"
	"github.com/intona-audio/intona/logging"
	"github.com/intona-audio/intona/transcode"
)

var (
	inputPath string
	rate      int
	pretty    bool
	debug     bool
)

func init() {
	flag.StringVar(&inputPath, "input", "", "Path to the recording (.wav, or raw s16le PCM)")
	flag.IntVar(&rate, "rate", 16000, "Sample rate in Hz (used for raw PCM input)")
	flag.BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
}

func main() {
	flag.Parse()

	if debug {
		logging.SetLevel(logging.DebugLevel)
	} else {
		// Keep stdout clean for the JSON result
		logging.SetLevel(logging.WarnLevel)
	}

	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: intona -input recording.wav [-rate 16000] [-pretty]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	samples, sampleRate, err := loadRecording(inputPath)
	if err != nil {
		logging.Error(err, "failed to load recording")
		os.Exit(1)
	}

	cfg := intonation.DefaultConfig()
	cfg.SampleRate = sampleRate

	result := intonation.NewAnalyzer(cfg).AnalyzeWaveform(samples)

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		logging.Error(err, "failed to encode result")
		os.Exit(1)
	}

	fmt.Println(string(out))
}

// loadRecording reads a WAV or raw PCM file into normalized mono samples
func loadRecording(path string) ([]float64, int, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		data, err := transcode.DecodeWAVFile(path)
		if err != nil {
			return nil, 0, err
		}
		return data.Samples, data.SampleRate, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading pcm file: %w", err)
	}
	samples, err := transcode.PCM16ToFloat64(raw)
	if err != nil {
		return nil, 0, err
	}
	return samples, rate, nil
}

package intonation

import (
	"github.com/intona-audio/intona/algorithms/pitch"
)

// Config collects every tunable of the analysis pipeline in one place so
// tests can exercise boundary values directly instead of chasing literals
// through the code.
type Config struct {
	// SampleRate of the incoming waveform in Hz
	SampleRate int `json:"sample_rate"`

	// Analysis window geometry. A hop of half the window implies 50%
	// overlap between consecutive windows.
	WindowSize int `json:"window_size"`
	HopSize    int `json:"hop_size"`

	// YinThreshold is the CMNDF acceptance threshold of the per-window
	// pitch estimator
	YinThreshold float64 `json:"yin_threshold"`

	// StrictBand gates the first extraction pass; RelaxedBand gates the
	// retry pass when the strict pass yields fewer than MinPitchCount
	// estimates
	StrictBand  pitch.Band `json:"strict_band"`
	RelaxedBand pitch.Band `json:"relaxed_band"`

	// MinPitchCount is the smallest contour the feature statistics are
	// defined for; below it the analysis reports insufficient data
	MinPitchCount int `json:"min_pitch_count"`

	// QuietPeak and GainFactor control amplitude normalization: signals
	// whose peak is below QuietPeak are multiplied by GainFactor and
	// hard-clipped to [-1, 1]
	QuietPeak  float64 `json:"quiet_peak"`
	GainFactor float64 `json:"gain_factor"`

	// Scoring holds the rubric breakpoints
	Scoring ScoringConfig `json:"scoring"`
}

// ScoringConfig contains the bucket breakpoints of the scoring rubric.
// Bucket membership uses half-open intervals: a feature equal to a
// breakpoint falls in the upper bucket.
type ScoringConfig struct {
	// Pitch range (Hz): narrow < RangeModerateHz <= moderate < RangeWideHz <= wide
	RangeModerateHz float64 `json:"range_moderate_hz"`
	RangeWideHz     float64 `json:"range_wide_hz"`

	// Standard deviation (Hz): flat < StdDevLow <= natural < StdDevHigh <= shaky.
	// Deliberately non-monotonic in points: moderate variability scores
	// highest, heavy fluctuation scores lower, near-flat lowest.
	StdDevLow  float64 `json:"std_dev_low"`
	StdDevHigh float64 `json:"std_dev_high"`

	// End-of-utterance slope (Hz per contour point): falling < SlopeFalling,
	// level in [SlopeFalling, SlopeRising), rising >= SlopeRising
	SlopeFalling float64 `json:"slope_falling"`
	SlopeRising  float64 `json:"slope_rising"`
}

// DefaultConfig returns the pipeline defaults: 16 kHz input, 32 ms windows
// with 50% overlap, speech bands of (40, 600) Hz strict and (30, 800) Hz
// relaxed, and the rubric breakpoints the feedback templates were written
// against.
func DefaultConfig() *Config {
	return &Config{
		SampleRate:    16000,
		WindowSize:    512,
		HopSize:       256,
		YinThreshold:  0.15,
		StrictBand:    pitch.Band{MinHz: 40.0, MaxHz: 600.0},
		RelaxedBand:   pitch.Band{MinHz: 30.0, MaxHz: 800.0},
		MinPitchCount: 5,
		QuietPeak:     0.1,
		GainFactor:    3.0,
		Scoring: ScoringConfig{
			RangeModerateHz: 20.0,
			RangeWideHz:     60.0,
			StdDevLow:       10.0,
			StdDevHigh:      40.0,
			SlopeFalling:    -0.1,
			SlopeRising:     0.05,
		},
	}
}

// extractorConfig maps the pipeline configuration onto the contour extractor
func (c *Config) extractorConfig() pitch.ExtractorConfig {
	return pitch.ExtractorConfig{
		SampleRate:       c.SampleRate,
		WindowSize:       c.WindowSize,
		HopSize:          c.HopSize,
		YinThreshold:     c.YinThreshold,
		StrictBand:       c.StrictBand,
		RelaxedBand:      c.RelaxedBand,
		MinContourLength: c.MinPitchCount,
	}
}

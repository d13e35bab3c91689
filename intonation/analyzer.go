// Package intonation analyzes the pitch dynamics of a recorded spoken
// utterance: how much the speaker's pitch varied and how it trended toward
// the end, reduced to a 0-100 score with human-readable feedback.
//
// The pipeline is raw waveform -> amplitude normalization -> windowed pitch
// contour extraction with adaptive retry -> scalar feature statistics ->
// heuristic score synthesis. Every stage is a pure, synchronous
// transformation; an Analyzer retains no state between calls and is safe for
// concurrent use across independent requests.
package intonation

import (
	"github.com/intona-audio/intona/algorithms/common"
	"github.com/intona-audio/intona/algorithms/pitch"
	"github.com/intona-audio/intona/algorithms/stats"
	"github.com/intona-audio/intona/logging"
	"github.com/intona-audio/intona/transcode"
)

// Analyzer runs the intonation analysis pipeline. Construct once, reuse
// across requests.
type Analyzer struct {
	cfg    *Config
	logger logging.Logger

	normalizer *common.GainNormalizer
	extractor  *pitch.Extractor
}

// NewAnalyzer creates an analyzer with the given configuration, logging to
// the package-global logger. Passing nil uses DefaultConfig.
func NewAnalyzer(cfg *Config) *Analyzer {
	return NewAnalyzerWithLogger(cfg, logging.GetGlobalLogger())
}

// NewAnalyzerWithLogger creates an analyzer with an injected log sink, so
// hosting services and tests control where the pipeline's notices go
func NewAnalyzerWithLogger(cfg *Config, logger logging.Logger) *Analyzer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}

	return &Analyzer{
		cfg:        cfg,
		logger:     logger.WithFields(logging.Fields{"component": "intonation_analyzer"}),
		normalizer: common.NewGainNormalizer(cfg.QuietPeak, cfg.GainFactor),
		extractor:  pitch.NewExtractor(cfg.extractorConfig()),
	}
}

// AnalyzePCM16 analyzes a mono utterance delivered as 16-bit little-endian
// PCM at the configured sample rate. The only error case is malformed PCM
// framing; "cannot characterize pitch" is reported as data in the result,
// not as an error.
func (a *Analyzer) AnalyzePCM16(data []byte) (*AnalysisResult, error) {
	samples, err := transcode.PCM16ToFloat64(data)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeWaveform(samples), nil
}

// AnalyzeWaveform analyzes a mono waveform of normalized samples in [-1, 1]
// at the configured sample rate. Always returns a well-formed result.
func (a *Analyzer) AnalyzeWaveform(wave []float64) *AnalysisResult {
	normalized, boosted := a.normalizer.Normalize(wave)
	if boosted {
		a.logger.Info("input level too low for pitch detection, applying gain boost", logging.Fields{
			"peak": common.Peak(wave),
			"gain": a.cfg.GainFactor,
		})
	}

	contour, accepted := a.extractor.Extract(normalized)
	if len(contour) < a.cfg.MinPitchCount {
		a.logger.Warn("insufficient pitch estimates for analysis", logging.Fields{
			"accepted": accepted,
			"required": a.cfg.MinPitchCount,
			"samples":  len(wave),
		})
		return insufficientResult()
	}

	st, err := stats.DescribeContour(contour)
	if err != nil {
		// Unreachable while MinPitchCount >= 2; guard kept so a degenerate
		// config degrades to the insufficient path instead of a panic
		a.logger.Error(err, "contour statistics failed")
		return insufficientResult()
	}

	result := synthesizeScore(a.cfg.Scoring, st)

	a.logger.Debug("intonation analysis complete", logging.Fields{
		"score":       result.Score,
		"pitch_count": st.Count,
		"mean_pitch":  st.Mean,
		"range":       st.Range,
		"std_dev":     st.StdDev,
		"slope":       st.Slope,
	})

	return result
}

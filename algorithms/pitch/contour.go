package pitch

// Band is a frequency acceptance band in Hz. Endpoints are exclusive.
type Band struct {
	MinHz float64 `json:"min_hz"`
	MaxHz float64 `json:"max_hz"`
}

// Contains reports whether f lies strictly inside the band
func (b Band) Contains(f float64) bool {
	return f > b.MinHz && f < b.MaxHz
}

// ExtractorConfig contains parameters for contour extraction
type ExtractorConfig struct {
	SampleRate   int     `json:"sample_rate"`
	WindowSize   int     `json:"window_size"`
	HopSize      int     `json:"hop_size"`
	YinThreshold float64 `json:"yin_threshold"`

	// StrictBand is the acceptance band for the first scan; RelaxedBand is
	// used for the retry scan when the strict scan starves the contour.
	StrictBand  Band `json:"strict_band"`
	RelaxedBand Band `json:"relaxed_band"`

	// MinContourLength is the smallest contour the downstream statistics
	// are defined for. Fewer combined estimates than this yields a nil
	// contour.
	MinContourLength int `json:"min_contour_length"`
}

// DefaultExtractorConfig returns extraction parameters tuned for a single
// adult speaker at 16 kHz: 32 ms windows with 50% overlap, a strict band
// covering normal speaking pitch and a relaxed band that trades precision
// for recall.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		SampleRate:       16000,
		WindowSize:       512,
		HopSize:          256,
		YinThreshold:     0.15,
		StrictBand:       Band{MinHz: 40.0, MaxHz: 600.0},
		RelaxedBand:      Band{MinHz: 30.0, MaxHz: 800.0},
		MinContourLength: 5,
	}
}

// Extractor slides a fixed analysis window across a waveform and produces a
// time-ordered pitch contour with a two-phase acceptance policy.
type Extractor struct {
	cfg       ExtractorConfig
	estimator *Estimator
}

// NewExtractor creates a contour extractor with the given configuration
func NewExtractor(cfg ExtractorConfig) *Extractor {
	return &Extractor{
		cfg:       cfg,
		estimator: NewEstimator(cfg.SampleRate, cfg.YinThreshold),
	}
}

// Extract produces the pitch contour of wave in window-traversal order.
//
// Phase 1 scans with the strict band. When that yields fewer than
// MinContourLength estimates, phase 2 re-runs the identical traversal with
// the relaxed band and appends every accepted estimate to the phase 1
// results. A window rejected by the strict band but accepted by the relaxed
// one therefore appears once; a window accepted by both appears twice. The
// duplication is intentional tolerance loosening, not a bug, and is kept so
// the downstream statistics see exactly what the acceptance policy admitted.
//
// When the combined contour is still shorter than MinContourLength, contour
// is nil and accepted reports how many estimates were gathered.
// Extraction is deterministic: the same waveform always yields the same
// contour.
func (x *Extractor) Extract(wave []float64) (contour []float64, accepted int) {
	contour = x.scan(wave, x.cfg.StrictBand)

	if len(contour) < x.cfg.MinContourLength {
		contour = append(contour, x.scan(wave, x.cfg.RelaxedBand)...)
	}

	if len(contour) < x.cfg.MinContourLength {
		return nil, len(contour)
	}
	return contour, len(contour)
}

// WindowCount returns the number of analysis windows a waveform of n samples
// produces: floor((n-window)/hop)+1 when n >= window, else zero.
func (x *Extractor) WindowCount(n int) int {
	if n < x.cfg.WindowSize {
		return 0
	}
	return (n-x.cfg.WindowSize)/x.cfg.HopSize + 1
}

// scan runs one full window traversal and collects the estimates the band
// accepts, in traversal order
func (x *Extractor) scan(wave []float64, band Band) []float64 {
	var estimates []float64
	for start := 0; start+x.cfg.WindowSize <= len(wave); start += x.cfg.HopSize {
		frame := wave[start : start+x.cfg.WindowSize]

		freq, ok := x.estimator.Estimate(frame)
		if !ok {
			continue
		}
		if band.Contains(freq) {
			estimates = append(estimates, freq)
		}
	}
	return estimates
}

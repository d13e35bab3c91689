package intonation

// AnalysisResult is the value returned to the caller for every analysis.
// Score and Feedback are always present. The numeric fields are populated
// only on a successful analysis (enough voiced windows for statistics); on
// the insufficient-data path they are nil and omitted from JSON, leaving
// exactly {"score":0,"feedback":...} on the wire.
type AnalysisResult struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`

	Range      *float64 `json:"range,omitempty"`      // Pitch range in Hz
	StdDev     *float64 `json:"sd,omitempty"`         // Pitch standard deviation in Hz
	Slope      *float64 `json:"slope,omitempty"`      // End-of-utterance trend, Hz per contour point
	PitchCount *int     `json:"pitchCount,omitempty"` // Accepted pitch estimates
	MeanPitch  *float64 `json:"meanPitch,omitempty"`  // Mean pitch in Hz
}

// Sufficient reports whether the result carries feature statistics
func (r *AnalysisResult) Sufficient() bool {
	return r.PitchCount != nil
}

package intonation

import (
	"strings"

	"github.com/intona-audio/intona/algorithms/stats"
)

// Rubric points per feature bucket. The three contributions are independent
// and summed, then clamped to [0, 100].
const (
	rangeNarrowPoints   = 10
	rangeModeratePoints = 30
	rangeWidePoints     = 40

	stdDevFlatPoints    = 10
	stdDevNaturalPoints = 30
	stdDevShakyPoints   = 20

	slopeFallingPoints = 30
	slopeLevelPoints   = 20
	slopeRisingPoints  = 10

	maxScore = 100
)

// Feedback sentences, one per rubric bucket
const (
	rangeNarrowText   = "Your pitch stayed within a narrow range, which can come across as monotone; try stretching important words higher or lower."
	rangeModerateText = "Your pitch moved through a moderate range, enough variation to keep listeners engaged."
	rangeWideText     = "Your pitch covered a wide range, giving your delivery an expressive, dynamic quality."

	stdDevFlatText    = "Your pitch was very steady throughout, which can sound flat; letting it move more freely will sound more natural."
	stdDevNaturalText = "Your pitch variability sat in a natural, conversational zone."
	stdDevShakyText   = "Your pitch fluctuated heavily from moment to moment; steadier phrasing would sound more controlled."

	slopeFallingText = "Your pitch settled downward toward the end, the confident falling contour of a finished statement."
	slopeLevelText   = "Your pitch held fairly level at the end; letting it fall slightly would give a stronger sense of closure."
	slopeRisingText  = "Your pitch rose toward the end, which can make a statement sound like a question; aim for a gentle fall instead."
)

// insufficientFeedback is the fixed guidance returned when too few voiced
// windows were found to characterize pitch. It must not quote feature values.
const insufficientFeedback = "Not enough voiced speech was detected to analyze your intonation.\n" +
	"Try speaking louder and closer to the microphone.\n" +
	"Record at least three to five seconds of continuous speech.\n" +
	"Check that your microphone is picking up sound correctly."

// synthesizeScore maps contour statistics through the rubric into a score
// and templated feedback
func synthesizeScore(cfg ScoringConfig, st *stats.ContourStats) *AnalysisResult {
	score := 0
	sentences := make([]string, 0, 3)

	switch {
	case st.Range < cfg.RangeModerateHz:
		score += rangeNarrowPoints
		sentences = append(sentences, rangeNarrowText)
	case st.Range < cfg.RangeWideHz:
		score += rangeModeratePoints
		sentences = append(sentences, rangeModerateText)
	default:
		score += rangeWidePoints
		sentences = append(sentences, rangeWideText)
	}

	switch {
	case st.StdDev < cfg.StdDevLow:
		score += stdDevFlatPoints
		sentences = append(sentences, stdDevFlatText)
	case st.StdDev < cfg.StdDevHigh:
		score += stdDevNaturalPoints
		sentences = append(sentences, stdDevNaturalText)
	default:
		score += stdDevShakyPoints
		sentences = append(sentences, stdDevShakyText)
	}

	switch {
	case st.Slope < cfg.SlopeFalling:
		score += slopeFallingPoints
		sentences = append(sentences, slopeFallingText)
	case st.Slope < cfg.SlopeRising:
		score += slopeLevelPoints
		sentences = append(sentences, slopeLevelText)
	default:
		score += slopeRisingPoints
		sentences = append(sentences, slopeRisingText)
	}

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}

	pitchCount := st.Count
	return &AnalysisResult{
		Score:      score,
		Feedback:   strings.TrimSpace(strings.Join(sentences, " ")),
		Range:      ptr(st.Range),
		StdDev:     ptr(st.StdDev),
		Slope:      ptr(st.Slope),
		PitchCount: &pitchCount,
		MeanPitch:  ptr(st.Mean),
	}
}

// insufficientResult is the terminal result when the contour is too short.
// Failure is represented as data, never as an error, so callers always
// receive a well-formed result.
func insufficientResult() *AnalysisResult {
	return &AnalysisResult{
		Score:    0,
		Feedback: insufficientFeedback,
	}
}

func ptr(v float64) *float64 {
	return &v
}

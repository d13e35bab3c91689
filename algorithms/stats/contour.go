package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ContourStats contains the scalar features of a pitch contour
type ContourStats struct {
	Count int `json:"count"` // Number of contour points

	Min      float64 `json:"min"`       // Lowest pitch (Hz)
	Max      float64 `json:"max"`       // Highest pitch (Hz)
	Range    float64 `json:"range"`     // Max - Min (Hz)
	Mean     float64 `json:"mean"`      // Arithmetic mean (Hz)
	Variance float64 `json:"variance"`  // Mean of squared deviations from the mean
	StdDev   float64 `json:"std_dev"`   // sqrt(Variance)
	Slope    float64 `json:"slope"`     // (last - first) / count
}

// DescribeContour reduces a time-ordered pitch contour to scalar features.
//
// Variance is the population variance (divides by n, not n-1). Slope is the
// crude end-of-utterance trend (last-first)/count, not a regression fit; the
// scoring rubric downstream was tuned against this exact formula. Callers
// are expected to enforce their own minimum contour length before calling;
// the only structural guard here is against contours too short to carry a
// trend at all.
func DescribeContour(contour []float64) (*ContourStats, error) {
	if len(contour) < 2 {
		return nil, fmt.Errorf("contour too short for statistics: %d points", len(contour))
	}

	n := float64(len(contour))
	mean := stat.Mean(contour, nil)
	variance := stat.MomentAbout(2, contour, mean, nil)

	s := &ContourStats{
		Count:    len(contour),
		Min:      floats.Min(contour),
		Max:      floats.Max(contour),
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Slope:    (contour[len(contour)-1] - contour[0]) / n,
	}
	s.Range = s.Max - s.Min

	return s, nil
}

package stats

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDescribeContour_NarrowContour(t *testing.T) {
	contour := []float64{100, 105, 110, 108, 102}

	st, err := DescribeContour(contour)
	if err != nil {
		t.Fatalf("DescribeContour: %v", err)
	}

	if st.Count != 5 {
		t.Errorf("Count: got %d, want 5", st.Count)
	}
	if !almostEqual(st.Min, 100, tolerance) {
		t.Errorf("Min: got %g, want 100", st.Min)
	}
	if !almostEqual(st.Max, 110, tolerance) {
		t.Errorf("Max: got %g, want 110", st.Max)
	}
	if !almostEqual(st.Range, 10, tolerance) {
		t.Errorf("Range: got %g, want 10", st.Range)
	}
	if !almostEqual(st.Mean, 105, tolerance) {
		t.Errorf("Mean: got %g, want 105", st.Mean)
	}
	// Population variance: mean of squared deviations
	if !almostEqual(st.Variance, 13.6, 1e-9) {
		t.Errorf("Variance: got %g, want 13.6", st.Variance)
	}
	if !almostEqual(st.StdDev, math.Sqrt(13.6), 1e-9) {
		t.Errorf("StdDev: got %g, want %g", st.StdDev, math.Sqrt(13.6))
	}
	// Slope is (last-first)/count, not a regression fit
	if !almostEqual(st.Slope, 0.4, tolerance) {
		t.Errorf("Slope: got %g, want 0.4", st.Slope)
	}
}

func TestDescribeContour_WideContour(t *testing.T) {
	contour := []float64{150, 180, 140, 200, 130, 210}

	st, err := DescribeContour(contour)
	if err != nil {
		t.Fatalf("DescribeContour: %v", err)
	}

	if !almostEqual(st.Range, 80, tolerance) {
		t.Errorf("Range: got %g, want 80", st.Range)
	}
	if !almostEqual(st.Mean, 1010.0/6.0, 1e-9) {
		t.Errorf("Mean: got %g, want %g", st.Mean, 1010.0/6.0)
	}
	if !almostEqual(st.Slope, 10, tolerance) {
		t.Errorf("Slope: got %g, want 10", st.Slope)
	}
	// StdDev lands in the moderate-variability band
	if st.StdDev < 10 || st.StdDev >= 40 {
		t.Errorf("StdDev outside moderate band: got %g", st.StdDev)
	}
}

func TestDescribeContour_ConstantContour(t *testing.T) {
	contour := []float64{200, 200, 200, 200, 200}

	st, err := DescribeContour(contour)
	if err != nil {
		t.Fatalf("DescribeContour: %v", err)
	}

	if st.Range != 0 || st.Variance != 0 || st.StdDev != 0 || st.Slope != 0 {
		t.Errorf("constant contour: got range=%g var=%g sd=%g slope=%g, want all zero",
			st.Range, st.Variance, st.StdDev, st.Slope)
	}
	if !almostEqual(st.Mean, 200, tolerance) {
		t.Errorf("Mean: got %g, want 200", st.Mean)
	}
}

func TestDescribeContour_FallingContour(t *testing.T) {
	contour := []float64{220, 210, 205, 190, 180}

	st, err := DescribeContour(contour)
	if err != nil {
		t.Fatalf("DescribeContour: %v", err)
	}
	if !almostEqual(st.Slope, -8, tolerance) {
		t.Errorf("Slope: got %g, want -8", st.Slope)
	}
}

func TestDescribeContour_TooShort(t *testing.T) {
	if _, err := DescribeContour(nil); err == nil {
		t.Error("expected error for empty contour")
	}
	if _, err := DescribeContour([]float64{150}); err == nil {
		t.Error("expected error for single-point contour")
	}
}

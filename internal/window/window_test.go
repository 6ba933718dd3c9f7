package window

import (
	"math"
	"testing"
)

func TestSymmetric(t *testing.T) {
	families := []Family{Rectangular, Hann, Hamming, Blackman, BlackmanHarris, BlackmanHarris2}
	for _, f := range families {
		coeffs := Coefficients[float64](f, 64)
		for i := range coeffs {
			j := len(coeffs) - 1 - i
			if math.Abs(coeffs[i]-coeffs[j]) > 1e-12 {
				t.Fatalf("family %d: coeffs[%d]=%v != coeffs[%d]=%v", f, i, coeffs[i], j, coeffs[j])
			}
		}
	}
}

func TestHannEdgesZero(t *testing.T) {
	coeffs := Coefficients[float64](Hann, 16)
	if math.Abs(coeffs[0]) > 1e-12 {
		t.Errorf("Hann edge should be ~0, got %v", coeffs[0])
	}
}

func TestRectangularIsFlat(t *testing.T) {
	coeffs := Coefficients[float32](Rectangular, 8)
	for _, c := range coeffs {
		if c != 1 {
			t.Fatalf("rectangular window should be all ones, got %v", c)
		}
	}
}

func TestSingleTap(t *testing.T) {
	coeffs := Coefficients[float64](BlackmanHarris2, 1)
	if len(coeffs) != 1 || coeffs[0] != 1 {
		t.Fatalf("single-tap window should be [1], got %v", coeffs)
	}
}

func TestFillMatchesCoefficients(t *testing.T) {
	want := Coefficients[float64](Blackman, 32)
	got := make([]float64, 32)
	Fill(Blackman, got)
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("Fill mismatch at %d: %v != %v", i, want[i], got[i])
		}
	}
}

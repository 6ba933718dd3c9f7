// Package window implements the taper functions used to turn an infinite
// sinc into a finite, symmetric filter kernel.
//
// This mirrors the role of the Vorbis window table in
// github.com/thesyncim/gopus's celt/window.go (a pure function from a
// family tag and a length to an ordered coefficient sequence) but
// generalizes it to the family set the resampler's sinc-bank builder
// needs: Rectangular, Hann, Hamming, Blackman, and two orders of
// Blackman-Harris.
package window

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gosinc/resample/util"
)

// Family names a taper shape. The zero value is Rectangular.
type Family int

const (
	// Rectangular applies no taper; every coefficient is 1.
	Rectangular Family = iota
	// Hann is the raised-cosine window (zero at both edges).
	Hann
	// Hamming is the raised-cosine window with a small DC offset
	// (nonzero at both edges).
	Hamming
	// Blackman is the 3-term generalized cosine window.
	Blackman
	// BlackmanHarris is the 4-term generalized cosine window, giving
	// deeper stopband attenuation than Blackman at the cost of a wider
	// main lobe.
	BlackmanHarris
	// BlackmanHarris2 is a higher-order (7-term) generalized cosine
	// window used whenever the sinc-bank builder is asked for the
	// deepest available stopband attenuation.
	BlackmanHarris2
)

// Coefficients returns the N symmetric taper coefficients for family,
// generic over the sample type T. Coefficients[i] == Coefficients[N-1-i]
// for every i, by construction of the underlying cosine sum.
func Coefficients[T util.Sample](family Family, n int) []T {
	out := make([]T, n)
	Fill(family, out)
	return out
}

// Fill writes len(dst) symmetric taper coefficients for family into dst,
// avoiding an allocation when the caller already owns a buffer.
//
// When T is float32, the coefficients are computed natively in
// single-precision arithmetic (see sampleF32) rather than rounded down
// from a float64 computation, following the single-precision trig path
// github.com/chewxy/math32 gives the Kaiser-window resampler in
// emer-auditory's RateConverter.
func Fill[T util.Sample](family Family, dst []T) {
	n := len(dst)
	if n == 0 {
		return
	}
	if n == 1 {
		dst[0] = 1
		return
	}

	var zero T
	if _, isF32 := any(zero).(float32); isF32 {
		denom := float32(n - 1)
		for i := range dst {
			dst[i] = T(sampleF32(family, float32(i), denom))
		}
		return
	}

	denom := float64(n - 1)
	for i := range dst {
		dst[i] = T(sample(family, float64(i), denom))
	}
}

// sampleF32 is the single-precision twin of sample, used for the
// float32 instantiation of Fill.
func sampleF32(family Family, i, denom float32) float32 {
	const tau = 2 * math32.Pi
	switch family {
	case Rectangular:
		return 1
	case Hann:
		return 0.5 - 0.5*math32.Cos(tau*i/denom)
	case Hamming:
		return 0.54 - 0.46*math32.Cos(tau*i/denom)
	case Blackman:
		return 0.42 -
			0.5*math32.Cos(tau*i/denom) +
			0.08*math32.Cos(2*tau*i/denom)
	case BlackmanHarris:
		return 0.35875 -
			0.48829*math32.Cos(tau*i/denom) +
			0.14128*math32.Cos(2*tau*i/denom) -
			0.01168*math32.Cos(3*tau*i/denom)
	case BlackmanHarris2:
		return 0.27105140069342 -
			0.43329448721545*math32.Cos(tau*i/denom) +
			0.21812299954311*math32.Cos(2*tau*i/denom) -
			0.06592544638803*math32.Cos(3*tau*i/denom) +
			0.01081174209837*math32.Cos(4*tau*i/denom) -
			0.00077658482522*math32.Cos(5*tau*i/denom) +
			0.00001388721735*math32.Cos(6*tau*i/denom)
	default:
		return 1
	}
}

// sample evaluates the window's generalized-cosine sum at tap i out of
// an (n-1)-wide span. Every family below is a finite sum of the form
// sum_k (-1)^k * a_k * cos(2*pi*k*i/denom), which is symmetric in i by
// construction (cos is even about the span's midpoint).
func sample(family Family, i, denom float64) float64 {
	const tau = 2 * math.Pi
	switch family {
	case Rectangular:
		return 1
	case Hann:
		return 0.5 - 0.5*math.Cos(tau*i/denom)
	case Hamming:
		return 0.54 - 0.46*math.Cos(tau*i/denom)
	case Blackman:
		return 0.42 -
			0.5*math.Cos(tau*i/denom) +
			0.08*math.Cos(2*tau*i/denom)
	case BlackmanHarris:
		return 0.35875 -
			0.48829*math.Cos(tau*i/denom) +
			0.14128*math.Cos(2*tau*i/denom) -
			0.01168*math.Cos(3*tau*i/denom)
	case BlackmanHarris2:
		// 7-term generalized cosine window: deeper stopband than the
		// 4-term variant above, at the cost of a wider transition band.
		return 0.27105140069342 -
			0.43329448721545*math.Cos(tau*i/denom) +
			0.21812299954311*math.Cos(2*tau*i/denom) -
			0.06592544638803*math.Cos(3*tau*i/denom) +
			0.01081174209837*math.Cos(4*tau*i/denom) -
			0.00077658482522*math.Cos(5*tau*i/denom) +
			0.00001388721735*math.Cos(6*tau*i/denom)
	default:
		return 1
	}
}

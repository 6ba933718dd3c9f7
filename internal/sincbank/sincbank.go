// Package sincbank builds banks of precomputed fractional-delay,
// windowed-sinc filter tables — the coarse sub-sample oversampling stage
// of the polyphase resampler.
//
// This plays the role the libopus resampler tables (silk/pitch_resampler.go,
// silk/resample_down_fir.go) play for gopus's fixed-ratio SILK resampler,
// but is built at runtime for an arbitrary oversampling factor and cutoff
// instead of being a handful of hand-tuned libopus constant tables.
package sincbank

import (
	"fmt"
	"math"

	"github.com/gosinc/resample/internal/window"
	"github.com/gosinc/resample/util"
)

// Bank is an ordered set of K fractional-delay sinc tables, each of
// length L. Table k samples the windowed-sinc prototype at fractional
// offset k/K.
type Bank[T util.Sample] struct {
	tables [][]T
	length int
}

// Build constructs a Bank with sinc length l (must be a positive multiple
// of 8), oversampling factor k (>= 1), cutoff fc in (0, 1], using the
// named window family. It panics if a precondition is violated — these
// are construction-time programming errors, not runtime data errors.
func Build[T util.Sample](l, k int, fc float64, family window.Family) *Bank[T] {
	if l <= 0 || l%8 != 0 {
		panic(fmt.Sprintf("sincbank: sinc length must be a positive multiple of 8, got %d", l))
	}
	if k < 1 {
		panic(fmt.Sprintf("sincbank: oversampling factor must be >= 1, got %d", k))
	}
	if fc <= 0 || fc > 1 {
		panic(fmt.Sprintf("sincbank: cutoff must be in (0, 1], got %v", fc))
	}

	// taper is computed in T's own precision: float32 banks take the
	// single-precision window path (window.Fill), matching the reference
	// implementation's choice to build each bank in the resampler's own
	// sample type rather than always promoting to float64.
	taper := window.Coefficients[T](family, l)
	half := float64(l) / 2

	tables := make([][]T, k)
	flat := make([]T, k*l)
	for sub := 0; sub < k; sub++ {
		table := flat[sub*l : sub*l+l : sub*l+l]
		delta := float64(sub) / float64(k)
		for i := 0; i < l; i++ {
			t := (float64(i) - half) + delta
			table[i] = T(float64(taper[i]) * normalizedSinc(fc*t))
		}
		tables[sub] = table
	}
	return &Bank[T]{tables: tables, length: l}
}

// Table returns the k-th fractional-delay filter, a slice of Len()
// coefficients. The caller must not mutate the returned slice.
func (b *Bank[T]) Table(k int) []T { return b.tables[k] }

// Len returns the sinc length L (taps per table).
func (b *Bank[T]) Len() int { return b.length }

// NbrSincs returns the oversampling factor K (number of tables).
func (b *Bank[T]) NbrSincs() int { return len(b.tables) }

// normalizedSinc evaluates sin(pi*x)/(pi*x), with the removable
// singularity at x == 0 defined as 1.
func normalizedSinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

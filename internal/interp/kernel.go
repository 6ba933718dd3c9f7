// Package interp implements the interpolator capability of spec §4.3: an
// opaque dot-product against a precomputed sinc bank, dispatched through a
// single virtual boundary chosen once at construction (spec §9) rather than
// redispatched per tap.
//
// The dispatch shape mirrors github.com/thesyncim/gopus's runtime kernel
// selection for its FFT butterflies (celt/kissfft32_opt_amd64.go,
// internal/celt/imdct_amd64.go): an init-time probe of
// golang.org/x/sys/cpu picks the richest kernel the running CPU supports,
// falling back in order exactly as spec §4.9 describes. Unlike the
// teacher, the wide/short/ARM kernels here are portable Go — this
// environment cannot assemble or execute real SIMD, so the "vector" tiers
// are distinguished by their accumulator grouping (8-wide / 4-wide) rather
// than by actual hardware lanes. See DESIGN.md for the full rationale.
package interp

import (
	"github.com/gosinc/resample/internal/sincbank"
	"github.com/gosinc/resample/internal/window"
	"github.com/gosinc/resample/util"
)

// Interpolator is the scalar-product capability spec §4.3 injects into
// both engines.
type Interpolator[T util.Sample] interface {
	// Dot returns sum(wave[index+i] * sinc_sub[i], i = 0..Len()-1).
	// Precondition: index+Len() <= len(wave) and sub < NbrSincs(); these
	// are programming errors the engines guarantee never to trigger, and
	// a violation panics via the normal Go slice-bounds check rather than
	// an explicit assertion (spec §9 "Unsafe indexing").
	Dot(wave []T, index, sub int) T

	// Len returns the sinc length L (taps per table).
	Len() int

	// NbrSincs returns the oversampling factor K (number of tables).
	NbrSincs() int
}

// Params bundles the sinc-bank construction parameters (spec §6
// "parameters" record) used by New.
type Params struct {
	SincLen      int
	Cutoff       float64
	Oversampling int
	Window       window.Family
}

// RoundSincLen rounds l up to the next multiple of 8, the rounding rule
// the factory applies to any requested sinc length (spec §4.9, §8
// "Sinc length rounding").
func RoundSincLen(l int) int {
	if l <= 0 {
		return 8
	}
	return ((l + 7) / 8) * 8
}

// New builds the richest interpolator kernel the running CPU and element
// type T support, falling back wide-vector -> short-vector/ARM-vector ->
// scalar (spec §4.9). Construction never fails: the scalar kernel is
// always available, so failed construction of a richer kernel is silent
// fallback, not a returned error.
func New[T util.Sample](p Params) Interpolator[T] {
	l := RoundSincLen(p.SincLen)
	bank := sincbank.Build[T](l, p.Oversampling, p.Cutoff, p.Window)

	if k, ok := newWideKernel[T](bank); ok {
		return k
	}
	if k, ok := newShortKernel[T](bank); ok {
		return k
	}
	return newScalarKernel[T](bank)
}

// NewFromBank adapts an existing, possibly shared, sinc bank into an
// interpolator without rebuilding its tables — the "alternative
// constructor" of spec §6 that lets callers share a bank across engines.
func NewFromBank[T util.Sample](bank *sincbank.Bank[T]) Interpolator[T] {
	if k, ok := newWideKernel[T](bank); ok {
		return k
	}
	if k, ok := newShortKernel[T](bank); ok {
		return k
	}
	return newScalarKernel[T](bank)
}

// scalarKernel is the portable reference implementation: eight
// independent accumulators processing taps in groups of 8 to expose
// instruction-level parallelism without relying on the compiler to
// auto-vectorize (spec §4.3).
type scalarKernel[T util.Sample] struct {
	bank *sincbank.Bank[T]
}

func newScalarKernel[T util.Sample](bank *sincbank.Bank[T]) *scalarKernel[T] {
	return &scalarKernel[T]{bank: bank}
}

func (s *scalarKernel[T]) Len() int      { return s.bank.Len() }
func (s *scalarKernel[T]) NbrSincs() int { return s.bank.NbrSincs() }

func (s *scalarKernel[T]) Dot(wave []T, index, sub int) T {
	sinc := s.bank.Table(sub)
	w := wave[index : index+len(sinc)]

	var acc0, acc1, acc2, acc3, acc4, acc5, acc6, acc7 T
	for i := 0; i+8 <= len(sinc); i += 8 {
		acc0 += w[i] * sinc[i]
		acc1 += w[i+1] * sinc[i+1]
		acc2 += w[i+2] * sinc[i+2]
		acc3 += w[i+3] * sinc[i+3]
		acc4 += w[i+4] * sinc[i+4]
		acc5 += w[i+5] * sinc[i+5]
		acc6 += w[i+6] * sinc[i+6]
		acc7 += w[i+7] * sinc[i+7]
	}
	return acc0 + acc1 + acc2 + acc3 + acc4 + acc5 + acc6 + acc7
}

// dot4 sums the tap products four at a time, giving a distinct
// reassociation from the 8-accumulator scalar/wide kernels (L is always
// a multiple of 8, hence also a multiple of 4). Shared by the amd64
// short-vector kernel and the arm64 kernel.
func dot4[T util.Sample](sinc, w []T) T {
	var acc0, acc1, acc2, acc3 T
	for i := 0; i+4 <= len(sinc); i += 4 {
		acc0 += w[i] * sinc[i]
		acc1 += w[i+1] * sinc[i+1]
		acc2 += w[i+2] * sinc[i+2]
		acc3 += w[i+3] * sinc[i+3]
	}
	return acc0 + acc1 + acc2 + acc3
}

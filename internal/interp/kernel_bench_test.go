package interp

import (
	"testing"

	"github.com/gosinc/resample/internal/sincbank"
	"github.com/gosinc/resample/internal/window"
)

func BenchmarkScalarKernelDot64(b *testing.B) {
	const l, k = 256, 256
	bank := sincbank.Build[float64](l, k, 0.9, window.BlackmanHarris2)
	kernel := newScalarKernel[float64](bank)

	wave := make([]float64, 2048)
	for i := range wave {
		wave[i] = float64(i%31) / 31
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = kernel.Dot(wave, 333, 123)
	}
}

func BenchmarkNewDot64(b *testing.B) {
	k := New[float64](Params{SincLen: 256, Cutoff: 0.9, Oversampling: 256, Window: window.BlackmanHarris2})
	wave := make([]float64, 2048)
	for i := range wave {
		wave[i] = float64(i%31) / 31
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = k.Dot(wave, 333, 123)
	}
}

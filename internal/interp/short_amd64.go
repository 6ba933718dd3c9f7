//go:build amd64

package interp

import (
	"golang.org/x/sys/cpu"

	"github.com/gosinc/resample/internal/sincbank"
	"github.com/gosinc/resample/util"
)

// shortKernel is the "short-vector" tier of spec §4.9: a 4-lane grouped
// accumulation, selected on amd64 CPUs that lack AVX/AVX2 but support
// SSE2 (effectively all amd64 hardware, making this the common amd64
// fallback ahead of the pure scalar kernel).
type shortKernel[T util.Sample] struct {
	bank *sincbank.Bank[T]
}

func newShortKernel[T util.Sample](bank *sincbank.Bank[T]) (Interpolator[T], bool) {
	if !cpu.X86.HasSSE2 {
		return nil, false
	}
	return &shortKernel[T]{bank: bank}, true
}

func (k *shortKernel[T]) Len() int      { return k.bank.Len() }
func (k *shortKernel[T]) NbrSincs() int { return k.bank.NbrSincs() }

func (k *shortKernel[T]) Dot(wave []T, index, sub int) T {
	return dot4[T](k.bank.Table(sub), wave[index:index+k.bank.Len()])
}

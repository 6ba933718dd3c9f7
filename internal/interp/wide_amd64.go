//go:build amd64

package interp

import (
	"golang.org/x/sys/cpu"

	"github.com/gosinc/resample/internal/sincbank"
	"github.com/gosinc/resample/util"
)

// wideKernel is the "wide-vector" tier of spec §4.9: an 8-lane grouped
// accumulation selected when the CPU advertises AVX2 or AVX. It mirrors
// the AVX2-gated FFT butterfly dispatch in celt/kissfft32_opt_amd64.go;
// the accumulation itself is portable Go rather than real vector
// instructions (no assembler is available in this environment — see
// DESIGN.md).
type wideKernel[T util.Sample] struct {
	bank *sincbank.Bank[T]
}

func newWideKernel[T util.Sample](bank *sincbank.Bank[T]) (Interpolator[T], bool) {
	if !cpu.X86.HasAVX2 && !cpu.X86.HasAVX {
		return nil, false
	}
	return &wideKernel[T]{bank: bank}, true
}

func (k *wideKernel[T]) Len() int      { return k.bank.Len() }
func (k *wideKernel[T]) NbrSincs() int { return k.bank.NbrSincs() }

func (k *wideKernel[T]) Dot(wave []T, index, sub int) T {
	sinc := k.bank.Table(sub)
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

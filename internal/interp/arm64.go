//go:build arm64

package interp

import (
	"golang.org/x/sys/cpu"

	"github.com/gosinc/resample/internal/sincbank"
	"github.com/gosinc/resample/util"
)

// armKernel is the ARM 4-lane tier of spec §4.9, selected when the CPU
// advertises NEON (ASIMD). There is no 8-lane tier on this arch, so
// newWideKernel below always declines and New falls through to here.
type armKernel[T util.Sample] struct {
	bank *sincbank.Bank[T]
}

func newWideKernel[T util.Sample](bank *sincbank.Bank[T]) (Interpolator[T], bool) {
	return nil, false
}

func newShortKernel[T util.Sample](bank *sincbank.Bank[T]) (Interpolator[T], bool) {
	if !cpu.ARM64.HasASIMD {
		return nil, false
	}
	return &armKernel[T]{bank: bank}, true
}

func (k *armKernel[T]) Len() int      { return k.bank.Len() }
func (k *armKernel[T]) NbrSincs() int { return k.bank.NbrSincs() }

func (k *armKernel[T]) Dot(wave []T, index, sub int) T {
	return dot4[T](k.bank.Table(sub), wave[index:index+k.bank.Len()])
}

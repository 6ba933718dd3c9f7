//go:build !amd64 && !arm64

package interp

import (
	"github.com/gosinc/resample/internal/sincbank"
	"github.com/gosinc/resample/util"
)

// On architectures with no wide/short kernel implemented here, New falls
// straight through to the portable scalar kernel (spec §4.9).
func newWideKernel[T util.Sample](bank *sincbank.Bank[T]) (Interpolator[T], bool) {
	return nil, false
}

func newShortKernel[T util.Sample](bank *sincbank.Bank[T]) (Interpolator[T], bool) {
	return nil, false
}

package engine

import (
	"log/slog"
	"math"

	"github.com/gosinc/resample/internal/interp"
	"github.com/gosinc/resample/internal/window"
	"github.com/gosinc/resample/util"
)

// InterpolationType selects the micro-interpolator each engine runs on
// the four (or two, or one) sinc-interpolated neighbours it samples per
// output frame.
type InterpolationType int

const (
	// Nearest takes the single closest neighbour with no blending.
	Nearest InterpolationType = iota
	// Linear blends the two neighbours bracketing the output instant.
	Linear
	// Cubic fits a cubic polynomial through the four surrounding
	// neighbours. The one the test corpus exercises; the zero value of
	// InterpolationType is Nearest, not Cubic.
	Cubic
)

func (t InterpolationType) String() string {
	switch t {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// Parameters bundles everything needed to build a sinc bank and the
// micro-interpolator that rides on top of it.
type Parameters struct {
	SincLen       int
	Cutoff        float64
	Interpolation InterpolationType
	Oversampling  int
	Window        window.Family
}

// makeInterpolator mirrors the reference implementation's
// make_interpolator: round the sinc length up to a multiple of 8 and,
// when downsampling, pre-scale the cutoff by the resample ratio so the
// anti-aliasing filter tracks the new Nyquist.
func makeInterpolator[T util.Sample](sincLen int, resampleRatio, cutoff float64, oversampling int, win window.Family) interp.Interpolator[T] {
	l := interp.RoundSincLen(sincLen)
	fc := cutoff
	if resampleRatio < 1.0 {
		fc = cutoff * resampleRatio
	}
	fc = util.Clamp(fc, 1e-6, 1.0)
	slog.Debug("building sinc interpolator",
		"sinc_len", l, "cutoff", fc, "oversampling", oversampling, "window", win)
	return interp.New[T](interp.Params{SincLen: l, Cutoff: fc, Oversampling: oversampling, Window: win})
}

// growBuffer reallocates buf to at least n frames, copying the
// existing contents (the carried-over sinc history at the front of the
// ring) into the new backing array unchanged.
func growBuffer[T util.Sample](buf []T, n int) []T {
	if cap(buf) >= n {
		return buf[:n]
	}
	grown := make([]T, n)
	copy(grown, buf)
	return grown
}

func ceilDiv(a, b float64) int {
	return int(math.Ceil(a / b))
}

package resample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func testParams() Parameters {
	return Parameters{
		SincLen:       128,
		Cutoff:        0.925,
		Interpolation: Cubic,
		Oversampling:  128,
		Window:        WindowBlackmanHarris2,
	}
}

func TestFixedInRoundtripShape(t *testing.T) {
	r := NewFixedIn[float64](44100.0/48000.0, testParams(), 2048, 2)
	waves := [][]float64{make([]float64, 2048), make([]float64, 2048)}

	out, err := r.Process(waves)
	require.NoError(t, err)
	require.Len(t, out, 2)
	// The first call starts its cursor at -L/2 rather than at the
	// steady-state carry-over position, so it yields roughly
	// (chunk - L/2) * ratio frames instead of chunk * ratio.
	require.InDelta(t, float64(2048-128/2)*44100.0/48000.0, float64(len(out[0])), 50)
}

func TestFixedOutRoundtripShape(t *testing.T) {
	r := NewFixedOut[float64](48000.0/44100.0, testParams(), 2048, 2)
	frames := r.FramesNeeded()
	waves := [][]float64{make([]float64, frames), make([]float64, frames)}

	out, err := r.Process(waves)
	require.NoError(t, err)
	require.Len(t, out[0], 2048)
}

func TestSharedInterpolatorAcrossResamplers(t *testing.T) {
	shared := NewInterpolator[float64](testParams())

	a := NewFixedInWithInterpolator[float64](1.5, Cubic, shared, 512, 1)
	b := NewFixedInWithInterpolator[float64](0.75, Cubic, shared, 512, 1)

	wave := [][]float64{make([]float64, 512)}
	_, err := a.Process(wave)
	require.NoError(t, err)
	_, err = b.Process(wave)
	require.NoError(t, err)
}

func TestImpulseResponseIsFinite(t *testing.T) {
	r := NewFixedIn[float64](1.3, testParams(), 1024, 1)
	wave := make([]float64, 1024)
	wave[500] = 1.0

	out, err := r.Process([][]float64{wave})
	require.NoError(t, err)
	for _, v := range out[0] {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "output must not contain NaN or Inf")
	}
}

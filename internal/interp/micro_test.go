package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCubicClosedForm(t *testing.T) {
	got := Cubic(0.5, [4]float64{0, 2, 4, 6})
	require.InDelta(t, 3.0, got, 1e-12)
}

func TestLinearClosedForm(t *testing.T) {
	got := Linear(0.25, [2]float64{1, 5})
	require.InDelta(t, 2.0, got, 1e-12)
}

func TestLinearEndpoints(t *testing.T) {
	require.Equal(t, 1.0, Linear(0.0, [2]float64{1, 5}))
	require.Equal(t, 5.0, Linear(1.0, [2]float64{1, 5}))
}

func TestCubicPassesThroughKnownPoints(t *testing.T) {
	y := [4]float64{-1, 0, 1, 2}
	require.InDelta(t, y[1], Cubic(0.0, y), 1e-12)
	require.InDelta(t, y[2], Cubic(1.0, y), 1e-9)
}

func TestNearestIsIdentity(t *testing.T) {
	require.Equal(t, 3.5, Nearest(3.5))
}

func TestLatticeCoversIdx(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := rapid.IntRange(1, 64).Draw(rt, "k")
		idx := rapid.Float64Range(-100, 100).Draw(rt, "idx")

		p := Nearest1(idx, k)
		require.GreaterOrEqual(t, p.K, 0)
		require.Less(t, p.K, k)

		reconstructed := float64(p.N)*float64(k) + float64(p.K)
		require.InDelta(t, math.Floor(idx*float64(k)), reconstructed, 1e-9)
	})
}

func TestNearest2IsConsecutive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := rapid.IntRange(1, 64).Draw(rt, "k")
		idx := rapid.Float64Range(-100, 100).Draw(rt, "idx")

		pair := Nearest2(idx, k)
		lo := pair[0].N*k + pair[0].K
		hi := pair[1].N*k + pair[1].K
		require.Equal(t, lo+1, hi)
	})
}

func TestNearest4IsConsecutive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := rapid.IntRange(1, 64).Draw(rt, "k")
		idx := rapid.Float64Range(-100, 100).Draw(rt, "idx")

		quad := Nearest4(idx, k)
		for i := 0; i < 3; i++ {
			lo := quad[i].N*k + quad[i].K
			hi := quad[i+1].N*k + quad[i+1].K
			require.Equal(t, lo+1, hi)
		}
	})
}

func TestFracInUnitRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := rapid.IntRange(1, 64).Draw(rt, "k")
		idx := rapid.Float64Range(-100, 100).Draw(rt, "idx")

		f := Frac(idx, k)
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	})
}

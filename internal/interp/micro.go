package interp

import (
	"math"

	"github.com/gosinc/resample/util"
)

// Phase identifies one (input-frame, sub-phase) lattice point: the base
// input index n and the oversampled-table sub-index k picked by the
// interpolator's Dot (spec §4.5).
type Phase struct {
	N int
	K int
}

// latticeTotal returns floor(idx*k), the position of idx on the
// combined input/oversampling lattice. Every nearest-phase helper below
// derives its (n, k) pairs from consecutive lattice positions around
// this value.
func latticeTotal(idx float64, k int) int {
	return int(math.Floor(idx * float64(k)))
}

func phaseAt(total, k int) Phase {
	n, rem := floorDivMod(total, k)
	return Phase{N: n, K: rem}
}

// floorDivMod returns the floor-division quotient and the corresponding
// non-negative remainder of a/b (b > 0), so that a == q*b + r and
// 0 <= r < b even when a is negative.
func floorDivMod(a, b int) (q, r int) {
	q = a / b
	r = a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

// Frac returns the sub-sub-phase passed to the micro-interpolator:
// idx*k - floor(idx*k).
func Frac(idx float64, k int) float64 {
	total := latticeTotal(idx, k)
	return idx*float64(k) - float64(total)
}

// Nearest1 returns the single (n0, k0) pair for idx (spec §4.5).
func Nearest1(idx float64, k int) Phase {
	return phaseAt(latticeTotal(idx, k), k)
}

// Nearest2 returns two consecutive lattice pairs bracketing idx, for
// linear interpolation.
func Nearest2(idx float64, k int) [2]Phase {
	total := latticeTotal(idx, k)
	return [2]Phase{phaseAt(total, k), phaseAt(total+1, k)}
}

// Nearest4 returns four consecutive lattice pairs centred on idx (two
// before, two after), for cubic interpolation.
func Nearest4(idx float64, k int) [4]Phase {
	total := latticeTotal(idx, k)
	return [4]Phase{
		phaseAt(total-1, k),
		phaseAt(total, k),
		phaseAt(total+1, k),
		phaseAt(total+2, k),
	}
}

// Nearest returns the single neighbour y[0] unchanged — the
// micro-interpolator for InterpolationType Nearest is the identity on
// its one sample (spec §4.4).
func Nearest[T util.Sample](y T) T { return y }

// Linear interpolates between y[0] (at x=0) and y[1] (at x=1), x in
// [0, 1).
func Linear[T util.Sample](x T, y [2]T) T {
	return (1-x)*y[0] + x*y[1]
}

// Cubic interpolates through four points assumed to sit at
// x = -1, 0, 1, 2 (Catmull-Rom-equivalent, spec §4.4).
func Cubic[T util.Sample](x T, y [4]T) T {
	a0 := y[1]
	a1 := -y[0]/3 - y[1]/2 + y[2] - y[3]/6
	a2 := (y[0]+y[2])/2 - y[1]
	a3 := (y[1]-y[2])/2 + (y[3]-y[0])/6
	x2 := x * x
	x3 := x2 * x
	return a0 + a1*x + a2*x2 + a3*x3
}

package engine

import (
	"log/slog"
	"math"

	"github.com/gosinc/resample/internal/interp"
	"github.com/gosinc/resample/util"
)

// FixedIn is the asynchronous resampler that accepts a
// fixed number of input frames per call and returns a variable number
// of output frames, computed by sinc-interpolating a bank of
// oversampled phases and blending the result with the configured
// micro-interpolator.
type FixedIn[T util.Sample] struct {
	nbrChannels           int
	chunkSize             int
	lastIndex             float64
	resampleRatio         float64
	resampleRatioOriginal float64
	interpolator          interp.Interpolator[T]
	buffer                [][]T
	interpolation         InterpolationType
	usedChannels          []int
}

// NewFixedIn builds a FixedIn engine from scratch, constructing its own
// sinc bank from parameters.
func NewFixedIn[T util.Sample](resampleRatio float64, params Parameters, chunkSize, nbrChannels int) *FixedIn[T] {
	ip := makeInterpolator[T](params.SincLen, resampleRatio, params.Cutoff, params.Oversampling, params.Window)
	return NewFixedInWithInterpolator(resampleRatio, params.Interpolation, ip, chunkSize, nbrChannels)
}

// NewFixedInWithInterpolator builds a FixedIn engine on top of an
// existing interpolator, letting callers share one sinc bank across
// several engines.
func NewFixedInWithInterpolator[T util.Sample](resampleRatio float64, interpolation InterpolationType, interpolator interp.Interpolator[T], chunkSize, nbrChannels int) *FixedIn[T] {
	buffer := make([][]T, nbrChannels)
	for c := range buffer {
		buffer[c] = make([]T, chunkSize+2*interpolator.Len())
	}
	slog.Debug("created fixed-input engine",
		"ratio", resampleRatio, "chunk_size", chunkSize, "channels", nbrChannels,
		"interpolation", interpolation)
	return &FixedIn[T]{
		nbrChannels:           nbrChannels,
		chunkSize:             chunkSize,
		lastIndex:             -float64(interpolator.Len() / 2),
		resampleRatio:         resampleRatio,
		resampleRatioOriginal: resampleRatio,
		interpolator:          interpolator,
		buffer:                buffer,
		interpolation:         interpolation,
		usedChannels:          make([]int, 0, nbrChannels),
	}
}

// FramesNeeded always returns chunk_size: FixedIn takes the same
// amount of input on every call.
func (f *FixedIn[T]) FramesNeeded() int { return f.chunkSize }

// ChannelCount returns the configured number of channels.
func (f *FixedIn[T]) ChannelCount() int { return f.nbrChannels }

// Process resamples one chunk of audio. A channel whose input slice is
// empty is skipped entirely and its output slice comes back empty.
func (f *FixedIn[T]) Process(waveIn [][]T) ([][]T, error) {
	if len(waveIn) != f.nbrChannels {
		return nil, &ChannelCountError{Err: ErrWrongNumberOfChannels, Expected: f.nbrChannels, Actual: len(waveIn)}
	}

	used := f.usedChannels[:0]
	for chanIdx, wave := range waveIn {
		if len(wave) == 0 {
			continue
		}
		used = append(used, chanIdx)
		if len(wave) != f.chunkSize {
			return nil, &FrameCountError{Err: ErrWrongNumberOfFrames, Channel: chanIdx, Expected: f.chunkSize, Actual: len(wave)}
		}
	}
	f.usedChannels = used

	sincLen := f.interpolator.Len()
	oversampling := f.interpolator.NbrSincs()
	tRatio := 1.0 / f.resampleRatio
	endIdx := float64(f.chunkSize) - float64(sincLen+1) - math.Ceil(tRatio)

	for _, wav := range f.buffer {
		copy(wav[:2*sincLen], wav[f.chunkSize:f.chunkSize+2*sincLen])
	}

	waveOut := make([][]T, f.nbrChannels)
	for _, chanIdx := range used {
		copy(f.buffer[chanIdx][2*sincLen:], waveIn[chanIdx])
		waveOut[chanIdx] = make([]T, int(float64(f.chunkSize)*f.resampleRatio+10.0))
	}

	idx := f.lastIndex
	n := 0

	switch f.interpolation {
	case Cubic:
		var points [4]T
		for idx < endIdx {
			idx += tRatio
			nearest := interp.Nearest4(idx, oversampling)
			fracOffset := T(interp.Frac(idx, oversampling))
			for _, chanIdx := range used {
				buf := f.buffer[chanIdx]
				for i, ph := range nearest {
					points[i] = f.interpolator.Dot(buf, ph.N+2*sincLen, ph.K)
				}
				waveOut[chanIdx][n] = interp.Cubic(fracOffset, points)
			}
			n++
		}
	case Linear:
		var points [2]T
		for idx < endIdx {
			idx += tRatio
			nearest := interp.Nearest2(idx, oversampling)
			fracOffset := T(interp.Frac(idx, oversampling))
			for _, chanIdx := range used {
				buf := f.buffer[chanIdx]
				for i, ph := range nearest {
					points[i] = f.interpolator.Dot(buf, ph.N+2*sincLen, ph.K)
				}
				waveOut[chanIdx][n] = interp.Linear(fracOffset, points)
			}
			n++
		}
	default:
		for idx < endIdx {
			idx += tRatio
			ph := interp.Nearest1(idx, oversampling)
			for _, chanIdx := range used {
				waveOut[chanIdx][n] = f.interpolator.Dot(f.buffer[chanIdx], ph.N+2*sincLen, ph.K)
			}
			n++
		}
	}

	f.lastIndex = idx - float64(f.chunkSize)
	for _, chanIdx := range used {
		waveOut[chanIdx] = waveOut[chanIdx][:n]
	}
	return waveOut, nil
}

// SetRatio updates the resample ratio. The new value must stay within
// +-10% of the ratio the engine was constructed with.
func (f *FixedIn[T]) SetRatio(newRatio float64) error {
	if !withinBand(newRatio, f.resampleRatioOriginal) {
		return ErrBadRatioUpdate
	}
	f.resampleRatio = newRatio
	return nil
}

// SetRatioRelative updates the ratio to relRatio times the ratio the
// engine was originally constructed with.
func (f *FixedIn[T]) SetRatioRelative(relRatio float64) error {
	return f.SetRatio(f.resampleRatioOriginal * relRatio)
}

func withinBand(newRatio, original float64) bool {
	return util.Abs(newRatio/original-1) < 0.1
}

package engine

import (
	"log/slog"
	"math"

	"github.com/gosinc/resample/internal/interp"
	"github.com/gosinc/resample/util"
)

// FixedOut is the asynchronous resampler of spec §4.7: it returns a
// fixed number of output frames per call, and tells the caller via
// FramesNeeded how many input frames the next call requires. The
// required count drifts by a frame or two as the fractional phase
// carries across calls, which is why it must be queried before every
// call rather than assumed constant.
type FixedOut[T util.Sample] struct {
	nbrChannels           int
	chunkSize             int
	neededInputSize       int
	lastIndex             float64
	currentBufferFill     int
	resampleRatio         float64
	resampleRatioOriginal float64
	interpolator          interp.Interpolator[T]
	buffer                [][]T
	interpolation         InterpolationType
	usedChannels          []int
}

// NewFixedOut builds a FixedOut engine from scratch, constructing its
// own sinc bank from parameters.
func NewFixedOut[T util.Sample](resampleRatio float64, params Parameters, chunkSize, nbrChannels int) *FixedOut[T] {
	ip := makeInterpolator[T](params.SincLen, resampleRatio, params.Cutoff, params.Oversampling, params.Window)
	return NewFixedOutWithInterpolator(resampleRatio, params.Interpolation, ip, chunkSize, nbrChannels)
}

// NewFixedOutWithInterpolator builds a FixedOut engine on top of an
// existing interpolator, letting callers share one sinc bank across
// several engines (spec §6).
func NewFixedOutWithInterpolator[T util.Sample](resampleRatio float64, interpolation InterpolationType, interpolator interp.Interpolator[T], chunkSize, nbrChannels int) *FixedOut[T] {
	neededInputSize := ceilDiv(float64(chunkSize), resampleRatio) + 2 + interpolator.Len()/2
	bufLen := 3*neededInputSize/2 + 2*interpolator.Len()

	buffer := make([][]T, nbrChannels)
	for c := range buffer {
		buffer[c] = make([]T, bufLen)
	}
	slog.Debug("created fixed-output engine",
		"ratio", resampleRatio, "chunk_size", chunkSize, "channels", nbrChannels,
		"interpolation", interpolation, "needed_input_size", neededInputSize)
	return &FixedOut[T]{
		nbrChannels:           nbrChannels,
		chunkSize:             chunkSize,
		neededInputSize:       neededInputSize,
		lastIndex:             -float64(interpolator.Len() / 2),
		currentBufferFill:     neededInputSize,
		resampleRatio:         resampleRatio,
		resampleRatioOriginal: resampleRatio,
		interpolator:          interpolator,
		buffer:                buffer,
		interpolation:         interpolation,
		usedChannels:          make([]int, 0, nbrChannels),
	}
}

// FramesNeeded returns how many input frames the next call to Process
// or ProcessInto requires. Unlike FixedIn, this drifts call to call.
func (f *FixedOut[T]) FramesNeeded() int { return f.neededInputSize }

// ChannelCount returns the configured number of channels.
func (f *FixedOut[T]) ChannelCount() int { return f.nbrChannels }

// FramesOut always returns chunk_size: FixedOut produces the same
// amount of output on every call.
func (f *FixedOut[T]) FramesOut() int { return f.chunkSize }

// Process resamples one chunk of audio, allocating its own output
// buffers.
func (f *FixedOut[T]) Process(waveIn [][]T) ([][]T, error) {
	if err := f.checkInput(waveIn); err != nil {
		return nil, err
	}

	waveOut := make([][]T, f.nbrChannels)
	for _, chanIdx := range f.usedChannels {
		waveOut[chanIdx] = make([]T, f.chunkSize)
	}
	f.processUnchecked(waveIn, waveOut)
	return waveOut, nil
}

// ProcessInto resamples one chunk of audio into caller-supplied output
// buffers, avoiding a per-call allocation once the caller reuses its
// buffers across calls (spec §4.7 "borrowed output").
func (f *FixedOut[T]) ProcessInto(waveIn [][]T, waveOut [][]T) error {
	if err := f.checkInput(waveIn); err != nil {
		return err
	}
	if len(waveOut) != f.nbrChannels {
		return &ChannelCountError{Err: ErrWrongNumberOfOutputChannels, Expected: f.nbrChannels, Actual: len(waveOut)}
	}
	for _, chanIdx := range f.usedChannels {
		if len(waveOut[chanIdx]) != f.chunkSize {
			return &FrameCountError{Err: ErrWrongNumberOfOutputFrames, Channel: chanIdx, Expected: f.chunkSize, Actual: len(waveOut[chanIdx])}
		}
	}
	f.processUnchecked(waveIn, waveOut)
	return nil
}

func (f *FixedOut[T]) checkInput(waveIn [][]T) error {
	if len(waveIn) != f.nbrChannels {
		return &ChannelCountError{Err: ErrWrongNumberOfChannels, Expected: f.nbrChannels, Actual: len(waveIn)}
	}
	used := f.usedChannels[:0]
	for chanIdx, wave := range waveIn {
		if len(wave) == 0 {
			continue
		}
		used = append(used, chanIdx)
		if len(wave) != f.neededInputSize {
			return &FrameCountError{Err: ErrWrongNumberOfFrames, Channel: chanIdx, Expected: f.neededInputSize, Actual: len(wave)}
		}
	}
	f.usedChannels = used
	return nil
}

func (f *FixedOut[T]) processUnchecked(waveIn, waveOut [][]T) {
	sincLen := f.interpolator.Len()
	f.ensureBufferCapacity(2*sincLen + f.neededInputSize)

	for _, wav := range f.buffer {
		copy(wav[:2*sincLen], wav[f.currentBufferFill:f.currentBufferFill+2*sincLen])
	}
	f.currentBufferFill = f.neededInputSize

	for _, chanIdx := range f.usedChannels {
		copy(f.buffer[chanIdx][2*sincLen:], waveIn[chanIdx])
	}

	idx := f.lastIndex
	tRatio := 1.0 / f.resampleRatio
	oversampling := f.interpolator.NbrSincs()

	switch f.interpolation {
	case Cubic:
		var points [4]T
		for n := 0; n < f.chunkSize; n++ {
			idx += tRatio
			nearest := interp.Nearest4(idx, oversampling)
			fracOffset := T(interp.Frac(idx, oversampling))
			for _, chanIdx := range f.usedChannels {
				buf := f.buffer[chanIdx]
				for i, ph := range nearest {
					points[i] = f.interpolator.Dot(buf, ph.N+2*sincLen, ph.K)
				}
				waveOut[chanIdx][n] = interp.Cubic(fracOffset, points)
			}
		}
	case Linear:
		var points [2]T
		for n := 0; n < f.chunkSize; n++ {
			idx += tRatio
			nearest := interp.Nearest2(idx, oversampling)
			fracOffset := T(interp.Frac(idx, oversampling))
			for _, chanIdx := range f.usedChannels {
				buf := f.buffer[chanIdx]
				for i, ph := range nearest {
					points[i] = f.interpolator.Dot(buf, ph.N+2*sincLen, ph.K)
				}
				waveOut[chanIdx][n] = interp.Linear(fracOffset, points)
			}
		}
	default:
		for n := 0; n < f.chunkSize; n++ {
			idx += tRatio
			ph := interp.Nearest1(idx, oversampling)
			for _, chanIdx := range f.usedChannels {
				waveOut[chanIdx][n] = f.interpolator.Dot(f.buffer[chanIdx], ph.N+2*sincLen, ph.K)
			}
		}
	}

	f.lastIndex = idx - float64(f.currentBufferFill)
	f.neededInputSize = f.nextNeededInputSize(sincLen)
}

func (f *FixedOut[T]) nextNeededInputSize(sincLen int) int {
	return int(math.Ceil(f.lastIndex+float64(f.chunkSize)/f.resampleRatio+float64(sincLen))) + 2
}

// ensureBufferCapacity grows every channel's ring buffer to at least n
// frames, preserving its current contents. This revalidates the
// construction-time estimate rather than trusting it forever: a ratio
// update can raise neededInputSize past what the initial allocation
// anticipated (spec §6 Open Question "buffer growth on SetRatio").
func (f *FixedOut[T]) ensureBufferCapacity(n int) {
	for c, wav := range f.buffer {
		if cap(wav) < n {
			f.buffer[c] = growBuffer(wav, n)
		}
	}
}

// SetRatio updates the resample ratio. The new value must stay within
// +-10% of the ratio the engine was constructed with (spec §4.8), and
// the next needed_input_size is recomputed immediately so
// FramesNeeded reflects it before the caller's next Process call.
func (f *FixedOut[T]) SetRatio(newRatio float64) error {
	if !withinBand(newRatio, f.resampleRatioOriginal) {
		return ErrBadRatioUpdate
	}
	f.resampleRatio = newRatio
	f.neededInputSize = f.nextNeededInputSize(f.interpolator.Len())
	f.ensureBufferCapacity(2*f.interpolator.Len() + f.neededInputSize)
	return nil
}

// SetRatioRelative updates the ratio to relRatio times the ratio the
// engine was originally constructed with.
func (f *FixedOut[T]) SetRatioRelative(relRatio float64) error {
	return f.SetRatio(f.resampleRatioOriginal * relRatio)
}

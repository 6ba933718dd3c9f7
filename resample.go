package resample

import (
	"github.com/gosinc/resample/internal/engine"
	"github.com/gosinc/resample/internal/interp"
	"github.com/gosinc/resample/internal/sincbank"
	"github.com/gosinc/resample/internal/window"
	"github.com/gosinc/resample/util"
)

// Sample is the element type a resampler can operate on: either
// single- or double-precision IEEE-754 floating point.
type Sample = util.Sample

// InterpolationType selects the micro-interpolator run on the
// neighbours each engine samples from the sinc bank per output frame.
type InterpolationType = engine.InterpolationType

const (
	// Nearest takes the single closest neighbour with no blending.
	Nearest = engine.Nearest
	// Linear blends the two neighbours bracketing the output instant.
	Linear = engine.Linear
	// Cubic fits a cubic polynomial through the four surrounding
	// neighbours.
	Cubic = engine.Cubic
)

// Window identifies the taper applied to each sinc filter in the bank.
type Window = window.Family

const (
	WindowRectangular      = window.Rectangular
	WindowHann             = window.Hann
	WindowHamming          = window.Hamming
	WindowBlackman         = window.Blackman
	WindowBlackmanHarris   = window.BlackmanHarris
	WindowBlackmanHarris2  = window.BlackmanHarris2
)

// Parameters configures the sinc bank and micro-interpolator a
// resampler builds at construction time.
type Parameters struct {
	// SincLen is the number of taps per sinc filter. Rounded up to the
	// next multiple of 8.
	SincLen int
	// Cutoff is the relative cutoff frequency of the anti-aliasing
	// filter, in (0, 1]. Automatically scaled down when downsampling.
	Cutoff float64
	// Interpolation selects the micro-interpolator.
	Interpolation InterpolationType
	// Oversampling is the number of intermediate sinc phases (the
	// lattice K).
	Oversampling int
	// Window is the taper applied to each sinc filter.
	Window Window
}

func (p Parameters) toEngine() engine.Parameters {
	return engine.Parameters{
		SincLen:       p.SincLen,
		Cutoff:        p.Cutoff,
		Interpolation: p.Interpolation,
		Oversampling:  p.Oversampling,
		Window:        p.Window,
	}
}

// Bank is the precomputed sinc filter table type an Interpolator is
// built on. This package exports no constructor for a Bank; tables are
// shared across resamplers by building one Interpolator with
// NewInterpolator and passing it to the *WithInterpolator constructors.
type Bank[T Sample] = sincbank.Bank[T]

// Interpolator is the scalar-product capability a Bank compiles into;
// see NewInterpolator.
type Interpolator[T Sample] = interp.Interpolator[T]

// NewInterpolator builds the richest scalar-product kernel the running
// CPU supports for the given parameters, for sharing across several
// resamplers constructed with *WithInterpolator. SincLen is rounded up
// to a multiple of 8, but Cutoff is used as given: no ratio is known
// here, so it is not scaled for downsampling. p.Interpolation is not
// used; the *WithInterpolator constructors take it separately.
func NewInterpolator[T Sample](p Parameters) Interpolator[T] {
	return interp.New[T](interp.Params{
		SincLen:      p.SincLen,
		Cutoff:       p.Cutoff,
		Oversampling: p.Oversampling,
		Window:       p.Window,
	})
}

// FixedIn is an asynchronous resampler that accepts a fixed number of
// input frames and returns a variable number of output frames.
type FixedIn[T Sample] struct {
	e *engine.FixedIn[T]
}

// NewFixedIn constructs a FixedIn resampler building its own sinc bank.
func NewFixedIn[T Sample](resampleRatio float64, parameters Parameters, chunkSize, nbrChannels int) *FixedIn[T] {
	return &FixedIn[T]{e: engine.NewFixedIn[T](resampleRatio, parameters.toEngine(), chunkSize, nbrChannels)}
}

// NewFixedInWithInterpolator constructs a FixedIn resampler on top of
// an existing, possibly shared, interpolator.
func NewFixedInWithInterpolator[T Sample](resampleRatio float64, interpolation InterpolationType, interpolator Interpolator[T], chunkSize, nbrChannels int) *FixedIn[T] {
	return &FixedIn[T]{e: engine.NewFixedInWithInterpolator[T](resampleRatio, interpolation, interpolator, chunkSize, nbrChannels)}
}

// Process resamples one chunk of audio. wave_in must carry exactly one
// slice per channel; a channel may pass an empty slice to skip it,
// whereas non-empty ones must all be chunk_size long.
func (r *FixedIn[T]) Process(waveIn [][]T) ([][]T, error) { return r.e.Process(waveIn) }

// FramesNeeded returns chunk_size, the number of input frames every
// call to Process requires.
func (r *FixedIn[T]) FramesNeeded() int { return r.e.FramesNeeded() }

// ChannelCount returns the configured number of channels.
func (r *FixedIn[T]) ChannelCount() int { return r.e.ChannelCount() }

// SetRatio updates the resample ratio. The new value must stay within
// +-10% of the ratio the resampler was constructed with.
func (r *FixedIn[T]) SetRatio(newRatio float64) error { return r.e.SetRatio(newRatio) }

// SetRatioRelative updates the ratio to relRatio times the ratio the
// resampler was originally constructed with.
func (r *FixedIn[T]) SetRatioRelative(relRatio float64) error {
	return r.e.SetRatioRelative(relRatio)
}

// FixedOut is an asynchronous resampler that returns a fixed number of
// output frames per call. Query FramesNeeded before each call: the
// required input count drifts by a frame or two call to call.
type FixedOut[T Sample] struct {
	e *engine.FixedOut[T]
}

// NewFixedOut constructs a FixedOut resampler building its own sinc
// bank.
func NewFixedOut[T Sample](resampleRatio float64, parameters Parameters, chunkSize, nbrChannels int) *FixedOut[T] {
	return &FixedOut[T]{e: engine.NewFixedOut[T](resampleRatio, parameters.toEngine(), chunkSize, nbrChannels)}
}

// NewFixedOutWithInterpolator constructs a FixedOut resampler on top of
// an existing, possibly shared, interpolator.
func NewFixedOutWithInterpolator[T Sample](resampleRatio float64, interpolation InterpolationType, interpolator Interpolator[T], chunkSize, nbrChannels int) *FixedOut[T] {
	return &FixedOut[T]{e: engine.NewFixedOutWithInterpolator[T](resampleRatio, interpolation, interpolator, chunkSize, nbrChannels)}
}

// Process resamples one chunk of audio, allocating its own output.
func (r *FixedOut[T]) Process(waveIn [][]T) ([][]T, error) { return r.e.Process(waveIn) }

// ProcessInto resamples one chunk of audio into caller-supplied output
// buffers, avoiding a per-call allocation when the caller reuses them.
func (r *FixedOut[T]) ProcessInto(waveIn, waveOut [][]T) error {
	return r.e.ProcessInto(waveIn, waveOut)
}

// FramesNeeded returns how many input frames the next call requires.
func (r *FixedOut[T]) FramesNeeded() int { return r.e.FramesNeeded() }

// FramesOut returns chunk_size, the number of output frames every call
// produces.
func (r *FixedOut[T]) FramesOut() int { return r.e.FramesOut() }

// ChannelCount returns the configured number of channels.
func (r *FixedOut[T]) ChannelCount() int { return r.e.ChannelCount() }

// SetRatio updates the resample ratio. The new value must stay within
// +-10% of the ratio the resampler was constructed with.
func (r *FixedOut[T]) SetRatio(newRatio float64) error { return r.e.SetRatio(newRatio) }

// SetRatioRelative updates the ratio to relRatio times the ratio the
// resampler was originally constructed with.
func (r *FixedOut[T]) SetRatioRelative(relRatio float64) error {
	return r.e.SetRatioRelative(relRatio)
}

// errors.go re-exports the engine package's error sentinels and types
// so callers never need to import internal/engine directly.

package resample

import "github.com/gosinc/resample/internal/engine"

// Public error values for FixedIn / FixedOut operations.
var (
	// ErrWrongNumberOfChannels indicates an input slice of slices did not
	// carry one slice per configured channel.
	ErrWrongNumberOfChannels = engine.ErrWrongNumberOfChannels

	// ErrWrongNumberOfFrames indicates a non-empty input channel did not
	// carry the number of frames the engine required of it.
	ErrWrongNumberOfFrames = engine.ErrWrongNumberOfFrames

	// ErrWrongNumberOfOutputChannels indicates a caller-supplied output
	// buffer did not carry one slice per configured channel.
	ErrWrongNumberOfOutputChannels = engine.ErrWrongNumberOfOutputChannels

	// ErrWrongNumberOfOutputFrames indicates a caller-supplied output
	// buffer's channel did not have room for chunk_size frames.
	ErrWrongNumberOfOutputFrames = engine.ErrWrongNumberOfOutputFrames

	// ErrBadRatioUpdate indicates a ratio update fell outside the +-10%
	// band around the ratio the engine was constructed with.
	ErrBadRatioUpdate = engine.ErrBadRatioUpdate
)

// ChannelCountError reports a mismatch between the configured channel
// count and the number of slices a caller passed in.
type ChannelCountError = engine.ChannelCountError

// FrameCountError reports a mismatch between the frame count an engine
// required of one channel and what it was actually given.
type FrameCountError = engine.FrameCountError

// Package resample implements asynchronous sample-rate conversion by
// windowed-sinc interpolation.
//
// The ratio between output and input sample rates is a real number
// fixed at construction time and adjustable afterwards within a +-10%
// band. Conversion proceeds by building a bank of precomputed sinc
// filters oversampled by a configurable factor, picking the nearest
// one or few of them for each output instant, and blending the result
// with a cheap micro-interpolator (nearest, linear, or cubic) to track
// the fractional phase between table entries.
//
// # Engines
//
// FixedIn accepts a fixed number of input frames per call and returns
// a variable number of output frames. FixedOut returns a fixed number
// of output frames per call; query FramesNeeded before each call for
// how many input frames it requires, since that count drifts by a
// frame or two as the fractional phase carries across calls.
//
// # Kernel selection
//
// Each engine picks the richest scalar-product kernel the running CPU
// supports once at construction and keeps using it for the engine's
// lifetime; see the internal/interp package for the selection order.
package resample

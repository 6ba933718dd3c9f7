// Package testsignal generates deterministic waveforms used to exercise
// the resampler engines without relying on embedded audio fixtures.
package testsignal

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/gosinc/resample/util"
)

const (
	VariantSilence      = "silence"
	VariantImpulse      = "impulse"
	VariantMultitone    = "multitone"
	VariantChirp        = "chirp"
	VariantImpulseTrain = "impulse_train"
)

var variants = []string{
	VariantSilence,
	VariantImpulse,
	VariantMultitone,
	VariantChirp,
	VariantImpulseTrain,
}

// Variants returns the list of signal variant names Generate accepts.
func Variants() []string {
	out := make([]string, len(variants))
	copy(out, variants)
	return out
}

// Generate produces a deterministic, single-channel test waveform of
// the requested variant, at the given sample rate, sampleCount samples
// long.
func Generate[T util.Sample](variant string, sampleRate, sampleCount int) ([]T, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("testsignal: invalid sample rate %d", sampleRate)
	}
	if sampleCount <= 0 {
		return nil, fmt.Errorf("testsignal: invalid sample count %d", sampleCount)
	}

	switch variant {
	case VariantSilence:
		return make([]T, sampleCount), nil
	case VariantImpulse:
		return impulse[T](sampleCount), nil
	case VariantMultitone:
		return multitone[T](sampleRate, sampleCount), nil
	case VariantChirp:
		return chirp[T](sampleRate, sampleCount), nil
	case VariantImpulseTrain:
		return impulseTrain[T](sampleRate, sampleCount), nil
	default:
		return nil, fmt.Errorf("testsignal: unknown variant %q", variant)
	}
}

func impulse[T util.Sample](n int) []T {
	out := make([]T, n)
	out[n/2] = 1
	return out
}

// multitone is a three-tone amplitude-modulated signal, grounded on the
// AM-multisine generator used for codec regression fixtures: three
// carriers beating against slow modulators, with a short cubic onset
// ramp to avoid a step discontinuity at sample 0.
func multitone[T util.Sample](sampleRate, n int) []T {
	out := make([]T, n)
	freqs := []float64{440, 1000, 2000}
	modFreqs := []float64{1.3, 2.7, 0.9}
	const amp = 0.3
	onset := int(0.010 * float64(sampleRate))
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		var val float64
		for fi, f := range freqs {
			modDepth := 0.5 + 0.5*math.Sin(2*math.Pi*modFreqs[fi]*t)
			val += amp * modDepth * math.Sin(2*math.Pi*f*t)
		}
		if i < onset && onset > 0 {
			frac := float64(i) / float64(onset)
			val *= frac * frac * frac
		}
		out[i] = T(clip(val))
	}
	return out
}

// chirp sweeps exponentially from 60 Hz to 12 kHz, exercising the
// resampler's passband edge across the conversion.
func chirp[T util.Sample](sampleRate, n int) []T {
	out := make([]T, n)
	duration := float64(n) / float64(sampleRate)
	if duration <= 0 {
		return out
	}
	const f0, f1 = 60.0, 12000.0
	k := math.Log(f1/f0) / duration
	rampSamples := int(0.005 * float64(sampleRate))
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		phase := 2 * math.Pi * f0 * (math.Exp(k*t) - 1) / k
		env := 0.2 + 0.8*(0.5+0.5*math.Sin(2*math.Pi*0.41*t))
		val := 0.85 * env * math.Sin(phase)
		if i < rampSamples && rampSamples > 0 {
			val *= float64(i) / float64(rampSamples)
		}
		out[i] = T(clip(val))
	}
	return out
}

func impulseTrain[T util.Sample](sampleRate, n int) []T {
	out := make([]T, n)
	period := int(0.035 * float64(sampleRate))
	if period < 4 {
		period = 4
	}
	decayT := 0.0035 * float64(sampleRate)
	ringSamples := int(0.015 * float64(sampleRate))
	for i := 0; i < n; i++ {
		pos := i % period
		var val float64
		if pos == 0 {
			val = 0.92
		}
		if pos < ringSamples {
			ring := math.Exp(-float64(pos)/decayT) * math.Sin(2*math.Pi*540*float64(pos)/float64(sampleRate))
			val += 0.75 * ring
		}
		val += 0.02 * deterministicNoise(i, 17)
		out[i] = T(clip(val))
	}
	return out
}

func deterministicNoise(sampleIdx, salt int) float64 {
	x := uint32(sampleIdx*1664525 + salt*2246822519)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return float64(int32(x)) / 2147483647.0
}

func clip(v float64) float64 {
	if v > 0.98 {
		return 0.98
	}
	if v < -0.98 {
		return -0.98
	}
	return v
}

// HashFloat64LE returns the SHA-256 of samples' little-endian IEEE-754
// bit patterns, for regression-checking resampled output without
// checking exact values into the repository.
func HashFloat64LE(samples []float64) string {
	h := sha256.New()
	var b [8]byte
	for _, s := range samples {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(s))
		_, _ = h.Write(b[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// HashFloat32LE returns the SHA-256 of samples' little-endian IEEE-754
// bit patterns.
func HashFloat32LE(samples []float32) string {
	h := sha256.New()
	var b [4]byte
	for _, s := range samples {
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(s))
		_, _ = h.Write(b[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

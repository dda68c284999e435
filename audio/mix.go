// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Combine overlays a set of stems into a single reference mix by
// additive summation aligned at frame zero.
//
// The mix inherits its frame count, sample rate and channel layout
// from the first stem: shorter stems are zero-padded past their end,
// longer stems are truncated. Callers that need a deterministic
// reference stem must order the slice themselves (folder discovery
// sorts by filename).
//
// All stems must share one sample rate; mismatches return
// ErrSampleRateMismatch before any summation happens. A mono stem is
// duplicated across the reference channels, a multi-channel stem is
// averaged down onto a mono reference; other layout combinations
// return ErrChannelLayout.
func Combine(stems []Stem) (Stem, error) {
	if len(stems) == 0 {
		return Stem{}, ErrEmptyStemSet
	}

	ref := stems[0]
	channels := ref.Channels
	frames := ref.Frames()

	for _, stem := range stems {
		if stem.SampleRate != ref.SampleRate {
			return Stem{}, fmt.Errorf("%w: %s is %d Hz, %s is %d Hz",
				ErrSampleRateMismatch, stem.Name, stem.SampleRate, ref.Name, ref.SampleRate)
		}

		if stem.Channels != channels && stem.Channels != 1 && channels != 1 {
			return Stem{}, fmt.Errorf("%w: %s has %d channels, %s has %d",
				ErrChannelLayout, stem.Name, stem.Channels, ref.Name, channels)
		}
	}

	mix := Stem{
		Name:       "mix",
		SampleRate: ref.SampleRate,
		Channels:   channels,
		Samples:    make([]float32, frames*channels),
	}

	for _, stem := range stems {
		overlay(mix.Samples, stem, channels, frames)
	}

	return mix, nil
}

// overlay sums stem onto dst, reconciling channel layouts frame by
// frame. dst holds frames*channels interleaved samples.
func overlay(dst []float32, stem Stem, channels, frames int) {
	n := stem.Frames()
	if n > frames {
		n = frames
	}

	switch {
	case stem.Channels == channels:
		for i := range n * channels {
			dst[i] += stem.Samples[i]
		}
	case stem.Channels == 1:
		// Mono onto multi-channel: duplicate into every channel.
		for f := range n {
			v := stem.Samples[f]
			base := f * channels
			for c := range channels {
				dst[base+c] += v
			}
		}
	default:
		// Multi-channel onto mono: average the frame.
		inv := float32(1.0) / float32(stem.Channels)
		for f := range n {
			sum := float32(0)
			base := f * stem.Channels
			for c := range stem.Channels {
				sum += stem.Samples[base+c]
			}
			dst[f] += sum * inv
		}
	}
}

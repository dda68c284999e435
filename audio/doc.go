// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoded-audio primitives the normalizer
// is built from.
//
// # Source and Stem
//
// Decoders produce a streaming Source; ReadAll collects a whole Source
// into a Stem, the unit the rest of the pipeline works with:
//
//	decoder := wav.Decoder{}
//	src, _ := decoder.Decode(file)
//	stem, _ := audio.ReadAll(src, "drums.wav")
//
// Samples are interleaved float32 in [-1.0, 1.0]:
//   - 0.0 is silence
//   - ±1.0 is full scale
//
// Gain application may push samples outside that range; clamping only
// happens when samples are converted back to integer PCM on export.
//
// # Combining
//
// Combine overlays a stem set into one reference mix by additive,
// frame-aligned summation:
//
//	mix, err := audio.Combine(stems)
//
// The first stem fixes the mix duration and channel layout. An empty
// set and mismatched sample rates are errors, never silent defaults.
//
// # Gain
//
// GainToReach and ApplyGain implement the decibel arithmetic:
//
//	gain := audio.GainToReach(measured, target) // target - measured
//	louder := audio.ApplyGain(stem, gain)       // scales by 10^(gain/20)
//
// # Format Registry
//
// The Registry maps file extensions to decoders and backs folder
// discovery:
//
//	registry := audio.NewRegistry()
//	registry.Register(".wav", wav.Decoder{})
//	decoder, ok := registry.Get(".wav")
package audio

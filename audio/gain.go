// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// GainToReach returns the gain in dB that moves a measured loudness to
// the target loudness. Loudness is already logarithmic, so the
// correction is a plain subtraction.
func GainToReach(measured, target float64) float64 {
	return target - measured
}

// ApplyGain returns a copy of stem with every sample scaled by
// 10^(gainDB/20). Metadata (name, sample rate, channel count) is
// preserved.
//
// No clipping or limiting is applied here: samples may leave [-1,1]
// and stay that way until PCM encoding clamps them.
func ApplyGain(stem Stem, gainDB float64) Stem {
	scale := float32(math.Pow(10, gainDB/20))

	out := Stem{
		Name:       stem.Name,
		SampleRate: stem.SampleRate,
		Channels:   stem.Channels,
		Samples:    make([]float32, len(stem.Samples)),
	}

	for i, s := range stem.Samples {
		out.Samples[i] = s * scale
	}

	return out
}

// SPDX-License-Identifier: EPL-2.0

package loudness

import (
	"fmt"

	r128 "github.com/cwbudde/algo-dsp/measure/loudness"

	"github.com/stemforge/stemnorm/audio"
)

// Measure returns the integrated loudness of stem in LUFS per
// ITU-R BS.1770 / EBU R128.
//
// The meter is constructed calibrated to the stem's own sample rate
// and channel count, so the calibration invariant of §BS.1770 holds by
// construction. A stem with a non-positive sample rate or channel
// count is a caller bug and panics. Silence measures -Inf.
func Measure(stem audio.Stem) float64 {
	if stem.SampleRate <= 0 {
		panic(fmt.Sprintf("loudness: invalid sample rate %d", stem.SampleRate))
	}

	if stem.Channels <= 0 {
		panic(fmt.Sprintf("loudness: invalid channel count %d", stem.Channels))
	}

	meter := r128.NewMeter(
		r128.WithSampleRate(float64(stem.SampleRate)),
		r128.WithChannels(stem.Channels),
	)
	meter.StartIntegration()

	// Feed whole frames in chunks; a trailing partial frame is dropped.
	const chunkFrames = 4096

	block := make([]float64, chunkFrames*stem.Channels)
	frames := stem.Frames()

	for f := 0; f < frames; f += chunkFrames {
		n := min(chunkFrames, frames-f)
		for i := range n * stem.Channels {
			block[i] = float64(stem.Samples[f*stem.Channels+i])
		}

		meter.ProcessBlock(block[:n*stem.Channels])
	}

	return meter.Integrated()
}

// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"math"
	"os"

	"github.com/stemforge/stemnorm/audio"
	"github.com/stemforge/stemnorm/formats/wav"
)

// SineStem builds a fully decoded stem carrying a pure tone of the
// given frequency and peak amplitude on every channel.
func SineStem(name string, sampleRate, channels, frames int, frequency float64, amplitude float32) audio.Stem {
	stem := audio.Stem{
		Name:       name,
		SampleRate: sampleRate,
		Channels:   channels,
		Samples:    make([]float32, frames*channels),
	}

	for f := range frames {
		t := float64(f) / float64(sampleRate)
		v := amplitude * float32(math.Sin(2*math.Pi*frequency*t))
		for ch := range channels {
			stem.Samples[f*channels+ch] = v
		}
	}

	return stem
}

// ConstantStem builds a stem where every sample has the same value.
func ConstantStem(name string, sampleRate, channels, frames int, value float32) audio.Stem {
	stem := audio.Stem{
		Name:       name,
		SampleRate: sampleRate,
		Channels:   channels,
		Samples:    make([]float32, frames*channels),
	}

	for i := range stem.Samples {
		stem.Samples[i] = value
	}

	return stem
}

// WriteStemWAV writes stem to path as 16-bit PCM WAV.
func WriteStemWAV(path string, stem audio.Stem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := wav.Encode(f, stem); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}

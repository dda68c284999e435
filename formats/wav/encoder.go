// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/stemforge/stemnorm/audio"
	"github.com/stemforge/stemnorm/utils"
)

// Encode writes stem to ws as 16-bit PCM WAV, preserving the stem's
// sample rate and channel layout.
//
// This is the one place gain-adjusted audio gets clamped: samples
// outside [-1,1] clip to full scale during the int16 conversion.
func Encode(ws io.WriteSeeker, stem audio.Stem) error {
	enc := gowav.NewEncoder(ws, stem.SampleRate, 16, stem.Channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: stem.Channels,
			SampleRate:  stem.SampleRate,
		},
		SourceBitDepth: 16,
		Data:           make([]int, len(stem.Samples)),
	}

	for i, s := range stem.Samples {
		buf.Data[i] = int(utils.Float32ToInt16(s))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav file: %w", err)
	}

	return nil
}

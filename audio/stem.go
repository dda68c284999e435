// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Stem is one fully decoded audio track. Samples are interleaved
// float32 values in [-1,1].
//
// A Stem is treated as immutable once loaded: operations such as
// ApplyGain return a new value instead of mutating in place.
type Stem struct {
	Name       string
	SampleRate int
	Channels   int
	Samples    []float32
}

// Frames returns the number of complete sample frames.
func (s Stem) Frames() int {
	if s.Channels <= 0 {
		return 0
	}

	return len(s.Samples) / s.Channels
}

// Duration returns the playing time of the stem.
func (s Stem) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(s.Frames()) / float64(s.SampleRate) * float64(time.Second))
}

// ReadAll drains src into a Stem named name. The source is read to
// io.EOF; it is not closed.
func ReadAll(src Source, name string) (Stem, error) {
	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}

	stem := Stem{
		Name:       name,
		SampleRate: src.SampleRate(),
		Channels:   src.Channels(),
	}

	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			stem.Samples = append(stem.Samples, buf[:n]...)
		}

		if err == io.EOF {
			return stem, nil
		}

		if err != nil {
			return Stem{}, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			// A (0, nil) read would otherwise loop forever.
			return stem, nil
		}
	}
}

// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/stemforge/stemnorm/audio"
)

type source struct {
	stream     *flac.Stream
	sampleRate int
	channels   int
	scale      float32
	pending    []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// FLAC decodes one frame at a time; keep leftovers between reads.
	for len(s.pending) == 0 {
		f, err := s.stream.ParseNext()
		if err == io.EOF {
			return 0, io.EOF
		}

		if err != nil {
			return 0, fmt.Errorf("parsing flac frame: %w", err)
		}

		s.interleave(f)
	}

	n := copy(dst, s.pending)
	s.pending = s.pending[n:]

	return n, nil
}

// interleave appends a decoded frame's planar subframes to pending as
// interleaved normalized samples.
func (s *source) interleave(f *frame.Frame) {
	if len(f.Subframes) < s.channels {
		return
	}

	frames := len(f.Subframes[0].Samples)

	for i := range frames {
		for ch := range s.channels {
			s.pending = append(s.pending, float32(f.Subframes[ch].Samples[i])/s.scale)
		}
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, ErrNotFlacFile
	}

	info := stream.Info
	if info == nil || info.SampleRate == 0 || info.NChannels == 0 {
		return nil, ErrUnsupportedFlacLayout
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      float32(int64(1) << (info.BitsPerSample - 1)),
	}, nil
}

package audio

import (
	"errors"
	"io"
)

// mockSource generates audio data for tests.
type mockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame, channel int) float32

	// readErr, if set, is returned once the first read happens.
	readErr error
}

func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

func newConstantSource(sampleRate, channels, totalFrames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

func newFailingSource(sampleRate, channels int) *mockSource {
	return &mockSource{
		sampleRate: sampleRate,
		channels:   channels,
		readErr:    errors.New("mock read failure"),
	}
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}

	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.totalFrames - m.generated; frames > remaining {
		frames = remaining
	}

	for f := range frames {
		idx := m.generated + f
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}

package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio data for tests. It satisfies the
// audio.Source interface (without importing it, to stay usable from
// the audio package's own tests).
type MockSource struct {
	sampleRate   int
	channels     int
	totalFrames  int
	generated    int
	waveform     func(frame, channel int) float32
}

// NewMockSource creates a mock source generating totalFrames frames
// from the given waveform function.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source generating a sine wave of the
// given frequency and amplitude on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64, amplitude float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return amplitude * float32(math.Sin(2*math.Pi*frequency*t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
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

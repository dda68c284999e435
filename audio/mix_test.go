// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func constantStem(name string, sampleRate, channels, frames int, value float32) Stem {
	stem := Stem{
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

func TestCombine_EmptySet(t *testing.T) {
	t.Parallel()

	_, err := Combine(nil)
	if !errors.Is(err, ErrEmptyStemSet) {
		t.Errorf("Combine(nil) error = %v, want ErrEmptyStemSet", err)
	}
}

func TestCombine_SingleStem(t *testing.T) {
	t.Parallel()

	stem := constantStem("vocals.wav", 44100, 2, 100, 0.3)

	mix, err := Combine([]Stem{stem})
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	if mix.SampleRate != 44100 {
		t.Errorf("mix.SampleRate = %d, want 44100", mix.SampleRate)
	}

	if mix.Channels != 2 {
		t.Errorf("mix.Channels = %d, want 2", mix.Channels)
	}

	if mix.Frames() != 100 {
		t.Errorf("mix.Frames() = %d, want 100", mix.Frames())
	}

	for i, s := range mix.Samples {
		if s != 0.3 {
			t.Fatalf("mix.Samples[%d] = %v, want 0.3", i, s)
		}
	}
}

func TestCombine_AdditiveSummation(t *testing.T) {
	t.Parallel()

	a := constantStem("a.wav", 8000, 1, 50, 0.2)
	b := constantStem("b.wav", 8000, 1, 50, 0.3)

	mix, err := Combine([]Stem{a, b})
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	for i, s := range mix.Samples {
		if math.Abs(float64(s-0.5)) > 1e-6 {
			t.Fatalf("mix.Samples[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestCombine_FirstStemFixesDuration(t *testing.T) {
	t.Parallel()

	short := constantStem("short.wav", 8000, 1, 10, 0.1)
	long := constantStem("long.wav", 8000, 1, 30, 0.1)

	mix, err := Combine([]Stem{short, long})
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	// The long stem is truncated to the first stem's 10 frames.
	if mix.Frames() != 10 {
		t.Errorf("mix.Frames() = %d, want 10", mix.Frames())
	}
}

func TestCombine_ShorterStemZeroPadded(t *testing.T) {
	t.Parallel()

	long := constantStem("long.wav", 8000, 1, 30, 0.2)
	short := constantStem("short.wav", 8000, 1, 10, 0.3)

	mix, err := Combine([]Stem{long, short})
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	if mix.Frames() != 30 {
		t.Fatalf("mix.Frames() = %d, want 30", mix.Frames())
	}

	for i := range 10 {
		if math.Abs(float64(mix.Samples[i]-0.5)) > 1e-6 {
			t.Fatalf("mix.Samples[%d] = %v, want 0.5 (overlap region)", i, mix.Samples[i])
		}
	}

	for i := 10; i < 30; i++ {
		if math.Abs(float64(mix.Samples[i]-0.2)) > 1e-6 {
			t.Fatalf("mix.Samples[%d] = %v, want 0.2 (tail past short stem)", i, mix.Samples[i])
		}
	}
}

func TestCombine_SampleRateMismatch(t *testing.T) {
	t.Parallel()

	a := constantStem("a.wav", 44100, 1, 10, 0.1)
	b := constantStem("b.wav", 48000, 1, 10, 0.1)

	_, err := Combine([]Stem{a, b})
	if !errors.Is(err, ErrSampleRateMismatch) {
		t.Errorf("Combine() error = %v, want ErrSampleRateMismatch", err)
	}
}

func TestCombine_MonoOntoStereo(t *testing.T) {
	t.Parallel()

	stereo := constantStem("stereo.wav", 8000, 2, 20, 0.1)
	mono := constantStem("mono.wav", 8000, 1, 20, 0.4)

	mix, err := Combine([]Stem{stereo, mono})
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	if mix.Channels != 2 {
		t.Fatalf("mix.Channels = %d, want 2", mix.Channels)
	}

	// Mono content lands on both channels.
	for i, s := range mix.Samples {
		if math.Abs(float64(s-0.5)) > 1e-6 {
			t.Fatalf("mix.Samples[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestCombine_StereoOntoMono(t *testing.T) {
	t.Parallel()

	mono := constantStem("mono.wav", 8000, 1, 20, 0.1)
	stereo := Stem{
		Name:       "stereo.wav",
		SampleRate: 8000,
		Channels:   2,
		Samples:    make([]float32, 40),
	}
	for f := range 20 {
		stereo.Samples[2*f] = 0.2   // left
		stereo.Samples[2*f+1] = 0.6 // right
	}

	mix, err := Combine([]Stem{mono, stereo})
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	if mix.Channels != 1 {
		t.Fatalf("mix.Channels = %d, want 1", mix.Channels)
	}

	// 0.1 + (0.2+0.6)/2 = 0.5
	for i, s := range mix.Samples {
		if math.Abs(float64(s-0.5)) > 1e-6 {
			t.Fatalf("mix.Samples[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestCombine_IncompatibleLayouts(t *testing.T) {
	t.Parallel()

	stereo := constantStem("stereo.wav", 8000, 2, 10, 0.1)
	quad := constantStem("quad.wav", 8000, 4, 10, 0.1)

	_, err := Combine([]Stem{stereo, quad})
	if !errors.Is(err, ErrChannelLayout) {
		t.Errorf("Combine() error = %v, want ErrChannelLayout", err)
	}
}

func TestCombine_OrderIndependentForEqualLengths(t *testing.T) {
	t.Parallel()

	a := constantStem("a.wav", 8000, 2, 40, 0.15)
	b := constantStem("b.wav", 8000, 2, 40, 0.25)

	ab, err := Combine([]Stem{a, b})
	if err != nil {
		t.Fatalf("Combine(a, b) error = %v", err)
	}

	ba, err := Combine([]Stem{b, a})
	if err != nil {
		t.Fatalf("Combine(b, a) error = %v", err)
	}

	for i := range ab.Samples {
		if math.Abs(float64(ab.Samples[i]-ba.Samples[i])) > 1e-6 {
			t.Fatalf("sample %d differs across orders: %v vs %v", i, ab.Samples[i], ba.Samples[i])
		}
	}
}

func TestCombine_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := constantStem("a.wav", 8000, 1, 10, 0.2)
	b := constantStem("b.wav", 8000, 1, 10, 0.3)

	if _, err := Combine([]Stem{a, b}); err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	for i, s := range a.Samples {
		if s != 0.2 {
			t.Fatalf("a.Samples[%d] = %v, input stem mutated", i, s)
		}
	}
}

// BenchmarkCombine benchmarks mixing four stereo stems.
func BenchmarkCombine(b *testing.B) {
	stems := []Stem{
		constantStem("a.wav", 44100, 2, 44100, 0.1),
		constantStem("b.wav", 44100, 2, 44100, 0.2),
		constantStem("c.wav", 44100, 2, 44100, 0.3),
		constantStem("d.wav", 44100, 2, 44100, 0.1),
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = Combine(stems)
	}
}

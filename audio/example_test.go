// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/stemforge/stemnorm/audio"
	"github.com/stemforge/stemnorm/internal/audiotest"
)

// Example_normalizeStems demonstrates the core normalization math:
// combine stems into a mix, compute one gain, apply it everywhere.
func Example_normalizeStems() {
	vocals := audiotest.ConstantStem("vocals.wav", 48000, 1, 48000, 0.2)
	drums := audiotest.ConstantStem("drums.wav", 48000, 1, 48000, 0.3)

	mix, err := audio.Combine([]audio.Stem{vocals, drums})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Mix frames: %d\n", mix.Frames())
	fmt.Printf("Mix peak: %.1f\n", mix.Samples[0])

	// Suppose the mix measured -20 LUFS and we want -14.
	gain := audio.GainToReach(-20, -14)
	fmt.Printf("Gain: %.1f dB\n", gain)

	adjusted := audio.ApplyGain(vocals, gain)
	fmt.Printf("Adjusted vocals peak: %.2f\n", adjusted.Samples[0])

	// Output:
	// Mix frames: 48000
	// Mix peak: 0.5
	// Gain: 6.0 dB
	// Adjusted vocals peak: 0.40
}

// ExampleGainToReach shows that the gain correction is a plain
// subtraction in the logarithmic domain.
func ExampleGainToReach() {
	fmt.Printf("%.1f dB\n", audio.GainToReach(-18.5, -14.0))
	fmt.Printf("%.1f dB\n", audio.GainToReach(-10.0, -14.0))

	// Output:
	// 4.5 dB
	// -4.0 dB
}

// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/stemforge/stemnorm/audio"
	"github.com/stemforge/stemnorm/formats/mp3"
)

// ExampleDecoder_Decode shows how to decode an MP3 file into a stem.
// The underlying decoder always yields stereo output.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	decoder := mp3.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	stem, err := audio.ReadAll(src, "input.mp3")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded %d frames at %d Hz, %d channels\n",
		stem.Frames(), stem.SampleRate, stem.Channels)
}

// ExampleDecoder_Decode_errorHandling shows rejection of non-MP3 input.
func ExampleDecoder_Decode_errorHandling() {
	decoder := mp3.Decoder{}

	_, err := decoder.Decode(bytes.NewReader([]byte("not an mp3 file")))
	if err != nil {
		fmt.Println("invalid MP3 input rejected")
	}

	// Output:
	// invalid MP3 input rejected
}

// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and 16-bit PCM encoding.
//
// Both directions go through github.com/go-audio/wav, so the decoder
// accepts arbitrary chunk layouts and the common PCM bit depths (8,
// 16, 24, 32) rather than just canonical 44-byte-header files.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source yielding float32 samples in
// [-1.0, 1.0]. Non-seekable readers are buffered in memory first.
//
// # Encoding
//
//	f, _ := os.Create("out.wav")
//	err := wav.Encode(f, stem)
//
// Encode always writes 16-bit PCM. Samples pushed outside [-1,1] by a
// positive gain are clamped here and nowhere earlier.
package wav

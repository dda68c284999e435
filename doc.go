// SPDX-License-Identifier: EPL-2.0

// Package stemnorm normalizes the loudness of audio stem folders.
//
// A stem set is one folder of related tracks (vocals, drums, bass, ...)
// that sum to a single mix. stemnorm combines the stems into that
// reference mix, measures its integrated loudness (EBU R128, in LUFS),
// computes the single gain that moves the mix to a target level, and
// applies that same gain to every stem, preserving the relative
// balance between them, before exporting the adjusted stems as 16-bit
// PCM WAV and verifying the written result.
//
// # Quick Start
//
//	report, err := stemnorm.Normalize(inputFolder, outputFolder, stemnorm.DefaultTarget)
//	if err != nil {
//	    // one of the stem folders failed; report covers what ran
//	}
//
// Each immediate subfolder of inputFolder is treated as one song's
// stem set and produces "<subfolder>_<target>LUFS" under outputFolder.
//
// # Packages
//
//   - audio: decoded-stem primitives (Stem, Combine, ApplyGain)
//   - loudness: integrated-loudness measurement
//   - formats/...: container decoders and the WAV encoder
//   - pipeline: per-folder processing, verification, folder driver
//
// # Supported Formats
//
// WAV, MP3, Ogg Vorbis, FLAC and AIFF decode natively. Files with
// .aac/.m4a extensions are recognized as stems but have no decoder
// wired in; encountering one fails that folder with a per-file error.
//
// Two frontends ship under cmd/: a command-line driver (stemnorm) and
// a desktop form (stemnorm-gui).
package stemnorm

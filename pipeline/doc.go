// SPDX-License-Identifier: EPL-2.0

// Package pipeline orchestrates batch loudness normalization of stem
// folders.
//
// One folder of stems is one unit of work:
//
//	result, err := pipeline.Process(folder, outputRoot, -14.0, status)
//	verdict, err := pipeline.Verify(result.OutputFolder, -14.0, status)
//
// Process discovers the audio files (by extension, case-insensitive,
// sorted by name), decodes them, sums them into a reference mix,
// measures the mix's integrated loudness, computes one gain value
// (target minus measured) and applies it uniformly to every stem,
// never per-stem, so the relative balance of the mix is preserved.
// It then writes the adjusted stems as 16-bit PCM WAV under their
// original filenames into "<folder>_<target>LUFS". Verify re-decodes
// the written files and checks the rebuilt mix lands within
// Tolerance (0.1 LU) of the target.
//
// Run drives Process + Verify over every immediate subfolder of an
// input root, sequentially, reporting progress after each folder:
//
//	report, err := pipeline.Run(input, output, -14.0, pipeline.Options{
//		Status:   func(f string, a ...any) { fmt.Printf(f+"\n", a...) },
//		Progress: func(done, total int) { ... },
//	})
//
// By default the first folder error aborts the run (the historical
// all-or-nothing behavior); Options.ContinueOnError records failures
// in the report and keeps going instead.
package pipeline

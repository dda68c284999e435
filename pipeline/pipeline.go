// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/stemforge/stemnorm/audio"
	"github.com/stemforge/stemnorm/formats/wav"
	"github.com/stemforge/stemnorm/loudness"
)

// Tolerance is the verification window around the target loudness, in
// loudness units.
const Tolerance = 0.1

// DefaultTarget is the default target loudness in LUFS, a common
// streaming-platform reference level.
const DefaultTarget = -14.0

// Status receives printf-style progress lines. Shells route it to
// stdout or to a log widget; a nil Status discards everything.
type Status func(format string, args ...any)

func ensureStatus(s Status) Status {
	if s != nil {
		return s
	}

	return func(string, ...any) {}
}

// Result is the outcome of processing one stem folder.
type Result struct {
	Folder        string
	OutputFolder  string
	Stems         int
	InputLoudness float64 // LUFS measured on the combined input mix
	Gain          float64 // dB applied uniformly to every stem
	Skipped       bool    // folder contained no recognized audio files
	Verification  Verdict
}

// Process runs the whole pipeline for one stem folder: discover and
// decode the stems, combine them into a reference mix, measure its
// integrated loudness, compute the single gain correction, apply it to
// every stem and write the adjusted stems as 16-bit PCM WAV into
// <outputRoot>/<base>_<target>LUFS.
//
// A folder without recognized audio files is reported as skipped, not
// as an error. Every stem keeps its original filename in the output
// folder; re-running overwrites.
func Process(stemsFolder, outputRoot string, target float64, status Status) (*Result, error) {
	status = ensureStatus(status)

	stems, err := discoverStems(DefaultRegistry(), stemsFolder)
	if err != nil {
		return nil, err
	}

	if len(stems) == 0 {
		status("No audio files found in %s", stemsFolder)
		return &Result{Folder: stemsFolder, Skipped: true}, nil
	}

	mix, err := audio.Combine(stems)
	if err != nil {
		return nil, err
	}

	measured := loudness.Measure(mix)
	if math.IsInf(measured, -1) {
		return nil, ErrSilentMix
	}

	status("Detected audio loudness: %.2f LUFS", measured)

	gain := audio.GainToReach(measured, target)
	status("Gain to apply to every stem: %.2f dB", gain)

	adjusted := make([]audio.Stem, len(stems))
	for i, stem := range stems {
		adjusted[i] = audio.ApplyGain(stem, gain)
	}

	outputFolder := filepath.Join(outputRoot, OutputFolderName(filepath.Base(stemsFolder), target))
	if err := os.MkdirAll(outputFolder, 0o755); err != nil {
		return nil, fmt.Errorf("creating output folder: %w", err)
	}

	for _, stem := range adjusted {
		if err := exportStem(stem, filepath.Join(outputFolder, stem.Name)); err != nil {
			return nil, err
		}
	}

	status("Adjusted stems saved to %s", outputFolder)

	return &Result{
		Folder:        stemsFolder,
		OutputFolder:  outputFolder,
		Stems:         len(stems),
		InputLoudness: measured,
		Gain:          gain,
		Verification:  VerdictInconclusive,
	}, nil
}

// OutputFolderName derives the output folder name for a stem folder
// and target, e.g. "mysong" at -14 LUFS becomes "mysong_-14.0LUFS".
// The target always carries a decimal point.
func OutputFolderName(base string, target float64) string {
	s := strconv.FormatFloat(target, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return base + "_" + s + "LUFS"
}

func exportStem(stem audio.Stem, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := wav.Encode(f, stem); err != nil {
		f.Close()
		return fmt.Errorf("exporting %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}

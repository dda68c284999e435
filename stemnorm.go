// SPDX-License-Identifier: EPL-2.0

package stemnorm

import "github.com/stemforge/stemnorm/pipeline"

// DefaultTarget is the default target loudness in LUFS.
const DefaultTarget = pipeline.DefaultTarget

// Normalize processes every stem subfolder of inputRoot into
// outputRoot at the given target loudness, with the historical
// stop-on-first-error behavior and no status output.
//
// For status lines, progress callbacks or per-folder error isolation,
// use pipeline.Run directly.
func Normalize(inputRoot, outputRoot string, target float64) (*pipeline.Report, error) {
	return pipeline.Run(inputRoot, outputRoot, target, pipeline.Options{})
}

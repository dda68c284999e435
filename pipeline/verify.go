// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"math"

	"github.com/stemforge/stemnorm/audio"
	"github.com/stemforge/stemnorm/loudness"
)

// Verify re-reads the stems already written to outputFolder, rebuilds
// the mix and re-measures its loudness. It decodes from disk rather
// than reusing the in-memory adjusted stems, so encode/decode
// round-trip drift counts against the tolerance.
//
// The verdict is Pass iff the re-measured loudness is within Tolerance
// of target. An empty output folder is Inconclusive.
func Verify(outputFolder string, target float64, status Status) (Verdict, error) {
	status = ensureStatus(status)

	stems, err := discoverStems(DefaultRegistry(), outputFolder)
	if err != nil {
		return VerdictInconclusive, err
	}

	if len(stems) == 0 {
		status("No stems to verify in %s", outputFolder)
		return VerdictInconclusive, nil
	}

	mix, err := audio.Combine(stems)
	if err != nil {
		return VerdictInconclusive, err
	}

	measured := loudness.Measure(mix)
	status("Combined loudness of output stems: %.2f LUFS", measured)

	if math.Abs(measured-target) <= Tolerance {
		return VerdictPass, nil
	}

	return VerdictFail, nil
}

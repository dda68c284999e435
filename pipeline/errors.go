// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"errors"
	"fmt"
)

// DecodeError reports that one specific file could not be decoded.
// It aborts processing of that file's folder; remaining stems in the
// folder are not processed without it.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ErrSilentMix indicates the combined mix measured -Inf LUFS; there is
// no finite gain that reaches any target from silence.
var ErrSilentMix = errors.New("combined mix is silent, nothing to normalize")

// Verdict is the outcome of verifying a written output folder.
type Verdict int

const (
	// VerdictInconclusive means verification could not measure
	// anything, e.g. the output folder was empty. Callers treat it as
	// a failure but it is logged distinctly.
	VerdictInconclusive Verdict = iota
	VerdictPass
	VerdictFail
)

func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "pass"
	case VerdictFail:
		return "fail"
	default:
		return "inconclusive"
	}
}

// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrEmptyStemSet indicates Combine was called with no stems.
	ErrEmptyStemSet = errors.New("stem set is empty")

	// ErrSampleRateMismatch indicates stems in one set disagree on
	// sample rate. Stems are never resampled implicitly.
	ErrSampleRateMismatch = errors.New("stems have mismatched sample rates")

	// ErrChannelLayout indicates channel layouts that cannot be
	// overlaid (anything other than equal counts or a mono side).
	ErrChannelLayout = errors.New("incompatible channel layouts")
)

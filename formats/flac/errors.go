// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the input is not a valid FLAC stream.
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedFlacLayout indicates a FLAC stream whose
	// STREAMINFO block could not be used.
	ErrUnsupportedFlacLayout = errors.New("unsupported FLAC layout")
)

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a valid AIFF file.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates an AIFF file whose common
	// chunk could not be used.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)

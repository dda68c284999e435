package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a valid WAV file.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a WAV file whose format chunk
	// could not be used.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
)

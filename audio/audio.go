// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"strings"
	"sync"
)

// Source is a stream of decoded PCM audio.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0
	// with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps file extensions (".wav", ".mp3", ...) to decoders.
//
// An extension may also be recognized without a decoder: such files are
// picked up by folder discovery, but decoding them reports an error
// attributable to the file.
type Registry struct {
	codecs     map[string]Decoder
	recognized map[string]bool

	mtx sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs:     make(map[string]Decoder),
		recognized: make(map[string]bool),
	}
}

// Register binds a decoder to a file extension. The extension is
// matched case-insensitively and must include the leading dot.
func (r *Registry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	ext = strings.ToLower(ext)
	r.codecs[ext] = d
	r.recognized[ext] = true
}

// Recognize marks an extension as a known audio type without binding a
// decoder to it.
func (r *Registry) Recognize(ext string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.recognized[strings.ToLower(ext)] = true
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(ext)]
	return d, ok
}

// Recognized reports whether ext belongs to the known audio extension set.
func (r *Registry) Recognized(ext string) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.recognized[strings.ToLower(ext)]
}

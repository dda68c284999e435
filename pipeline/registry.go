// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"github.com/stemforge/stemnorm/audio"
	"github.com/stemforge/stemnorm/formats/aiff"
	"github.com/stemforge/stemnorm/formats/flac"
	"github.com/stemforge/stemnorm/formats/mp3"
	"github.com/stemforge/stemnorm/formats/vorbis"
	"github.com/stemforge/stemnorm/formats/wav"
)

// DefaultRegistry returns a registry with every built-in decoder bound
// to its usual file extensions.
//
// .aac and .m4a are recognized stem extensions without a decoder (no
// pure-Go AAC decoder is wired in); discovery picks such files up and
// decoding them reports a per-file DecodeError.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register(".wav", wav.Decoder{})
	r.Register(".mp3", mp3.Decoder{})
	r.Register(".ogg", vorbis.Decoder{})
	r.Register(".flac", flac.Decoder{})
	r.Register(".aiff", aiff.Decoder{})
	r.Register(".aif", aiff.Decoder{})

	r.Recognize(".aac")
	r.Recognize(".m4a")

	return r
}

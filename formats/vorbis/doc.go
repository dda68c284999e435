// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via
// github.com/jfreymuth/oggvorbis. Samples come out of the library as
// float32 already, so no PCM conversion is involved.
package vorbis

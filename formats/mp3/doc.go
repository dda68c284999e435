// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio via github.com/hajimehoshi/go-mp3.
//
// The underlying decoder always emits stereo 16-bit PCM at the MP3's
// native sample rate; mono files arrive duplicated into both channels.
package mp3

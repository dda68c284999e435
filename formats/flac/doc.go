// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC audio via github.com/mewkiz/flac.
//
// Frames are parsed lazily and their planar subframes interleaved into
// the float32 sample stream; bit depth is normalized using the
// STREAMINFO metadata.
package flac

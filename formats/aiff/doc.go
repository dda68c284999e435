// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio via github.com/go-audio/aiff.
// PCM samples at 8, 16, 24 and 32 bits are normalized to float32.
package aiff

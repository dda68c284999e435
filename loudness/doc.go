// SPDX-License-Identifier: EPL-2.0

// Package loudness measures integrated loudness of decoded stems.
//
// It is a thin wrapper around the EBU R128 / ITU-R BS.1770 meter from
// github.com/cwbudde/algo-dsp. One call, one number:
//
//	lufs := loudness.Measure(mix)
//
// The value is the gated integrated loudness of the whole buffer, not
// a momentary or short-term reading. Measuring the same stem twice
// yields the identical value; the meter keeps no state between calls.
package loudness

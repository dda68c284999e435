package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clamping
// anything outside [-1, 1] to full scale.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

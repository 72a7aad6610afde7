package tachyoncore

// Normalize returns a new IntentDimensions-element vector with each
// element clamped to [-1.0, 1.0]. NaN elements pass through unchanged:
// a NaN input is not "out of range", it's not a number at all, so
// clamping leaves it as-is (matching Rust's f32::clamp semantics, which
// this package's Rust predecessor relied on).
func Normalize(vector [IntentDimensions]float32) [IntentDimensions]float32 {
	var out [IntentDimensions]float32
	for i, v := range vector {
		out[i] = clampUnit(v)
	}
	return out
}

func clampUnit(v float32) float32 {
	if v != v { // NaN
		return v
	}
	if v < -1.0 {
		return -1.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

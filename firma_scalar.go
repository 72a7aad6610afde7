package tachyoncore

// firmaPassesScalar is the reference implementation of the Firma gate:
// every element of vector must be finite and have absolute value no
// greater than 1.0. This is the semantics every SIMD fast path must be
// observationally equivalent to.
func firmaPassesScalar(vector *[IntentDimensions]float32) bool {
	for _, v := range vector {
		if v != v { // NaN: not finite, must reject
			return false
		}
		abs := v
		if abs < 0 {
			abs = -abs
		}
		// abs > 1.0 also catches +/-Inf, since Inf compares greater than
		// any finite bound.
		if abs > 1.0 {
			return false
		}
	}
	return true
}

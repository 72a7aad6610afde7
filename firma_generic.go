//go:build !amd64 && !arm64

package tachyoncore

// firmaPasses falls back to the scalar reference check on architectures
// with no SIMD fast path wired up.
func firmaPasses(vector *[IntentDimensions]float32) bool {
	return firmaPassesScalar(vector)
}

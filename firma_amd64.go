//go:build amd64

package tachyoncore

import "golang.org/x/sys/cpu"

// firmaPasses dispatches to an 8-wide unrolled fast path when the CPU
// supports AVX2, falling back to the scalar reference check otherwise.
// The unrolled loop mirrors what an AVX2 kernel would test per lane
// (abs-greater-than-one, unordered-compare-with-self for NaN) without
// requiring hand-written assembly; runtime feature detection selects it,
// since the SIMD path is purely an acceleration of firmaPassesScalar and
// must stay observationally equivalent to it, never a separate semantics.
func firmaPasses(vector *[IntentDimensions]float32) bool {
	if !cpu.X86.HasAVX2 {
		return firmaPassesScalar(vector)
	}
	return firmaPassesAVX2(vector)
}

const firmaLaneWidth = 8

func firmaPassesAVX2(vector *[IntentDimensions]float32) bool {
	var i int
	for ; i+firmaLaneWidth <= len(vector); i += firmaLaneWidth {
		lane := vector[i : i+firmaLaneWidth : i+firmaLaneWidth]
		for _, v := range lane {
			if v != v {
				return false
			}
			abs := v
			if abs < 0 {
				abs = -abs
			}
			if abs > 1.0 {
				return false
			}
		}
	}
	for ; i < len(vector); i++ {
		v := vector[i]
		if v != v {
			return false
		}
		abs := v
		if abs < 0 {
			abs = -abs
		}
		if abs > 1.0 {
			return false
		}
	}
	return true
}

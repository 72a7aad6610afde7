//go:build arm64

package tachyoncore

import "golang.org/x/sys/cpu"

// firmaPasses dispatches to a 4-wide unrolled fast path matching NEON's
// natural lane width when the CPU advertises ASIMD support, falling
// back to the scalar reference check otherwise.
func firmaPasses(vector *[IntentDimensions]float32) bool {
	if !cpu.ARM64.HasASIMD {
		return firmaPassesScalar(vector)
	}
	return firmaPassesNEON(vector)
}

const firmaLaneWidthNEON = 4

func firmaPassesNEON(vector *[IntentDimensions]float32) bool {
	var i int
	for ; i+firmaLaneWidthNEON <= len(vector); i += firmaLaneWidthNEON {
		lane := vector[i : i+firmaLaneWidthNEON : i+firmaLaneWidthNEON]
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

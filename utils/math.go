// Package utils contains shared math helpers.
package utils

import (
	"math/rand"
)

func MaxUint8(a, b uint8) uint8 {
	if a < b {
		return b
	}
	return a
}

func MinUint8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

// Math.pow( x, 2 ) is slow, this is faster
func Square(n float64) float64 {
	return n * n
}

// SampleRandomIntRange samples a random integer within a range given by [min, max]
// using the given rand.Rand
func SampleRandomIntRange(min, max int, r *rand.Rand) int {
	return r.Intn(max-min+1) + min
}

// SampleRandomFloat64Range samples a random float64 within a range given by [min, max)
// using the given rand.Rand
func SampleRandomFloat64Range(min, max float64, r *rand.Rand) float64 {
	return min + r.Float64()*(max-min)
}

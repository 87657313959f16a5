package orrery

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// vectorsEqual returns whether both vectors have the same dimension and equal
// components within 1e-9.
func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.EqualWithinAbs(a[i], b[i], 1e-9) {
			return false
		}
	}
	return true
}

// anglesEqual compares two angles in degrees modulo a full turn.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Mod(math.Abs(a-b), 360)
	if diff > 180 {
		diff = 360 - diff
	}
	if diff > 1e-8 {
		return false, fmt.Errorf("angles %f and %f differ by %f deg", a, b, diff)
	}
	return true, nil
}

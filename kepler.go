package orrery

import "math"

const (
	// maxKeplerIterations caps the Newton-Raphson loop. Eccentricities below
	// 0.99 converge well under this cap; hitting it returns the best estimate.
	maxKeplerIterations = 15
	// keplerToleranceε is the convergence threshold on the update, in radians.
	keplerToleranceε = 1e-12
)

// SolveEccentricAnomaly solves Kepler's equation M = E - e·sin(E) for the
// eccentric anomaly E via Newton-Raphson, starting from E₀ = M + e·sin(M).
// It never fails: after maxKeplerIterations the current estimate is returned
// regardless of the residual.
func SolveEccentricAnomaly(meanAnomaly, eccentricity float64) float64 {
	E := meanAnomaly + eccentricity*math.Sin(meanAnomaly)
	for i := 0; i < maxKeplerIterations; i++ {
		ΔE := (meanAnomaly - (E - eccentricity*math.Sin(E))) / (1 - eccentricity*math.Cos(E))
		E += ΔE
		if math.Abs(ΔE) < keplerToleranceε {
			break
		}
	}
	return E
}

package orrery

import "strings"

const (
	// verticalDampening compresses the inclination-driven component so orbits
	// stay visually legible at display scale. Presentation invariant, not a
	// physical one.
	verticalDampening = 0.5
)

// ToSceneCoordinates rescales a heliocentric AU position into scene units.
// The scale is the body's display orbit radius over its real semi-major axis;
// bodies without a display entry use the generic scale. Ecliptic Y becomes
// scene Z, and the vertical component is dampened. Side-effect-free and
// deterministic: the input vector is never modified.
func ToSceneCoordinates(name string, au []float64) []float64 {
	scale := sceneScale(name)
	return []float64{au[0] * scale, au[2] * scale * verticalDampening, au[1] * scale}
}

// ScenePosition is the composition callers use every frame: heliocentric
// position at the date, mapped into scene units.
func ScenePosition(name, date string) []float64 {
	return ToSceneCoordinates(name, HeliocentricPosition(name, date))
}

// sceneScale returns scene units per AU for the named body.
func sceneScale(name string) float64 {
	cfg := orreryConfig()
	body, err := CelestialBodyFromString(name)
	if err != nil || body.Elements.A == 0 {
		return cfg.genericScale
	}
	if r, ok := cfg.displayRadius(strings.ToLower(name)); ok {
		return r / body.Elements.A
	}
	if body.DisplayRadius > 0 {
		return body.DisplayRadius / body.Elements.A
	}
	return cfg.genericScale
}

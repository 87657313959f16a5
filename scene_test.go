package orrery

import (
	"testing"

	"github.com/gonum/floats"
)

func TestSceneAxisRemap(t *testing.T) {
	au := []float64{1, 2, 3}
	scale := Earth.DisplayRadius / Earth.Elements.A
	got := ToSceneCoordinates("earth", au)
	exp := []float64{1 * scale, 3 * scale * verticalDampening, 2 * scale}
	if !vectorsEqual(got, exp) {
		t.Fatalf("got %+v, expected %+v", got, exp)
	}
	// The input must not be modified.
	if !vectorsEqual(au, []float64{1, 2, 3}) {
		t.Fatal("input vector was mutated")
	}
}

func TestSceneFallbackScale(t *testing.T) {
	got := ToSceneCoordinates("vulcan", []float64{1, 0, 0})
	if !floats.EqualWithinAbs(got[0], defaultGenericScale, 1e-9) {
		t.Fatalf("unknown bodies must use the generic scale, got %f", got[0])
	}
}

func TestSceneDeterminism(t *testing.T) {
	au := []float64{0.3, -1.1, 0.02}
	if !vectorsEqual(ToSceneCoordinates("mars", au), ToSceneCoordinates("mars", au)) {
		t.Fatal("same input must map to the same scene position")
	}
}

func TestEarthSceneRadius(t *testing.T) {
	// Earth's display orbit radius is 40 scene units; in early January the
	// orbit is slightly inside the mean radius.
	S := ScenePosition("earth", "2000-01-01")
	if !floats.EqualWithinAbs(norm(S), 39.3, 0.4) {
		t.Fatalf("Earth scene radius %f, expected ~39.3", norm(S))
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := orreryConfig()
	if cfg.genericScale != defaultGenericScale {
		t.Fatalf("generic scale default %f", cfg.genericScale)
	}
	if cfg.maxDisplayRadius != defaultMaxDisplayRadius {
		t.Fatalf("max display radius default %f", cfg.maxDisplayRadius)
	}
	if cfg.VSOP87 {
		t.Fatal("VSOP87 must be off without a config file")
	}
}

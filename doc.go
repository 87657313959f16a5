// Package orrery computes visually-plausible heliocentric positions for
// solar-system bodies at arbitrary civil dates, maps them into display-scene
// coordinates, and stitches dated mission waypoints into continuous spacecraft
// trajectories.
//
// The planetary model is the standard low-precision Keplerian one: orbital
// elements at J2000.0 with constant per-century rates, Kepler's equation solved
// by Newton-Raphson, and a 3-1-3 rotation from the orbital plane into ecliptic
// coordinates. It is a first-order approximation meant for visualization, not a
// JPL-grade ephemeris. An optional VSOP87 mode (see config.go) upgrades the
// planets to full series when the data files are available.
//
// All functions are deterministic and free of shared mutable state: positions
// and trajectories are recomputed from their inputs on every call, so
// concurrent callers need no synchronization.
package orrery

package orrery

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/pluto"
)

// OrbitalElements defines a Keplerian element set at epoch J2000.0 with
// constant per-Julian-century rates, as in the low-precision planetary theory
// of Standish. Angles are in degrees, distances in AU. Eccentricity must stay
// in [0, 1): the tables below never encode a parabolic or hyperbolic orbit.
type OrbitalElements struct {
	A, ADot               float64 // semi-major axis, AU and AU/century
	E, EDot               float64 // eccentricity
	I, IDot               float64 // inclination to the ecliptic, degrees
	L, LDot               float64 // mean longitude, degrees
	LongPeri, LongPeriDot float64 // longitude of perihelion, degrees
	LongNode, LongNodeDot float64 // longitude of the ascending node, degrees
}

// At linearly extrapolates the element set to T Julian centuries past J2000.0.
// Rates are treated as constant; there are no second-order terms.
func (oe OrbitalElements) At(T float64) (a, e, i, L, longPeri, longNode float64) {
	a = oe.A + oe.ADot*T
	e = oe.E + oe.EDot*T
	i = oe.I + oe.IDot*T
	L = oe.L + oe.LDot*T
	longPeri = oe.LongPeri + oe.LongPeriDot*T
	longNode = oe.LongNode + oe.LongNodeDot*T
	return
}

// CelestialBody defines a body tracked by the engine.
type CelestialBody struct {
	Name          string
	DisplayRadius float64 // orbit radius in scene units, 0 for the Sun
	Elements      OrbitalElements
	vsop          int // VSOP87 planet index, -1 when not covered by the series
}

// String implements the Stringer interface.
func (c CelestialBody) String() string {
	return c.Name + " body"
}

// OrbitalPeriodDays returns the sidereal period implied by the mean longitude
// rate. The Sun (and any body without a rate) returns 0.
func (c CelestialBody) OrbitalPeriodDays() float64 {
	if c.Elements.LDot == 0 {
		return 0
	}
	return 360 * daysPerJulianCentury / c.Elements.LDot
}

// HeliocentricPosition returns the body's position at the given civil date as
// an {x, y, z} vector in AU, in ecliptic coordinates centered on the Sun.
//
// The element set is extrapolated to the date, the mean anomaly reduced from
// the mean longitude, Kepler's equation solved for the eccentric anomaly, and
// the in-plane position rotated into the ecliptic by the 3-1-3 composition of
// argument of perihelion, inclination and ascending node.
func (c CelestialBody) HeliocentricPosition(date string) []float64 {
	if c.Name == Sun.Name || c.Elements.A == 0 {
		return []float64{0, 0, 0}
	}
	jd := DateToJulianDay(date)
	if cfg := orreryConfig(); cfg.VSOP87 {
		if R, ok := c.vsop87Position(jd, cfg.VSOP87Dir); ok {
			return R
		}
	}
	T := (jd - J2000) / daysPerJulianCentury
	a, e, i, L, longPeri, longNode := c.Elements.At(T)
	M := Deg2rad(math.Mod(L-longPeri, 360))
	ω := Deg2rad(longPeri - longNode)
	E := SolveEccentricAnomaly(M, e)
	sinE, cosE := math.Sincos(E)
	ν := math.Atan2(math.Sqrt(1-e*e)*sinE, cosE-e)
	r := a * (1 - e*cosE)
	sinν, cosν := math.Sincos(ν)
	plane := []float64{r * cosν, r * sinν, 0}
	return Rot313Vec(-ω, -Deg2rad(i), -Deg2rad(longNode), plane)
}

var (
	vsopMu     sync.Mutex
	vsopLoaded = map[int]*planetposition.V87Planet{}
)

// vsop87Position returns the VSOP87 position in AU when the series covers this
// body and its data file loads; otherwise ok is false and the caller falls
// back to the Keplerian elements.
func (c CelestialBody) vsop87Position(jd float64, dir string) ([]float64, bool) {
	if c.Name == Pluto.Name {
		// Special case in Sonia Keys' Meeus: Pluto has its own self-contained theory.
		l, b, r := pluto.Heliocentric(jd)
		return eclipticXYZ(l.Rad(), b.Rad(), r), true
	}
	if c.vsop < 0 {
		return nil, false
	}
	vsopMu.Lock()
	planet, ok := vsopLoaded[c.vsop]
	if !ok {
		var err error
		planet, err = planetposition.LoadPlanetPath(c.vsop, dir)
		if err != nil {
			vsopMu.Unlock()
			return nil, false
		}
		vsopLoaded[c.vsop] = planet
	}
	vsopMu.Unlock()
	l, b, r := planet.Position2000(jd)
	return eclipticXYZ(l.Rad(), b.Rad(), r), true
}

// eclipticXYZ returns Cartesian ecliptic coordinates from longitude, latitude
// (radians) and radius.
func eclipticXYZ(l, b, r float64) []float64 {
	sB, cB := math.Sincos(b)
	sL, cL := math.Sincos(l)
	return []float64{r * cB * cL, r * cB * sL, r * sB}
}

// HeliocentricPosition returns the named body's position in AU at the given
// date. A body absent from the table returns the zero vector rather than
// failing: callers must treat the origin as the "unknown body" sentinel, since
// only the Sun legitimately sits there.
func HeliocentricPosition(name, date string) []float64 {
	body, err := CelestialBodyFromString(name)
	if err != nil {
		return []float64{0, 0, 0}
	}
	return body.HeliocentricPosition(date)
}

// CelestialBodyFromString returns the body from its name.
func CelestialBodyFromString(name string) (CelestialBody, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "ceres":
		return Ceres, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	case "pluto":
		return Pluto, nil
	default:
		return CelestialBody{}, fmt.Errorf("undefined body '%s'", name)
	}
}

// bodyNames lists every key CelestialBodyFromString accepts, in increasing
// orbit order. Used for config overrides and by the CLI.
var bodyNames = []string{"sun", "mercury", "venus", "earth", "mars", "ceres", "jupiter", "saturn", "uranus", "neptune", "pluto"}

/* Definitions. Element sets and rates are from the JPL approximate-positions
   tables (Standish), valid 1800-2050; good to arcminutes, which is plenty at
   display scale. */

// Sun is our closest star, and this frame's origin.
var Sun = CelestialBody{"Sun", 0, OrbitalElements{}, -1}

// Mercury is the fastest body in the table, e=0.206.
var Mercury = CelestialBody{"Mercury", 20, OrbitalElements{
	0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
	252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081}, planetposition.Mercury}

// Venus is poisonous.
var Venus = CelestialBody{"Venus", 30, OrbitalElements{
	0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
	181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418}, planetposition.Venus}

// Earth is home. These are Earth-Moon barycenter elements; the node row is
// zero by convention in the source table.
var Earth = CelestialBody{"Earth", 40, OrbitalElements{
	1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
	100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0}, planetposition.Earth}

// Mars is the vacation place.
var Mars = CelestialBody{"Mars", 50, OrbitalElements{
	1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
	-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343}, planetposition.Mars}

// Ceres represents the asteroid belt. No VSOP87 series; rates besides the
// mean longitude are negligible at display scale.
var Ceres = CelestialBody{"Ceres", 62, OrbitalElements{
	2.76750591, 0, 0.07582276, 0, 10.59338691, 0,
	249.94854855, 7821.39879271, 153.92345065, 0, 80.30553157, 0}, -1}

// Jupiter is big.
var Jupiter = CelestialBody{"Jupiter", 75, OrbitalElements{
	5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
	34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106}, planetposition.Jupiter}

// Saturn floats and that's really cool.
var Saturn = CelestialBody{"Saturn", 95, OrbitalElements{
	9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
	49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794}, planetposition.Saturn}

// Uranus is no joke.
var Uranus = CelestialBody{"Uranus", 115, OrbitalElements{
	19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939,
	313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589}, planetposition.Uranus}

// Neptune is the outermost planet.
var Neptune = CelestialBody{"Neptune", 135, OrbitalElements{
	30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372,
	-55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664}, planetposition.Neptune}

// Pluto is not a planet and had that down ranking coming.
var Pluto = CelestialBody{"Pluto", 150, OrbitalElements{
	39.48211675, -0.00031596, 0.24882730, 0.00005170, 17.14001206, 0.00004818,
	238.92903833, 145.20780515, 224.06891629, -0.04062942, 110.30393684, -0.01183482}, -1}

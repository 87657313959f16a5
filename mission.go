package orrery

import (
	"math"
	"os"

	kitlog "github.com/go-kit/kit/log"
)

const (
	// interpolatedPointsPerLeg is the number of in-between points generated
	// for each pair of consecutive waypoints.
	interpolatedPointsPerLeg = 20
	// legCurvatureRatio scales the sideways embellishment offset relative to
	// the length of the leg's straight chord.
	legCurvatureRatio = 0.18
)

// Waypoint defines a named, dated mission event. A waypoint either references
// a tracked body (the spacecraft is "at" that body on that date) or carries a
// heliocentric radial distance for legs beyond the tracked bodies, e.g. an
// interstellar cruise. Waypoints must be ordered by date and consecutive
// waypoints must not share the same date.
type Waypoint struct {
	Name     string
	Date     string  // YYYY-MM-DD
	Body     string  // reference body key; empty for deep-space legs
	RadialAU float64 // heliocentric distance when Body is empty or untracked
}

// Mission defines a spacecraft mission as an ordered waypoint sequence.
type Mission struct {
	Name      string
	Waypoints []Waypoint
	logger    kitlog.Logger
}

// NewMission returns a mission with a logfmt logger attached. Zero-value
// missions work too, they just build their trajectories silently.
func NewMission(name string, waypoints []Waypoint) Mission {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "mission", name)
	return Mission{name, waypoints, klog}
}

// Trajectory is an ordered sequence of scene points with parallel per-point
// dates, plus the index of each original waypoint into the sequence. Points
// are ordered by date; waypoint indices are strictly increasing.
type Trajectory struct {
	Points          [][]float64
	Dates           []string
	WaypointIndices []int
}

// Trajectory builds the mission's display path: the scene position of every
// waypoint, stitched together with interpolated in-between points. A mission
// with fewer than two waypoints yields an empty trajectory rather than
// failing; callers must check before rendering. The result is a pure function
// of the waypoints, recomputed on every call.
func (m Mission) Trajectory() Trajectory {
	var t Trajectory
	if len(m.Waypoints) < 2 {
		return t
	}
	pts := make([][]float64, len(m.Waypoints))
	var prev []float64
	for i, wp := range m.Waypoints {
		pts[i] = m.waypointScenePosition(wp, prev)
		prev = pts[i]
	}
	for i, wp := range m.Waypoints {
		t.WaypointIndices = append(t.WaypointIndices, len(t.Points))
		t.Points = append(t.Points, pts[i])
		t.Dates = append(t.Dates, wp.Date)
		if i == len(m.Waypoints)-1 {
			break
		}
		legPts, legDates := interpolateLeg(pts[i], pts[i+1], wp.Date, m.Waypoints[i+1].Date)
		t.Points = append(t.Points, legPts...)
		t.Dates = append(t.Dates, legDates...)
	}
	if m.logger != nil {
		m.logger.Log("level", "info", "subsys", "mission", "waypoints", len(m.Waypoints), "points", len(t.Points))
	}
	return t
}

// waypointScenePosition places one waypoint. Tracked bodies use the real
// orbital position at the waypoint date. Radial legs extrapolate outward along
// the previous point's direction, falling back to a fixed axis when that
// direction is degenerate, and are capped at the max display radius.
func (m Mission) waypointScenePosition(wp Waypoint, prev []float64) []float64 {
	if wp.Body != "" {
		if _, err := CelestialBodyFromString(wp.Body); err == nil {
			return ScenePosition(wp.Body, wp.Date)
		}
	}
	dir := []float64{1, 0, 0}
	if len(prev) == 3 {
		if u := unit(prev); norm(u) > 0 {
			dir = u
		}
	}
	cfg := orreryConfig()
	dist := wp.RadialAU * cfg.genericScale
	if dist > cfg.maxDisplayRadius {
		dist = cfg.maxDisplayRadius
	}
	return []float64{dir[0] * dist, dir[1] * dist, dir[2] * dist}
}

// interpolateLeg fills the gap between two waypoint positions with
// interpolatedPointsPerLeg points, linearly interpolating both the date and
// the position, then pushing each point sideways by a sine envelope peaking at
// the leg midpoint. The offset is a visual embellishment suggesting orbital
// curvature; it is NOT a physical flight path. Deterministic: same endpoints,
// same curve.
func interpolateLeg(p0, p1 []float64, d0, d1 string) (points [][]float64, dates []string) {
	jd0 := DateToJulianDay(d0)
	jd1 := DateToJulianDay(d1)
	chord := []float64{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
	span := norm(chord)
	perp := unit(cross(chord, []float64{0, 1, 0}))
	if norm(perp) == 0 {
		perp = unit(cross(chord, []float64{1, 0, 0}))
	}
	for j := 1; j <= interpolatedPointsPerLeg; j++ {
		f := float64(j) / float64(interpolatedPointsPerLeg+1)
		offset := math.Sin(math.Pi*f) * legCurvatureRatio * span
		pt := make([]float64, 3)
		for k := 0; k < 3; k++ {
			pt[k] = p0[k] + chord[k]*f + perp[k]*offset
		}
		points = append(points, pt)
		dates = append(dates, JulianDayToDateString(jd0+(jd1-jd0)*f))
	}
	return
}

// DateAtProgress linearly interpolates between the mission's first and last
// waypoint dates. Progress is clamped to [0, 1]. Degenerate missions return
// the empty string.
func (m Mission) DateAtProgress(progress float64) string {
	if len(m.Waypoints) < 2 {
		return ""
	}
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	jd0 := DateToJulianDay(m.Waypoints[0].Date)
	jd1 := DateToJulianDay(m.Waypoints[len(m.Waypoints)-1].Date)
	return JulianDayToDateString(jd0 + (jd1-jd0)*progress)
}

// WaypointProgressFractions returns each waypoint's position as a [0, 1]
// fraction of the mission's date span: first waypoint 0, last 1. Used to place
// markers along a scrubber. Degenerate missions return nil.
func (m Mission) WaypointProgressFractions() []float64 {
	if len(m.Waypoints) < 2 {
		return nil
	}
	jd0 := DateToJulianDay(m.Waypoints[0].Date)
	span := DateToJulianDay(m.Waypoints[len(m.Waypoints)-1].Date) - jd0
	fracs := make([]float64, len(m.Waypoints))
	if span <= 0 {
		return fracs
	}
	for i, wp := range m.Waypoints {
		fracs[i] = (DateToJulianDay(wp.Date) - jd0) / span
	}
	return fracs
}

package orrery

import (
	"fmt"
	"strings"
)

/* Historical mission catalog. Waypoint dates are the published encounter
   dates; radial legs carry the heliocentric distance at that date. */

// Voyager1 visited Jupiter and Saturn before leaving the heliosphere.
var Voyager1 = NewMission("Voyager 1", []Waypoint{
	{"Launch", "1977-09-05", "earth", 0},
	{"Jupiter flyby", "1979-03-05", "jupiter", 0},
	{"Saturn flyby", "1980-11-12", "saturn", 0},
	{"Interstellar space", "2012-08-25", "", 121.7},
})

// Voyager2 is the only spacecraft to have visited all four giant planets.
var Voyager2 = NewMission("Voyager 2", []Waypoint{
	{"Launch", "1977-08-20", "earth", 0},
	{"Jupiter flyby", "1979-07-09", "jupiter", 0},
	{"Saturn flyby", "1981-08-25", "saturn", 0},
	{"Uranus flyby", "1986-01-24", "uranus", 0},
	{"Neptune flyby", "1989-08-25", "neptune", 0},
	{"Interstellar space", "2018-11-05", "", 119.0},
})

// NewHorizons flew by Pluto and continued into the Kuiper belt.
var NewHorizons = NewMission("New Horizons", []Waypoint{
	{"Launch", "2006-01-19", "earth", 0},
	{"Jupiter gravity assist", "2007-02-28", "jupiter", 0},
	{"Pluto flyby", "2015-07-14", "pluto", 0},
	{"Arrokoth flyby", "2019-01-01", "", 43.4},
})

// Cassini took the long way to Saturn: two Venus assists, one Earth, one Jupiter.
var Cassini = NewMission("Cassini", []Waypoint{
	{"Launch", "1997-10-15", "earth", 0},
	{"Venus flyby 1", "1998-04-26", "venus", 0},
	{"Venus flyby 2", "1999-06-24", "venus", 0},
	{"Earth flyby", "1999-08-18", "earth", 0},
	{"Jupiter flyby", "2000-12-30", "jupiter", 0},
	{"Saturn orbit insertion", "2004-07-01", "saturn", 0},
	{"Grand Finale", "2017-09-15", "saturn", 0},
})

// Missions lists the full catalog in launch order.
var Missions = []Mission{Voyager2, Voyager1, Cassini, NewHorizons}

// MissionFromString returns the catalog mission from its name.
func MissionFromString(name string) (Mission, error) {
	switch strings.ToLower(name) {
	case "voyager 1", "voyager1":
		return Voyager1, nil
	case "voyager 2", "voyager2":
		return Voyager2, nil
	case "new horizons", "newhorizons":
		return NewHorizons, nil
	case "cassini":
		return Cassini, nil
	default:
		return Mission{}, fmt.Errorf("undefined mission '%s'", name)
	}
}

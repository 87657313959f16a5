package orrery

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	// J2000 is the reference epoch, as a Julian day.
	J2000 = 2451545.0
	// daysPerJulianCentury is the number of days per Julian century.
	daysPerJulianCentury = 36525.0
)

// DateToJulianDay converts a proleptic Gregorian "YYYY-MM-DD" date to a Julian
// day at 00:00 UTC, i.e. the returned value ends in .5 since Julian days
// increment at noon. Malformed strings yield a numerically stable but
// meaningless result; no error is returned.
func DateToJulianDay(date string) float64 {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return 0
	}
	y, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	d, _ := strconv.Atoi(parts[2])
	return julian.CalendarGregorianToJD(y, m, float64(d))
}

// JulianDayToDateString converts a Julian day back to a zero-padded
// "YYYY-MM-DD" civil date. The underlying conversion switches to the Julian
// calendar for days before the Gregorian reform, but every date this engine is
// fed postdates 1582 so only the Gregorian branch is exercised in practice.
func JulianDayToDateString(jd float64) string {
	y, m, d := julian.JDToCalendar(jd)
	return fmt.Sprintf("%04d-%02d-%02d", y, m, int(d))
}

// AdvanceDateString adds a possibly fractional, possibly negative number of
// days to the given civil date and returns the resulting civil date. A zero
// delta round-trips to the same date.
func AdvanceDateString(date string, deltaDays float64) string {
	return JulianDayToDateString(DateToJulianDay(date) + deltaDays)
}

// CurrentDateString returns today's UTC date, used to seed the simulation
// clock at startup.
func CurrentDateString() string {
	return time.Now().UTC().Format("2006-01-02")
}

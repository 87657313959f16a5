package orrery

import "time"

// SimulationClock is the caller-owned simulated "current date". The rendering
// loop owns exactly one of these, advances it once per frame tick, and passes
// the resulting date by value into the engine; the engine itself never holds
// clock state. Fractions of a day accumulate internally so sub-day frame
// advances are not lost to civil-date truncation.
type SimulationClock struct {
	jd            float64
	DaysPerSecond float64 // simulated days per real second
}

// NewSimulationClock returns a clock seeded at the given date, or at today's
// date when the string is empty.
func NewSimulationClock(start string, daysPerSecond float64) *SimulationClock {
	if start == "" {
		start = CurrentDateString()
	}
	return &SimulationClock{DateToJulianDay(start), daysPerSecond}
}

// Advance moves the clock by the simulated equivalent of the elapsed real
// time and returns the new civil date.
func (c *SimulationClock) Advance(elapsed time.Duration) string {
	c.jd += c.DaysPerSecond * elapsed.Seconds()
	return c.Date()
}

// Date returns the clock's current civil date.
func (c *SimulationClock) Date() string {
	return JulianDayToDateString(c.jd)
}

// JulianDay returns the clock's exact position, including the day fraction.
func (c *SimulationClock) JulianDay() float64 {
	return c.jd
}

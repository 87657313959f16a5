package orrery

import (
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestKnownJulianDays(t *testing.T) {
	for _, c := range []struct {
		date string
		jd   float64
	}{
		{"2000-01-01", 2451544.5},
		{"1970-01-01", 2440587.5},
		{"1582-10-15", 2299160.5},
		{"1999-12-31", 2451543.5},
		{"2100-03-01", 2488128.5},
	} {
		if jd := DateToJulianDay(c.date); !floats.EqualWithinAbs(jd, c.jd, 1e-9) {
			t.Fatalf("%s: got JD %f, expected %f", c.date, jd, c.jd)
		}
	}
}

func TestJulianDayRoundTrip(t *testing.T) {
	for _, date := range []string{
		"1582-10-15", // first Gregorian day
		"1600-02-29",
		"1900-02-28",
		"1977-09-05",
		"2000-01-01",
		"2000-02-29",
		"2023-06-21",
		"2100-01-01", // 2100 is not a leap year
		"2400-02-29",
		"3000-12-31",
		"9999-01-01",
	} {
		if got := JulianDayToDateString(DateToJulianDay(date)); got != date {
			t.Fatalf("round trip failed: %s -> %s", date, got)
		}
	}
}

func TestLeapYearRule(t *testing.T) {
	// Divisible by 4, except centuries unless divisible by 400.
	if DateToJulianDay("2000-03-01")-DateToJulianDay("2000-02-29") != 1 {
		t.Fatal("2000 should be a leap year")
	}
	if DateToJulianDay("1900-03-01")-DateToJulianDay("1900-02-28") != 1 {
		t.Fatal("1900 should not be a leap year")
	}
	if DateToJulianDay("2024-03-01")-DateToJulianDay("2024-02-28") != 2 {
		t.Fatal("2024 should be a leap year")
	}
}

func TestMonotonicAdvance(t *testing.T) {
	for _, date := range []string{"1977-08-20", "2000-01-01", "2086-07-04"} {
		jd := DateToJulianDay(date)
		for n := 0.0; n <= 1500; n += 73 {
			if got := DateToJulianDay(AdvanceDateString(date, n)); !floats.EqualWithinAbs(got, jd+n, 1e-9) {
				t.Fatalf("advance %s by %f: got JD %f, expected %f", date, n, got, jd+n)
			}
		}
	}
}

func TestAdvanceDateString(t *testing.T) {
	for _, c := range []struct {
		date  string
		delta float64
		exp   string
	}{
		{"2000-01-01", 0, "2000-01-01"},
		{"2000-01-01", 0.25, "2000-01-01"},
		{"2000-01-01", 1.75, "2000-01-02"},
		{"2000-01-01", -1, "1999-12-31"},
		{"2000-01-01", -0.25, "1999-12-31"},
		{"2000-02-28", 1, "2000-02-29"},
		{"1900-02-28", 1, "1900-03-01"},
		{"2000-12-31", 1, "2001-01-01"},
	} {
		if got := AdvanceDateString(c.date, c.delta); got != c.exp {
			t.Fatalf("%s + %f days: got %s, expected %s", c.date, c.delta, got, c.exp)
		}
	}
}

func TestCurrentDateString(t *testing.T) {
	got := CurrentDateString()
	if _, err := time.Parse("2006-01-02", got); err != nil {
		t.Fatalf("current date %q is not YYYY-MM-DD: %s", got, err)
	}
	if AdvanceDateString(got, 0) != got {
		t.Fatalf("current date %q does not round trip", got)
	}
}

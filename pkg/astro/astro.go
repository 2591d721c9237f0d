// Package astro implements a low-precision solar ephemeris suitable for
// computing sun-angle crossing times. The formulas are the standard
// Julian-date based approximations (US Naval Observatory / NOAA style)
// and are accurate to well under a minute of time, which is tighter than
// the error bounds published for the calculation conventions that
// consume them.
package astro

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"

	"github.com/nbouziani/praytimes/pkg/dmath"
)

// Position holds the solar coordinates needed for hour-angle work at a
// single Julian instant.
type Position struct {
	Declination    unit.Angle // apparent declination of the Sun
	RightAscension unit.RA    // apparent right ascension
	Equation       float64    // equation of time, in hours
	Distance       float64    // Sun-Earth distance, AU; unused by time solving
}

// JulianDay returns the Julian day number for 0h UT on the given
// Gregorian calendar date.
func JulianDay(year int, month time.Month, day int) float64 {
	return julian.CalendarGregorianToJD(year, int(month), float64(day))
}

// SunPosition computes the Sun's position for a Julian day value.
// jd may carry a fractional day so callers can evaluate the ephemeris
// at an arbitrary instant, not just at midnight.
func SunPosition(jd float64) Position {
	d := jd - 2451545.0

	g := dmath.FixAngle(357.529 + 0.98560028*d) // mean anomaly
	q := dmath.FixAngle(280.459 + 0.98564736*d) // mean longitude
	// Ecliptic longitude with the two leading harmonic corrections.
	l := dmath.FixAngle(q + 1.915*dmath.Sin(g) + 0.020*dmath.Sin(2*g))

	r := 1.00014 - 0.01671*dmath.Cos(g) - 0.00014*dmath.Cos(2*g)
	e := 23.439 - 0.00000036*d // obliquity of the ecliptic

	ra := unit.RAFromHour(dmath.ArcTan2(dmath.Cos(e)*dmath.Sin(l), dmath.Cos(l)) / 15)
	eqt := q/15 - ra.Hour()
	decl := dmath.ArcSin(dmath.Sin(e) * dmath.Sin(l))

	return Position{
		Declination:    unit.AngleFromDeg(decl),
		RightAscension: ra,
		Equation:       eqt,
		Distance:       r,
	}
}

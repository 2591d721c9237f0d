// Package praytimes computes daily Islamic prayer times from a location,
// a calendar date, and a named calculation convention, using the
// low-precision solar ephemeris in pkg/astro. The computation is pure:
// a Calculator holds only configuration (settings and tuning offsets),
// and every call to Times produces a fresh schedule from its inputs.
//
// The Calculator is not safe for concurrent mutation; callers that
// reconfigure and compute from multiple goroutines must serialize access
// themselves.
package praytimes

import (
	"time"

	"github.com/nbouziani/praytimes/pkg/astro"
	"github.com/nbouziani/praytimes/pkg/timezone"
)

// TimeName identifies one of the nine entries of a computed schedule.
type TimeName string

const (
	Imsak    TimeName = "Imsak"
	Fajr     TimeName = "Fajr"
	Sunrise  TimeName = "Sunrise"
	Dhuhr    TimeName = "Dhuhr"
	Asr      TimeName = "Asr"
	Sunset   TimeName = "Sunset"
	Maghrib  TimeName = "Maghrib"
	Isha     TimeName = "Isha"
	Midnight TimeName = "Midnight"
)

// TimeNames lists the schedule entries in their daily order.
var TimeNames = []TimeName{Imsak, Fajr, Sunrise, Dhuhr, Asr, Sunset, Maghrib, Isha, Midnight}

// Offsets are per-time tuning adjustments in minutes, applied after all
// astronomical computation.
type Offsets map[TimeName]float64

// Date is a Gregorian calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Location is a geographic position. Elevation is in meters and only
// affects the geometric sunrise/sunset dip angle. Coordinates are not
// validated; out-of-range values propagate as NaN times.
type Location struct {
	Latitude  float64
	Longitude float64
	Elevation float64
}

// Calculator holds the session configuration: the active method name,
// the layered settings, and the tuning offsets.
type Calculator struct {
	method   string
	settings Settings
	offsets  Offsets
}

// New returns a Calculator configured for the named method. An unknown
// name falls back to DefaultMethod.
func New(method string) *Calculator {
	c := &Calculator{
		method:   DefaultMethod,
		settings: DefaultSettings(),
		offsets:  Offsets{},
	}
	for _, n := range TimeNames {
		c.offsets[n] = 0
	}
	if _, ok := Methods()[method]; !ok {
		method = DefaultMethod
	}
	c.SetMethod(method)
	return c
}

// SetMethod merges the named method's parameters onto the current
// settings and records it as active. Unknown names are ignored.
func (c *Calculator) SetMethod(name string) {
	m, ok := Methods()[name]
	if !ok {
		return
	}
	c.settings = c.settings.apply(m.Params)
	c.method = name
}

// Adjust merges the given fields onto the current settings,
// last-write-wins.
func (c *Calculator) Adjust(p Partial) {
	c.settings = c.settings.apply(p)
}

// Tune merges per-time minute offsets onto the tuning offsets.
func (c *Calculator) Tune(offsets Offsets) {
	for n, v := range offsets {
		c.offsets[n] = v
	}
}

// Method returns the active method name.
func (c *Calculator) Method() string { return c.method }

// Settings returns the current working settings.
func (c *Calculator) Settings() Settings { return c.settings }

// Offsets returns a copy of the current tuning offsets.
func (c *Calculator) Offsets() Offsets {
	out := make(Offsets, len(c.offsets))
	for n, v := range c.offsets {
		out[n] = v
	}
	return out
}

// Times computes the schedule for one day. utcOffset is the UTC offset
// in hours; dst adds one hour when set. The returned values are raw
// fractional hours of local clock time, unbounded and possibly NaN; use
// Schedule.Format or Schedule.Floats for display forms.
func (c *Calculator) Times(d Date, loc Location, utcOffset float64, dst bool) Schedule {
	tz := utcOffset
	if dst {
		tz++
	}
	s := solver{
		settings: c.settings,
		lat:      loc.Latitude,
		lng:      loc.Longitude,
		elv:      loc.Elevation,
		tz:       tz,
		// Anchor the Julian date at local solar midnight.
		jd: astro.JulianDay(d.Year, d.Month, d.Day) - loc.Longitude/(15*24),
	}
	return s.run(c.offsets)
}

// TimesIn computes the schedule with the UTC offset and DST flag
// resolved automatically from zone for the target date.
func (c *Calculator) TimesIn(d Date, loc Location, zone *time.Location) Schedule {
	offset, dst := timezone.Resolve(zone, d.Year, d.Month, d.Day)
	return c.Times(d, loc, offset, dst)
}

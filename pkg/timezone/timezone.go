// Package timezone derives UTC offsets and DST flags from host tzdata
// for callers that request automatic timezone resolution. It is a pure
// function of the zone database and the target date and knows nothing
// about the solver that consumes its output.
package timezone

import "time"

// Offset returns the UTC offset, in hours, in effect at local noon on
// the given date in zone.
func Offset(zone *time.Location, year int, month time.Month, day int) float64 {
	_, secs := time.Date(year, month, day, 12, 0, 0, 0, zone).Zone()
	return float64(secs) / 3600
}

// Standard returns the zone's non-DST UTC offset for a year: the smaller
// of the offsets at local noon on January 1 and July 1, which picks the
// winter offset in either hemisphere.
func Standard(zone *time.Location, year int) float64 {
	jan := Offset(zone, year, time.January, 1)
	jul := Offset(zone, year, time.July, 1)
	if jul < jan {
		return jul
	}
	return jan
}

// Resolve returns the standard UTC offset for the date's year and
// whether daylight saving is in effect on the date itself.
func Resolve(zone *time.Location, year int, month time.Month, day int) (offset float64, dst bool) {
	offset = Standard(zone, year)
	dst = Offset(zone, year, month, day) != offset
	return offset, dst
}

package praytimes

import (
	"math"

	"github.com/nbouziani/praytimes/pkg/astro"
	"github.com/nbouziani/praytimes/pkg/dmath"
)

// defaultIterations is how many refinement passes the solver runs over
// the day's schedule. The hour-angle solution converges so quickly from
// the nominal clock-hour seeds that a single pass lands within the
// one-minute error bounds of every published convention; more passes
// change results by well under a second.
const defaultIterations = 1

// nominal clock-hour seeds for the first solver pass.
var seedTimes = rawTimes{
	imsak:   5,
	fajr:    5,
	sunrise: 6,
	dhuhr:   12,
	asr:     13,
	sunset:  18,
	maghrib: 18,
	isha:    18,
}

// rawTimes carries one pass's schedule as fractional hours.
type rawTimes struct {
	imsak, fajr, sunrise, dhuhr, asr, sunset, maghrib, isha float64
}

// solver bundles the inputs of one computation. It is built fresh for
// every Times call and discarded afterwards.
type solver struct {
	settings Settings
	lat, lng float64
	elv      float64
	tz       float64 // effective UTC offset, DST included
	jd       float64 // Julian date at local solar midnight
}

// run produces the final schedule: iterate the hour-angle solution,
// shift to local clock time, correct for high latitudes, apply
// minute-offset rules and the midnight rule, then the tuning offsets.
func (s *solver) run(offsets Offsets) Schedule {
	t := seedTimes
	for i := 0; i < defaultIterations; i++ {
		t = s.round(t)
	}

	// Longitude correction to the local clock.
	shift := s.tz - s.lng/15
	t.imsak += shift
	t.fajr += shift
	t.sunrise += shift
	t.dhuhr += shift
	t.asr += shift
	t.sunset += shift
	t.maghrib += shift
	t.isha += shift

	if s.settings.HighLats != HighLatNone {
		t = s.adjustHighLats(t)
	}

	// Minute-offset rules replace their angle solutions.
	if s.settings.Imsak.IsMinutes() {
		t.imsak = t.fajr - s.settings.Imsak.Value()/60
	}
	if s.settings.Maghrib.IsMinutes() {
		t.maghrib = t.sunset + s.settings.Maghrib.Value()/60
	}
	if s.settings.Isha.IsMinutes() {
		t.isha = t.maghrib + s.settings.Isha.Value()/60
	}
	t.dhuhr += s.settings.Dhuhr.Value() / 60

	var midnight float64
	if s.settings.Midnight == MidnightJafari {
		midnight = t.sunset + timeDiff(t.sunset, t.fajr)/2
	} else {
		midnight = t.sunset + timeDiff(t.sunset, t.sunrise)/2
	}

	sched := Schedule{
		Imsak:    t.imsak,
		Fajr:     t.fajr,
		Sunrise:  t.sunrise,
		Dhuhr:    t.dhuhr,
		Asr:      t.asr,
		Sunset:   t.sunset,
		Maghrib:  t.maghrib,
		Isha:     t.isha,
		Midnight: midnight,
	}
	return sched.tune(offsets)
}

// round performs one refinement pass. Each time is re-solved at its own
// Julian instant (the previous estimate converted to a day fraction);
// the ephemeris is deliberately evaluated per time name, not once per
// day, matching the reference tables.
func (s *solver) round(t rawTimes) rawTimes {
	return rawTimes{
		imsak:   s.sunAngleTime(s.settings.Imsak.Value(), t.imsak/24, beforeNoon),
		fajr:    s.sunAngleTime(s.settings.Fajr.Value(), t.fajr/24, beforeNoon),
		sunrise: s.sunAngleTime(s.riseSetAngle(), t.sunrise/24, beforeNoon),
		dhuhr:   s.midDay(t.dhuhr / 24),
		asr:     s.asrTime(float64(s.settings.Asr), t.asr/24),
		sunset:  s.sunAngleTime(s.riseSetAngle(), t.sunset/24, afterNoon),
		maghrib: s.sunAngleTime(s.settings.Maghrib.Value(), t.maghrib/24, afterNoon),
		isha:    s.sunAngleTime(s.settings.Isha.Value(), t.isha/24, afterNoon),
	}
}

type direction int

const (
	afterNoon direction = iota
	beforeNoon
)

// midDay returns local apparent solar noon at the given day fraction.
func (s *solver) midDay(dayFrac float64) float64 {
	eqt := astro.SunPosition(s.jd + dayFrac).Equation
	return dmath.FixHour(12 - eqt)
}

// sunAngleTime solves the hour-angle equation for the time the sun
// reaches the given depression angle. When the angle is never reached at
// this latitude and date the arccos argument leaves [-1, 1] and the
// result is NaN, which propagates to the caller.
func (s *solver) sunAngleTime(angle, dayFrac float64, dir direction) float64 {
	decl := astro.SunPosition(s.jd + dayFrac).Declination.Deg()
	noon := s.midDay(dayFrac)
	t := (1 / 15.0) * dmath.ArcCos(
		(-dmath.Sin(angle)-dmath.Sin(decl)*dmath.Sin(s.lat))/
			(dmath.Cos(decl)*dmath.Cos(s.lat)))
	if dir == beforeNoon {
		return noon - t
	}
	return noon + t
}

// asrTime solves for the time the shadow of an object equals factor
// times its length plus its noon shadow.
func (s *solver) asrTime(factor, dayFrac float64) float64 {
	decl := astro.SunPosition(s.jd + dayFrac).Declination.Deg()
	angle := -dmath.ArcCot(factor + dmath.Tan(math.Abs(s.lat-decl)))
	return s.sunAngleTime(angle, dayFrac, afterNoon)
}

// riseSetAngle is the geometric horizon dip for sunrise/sunset,
// including the elevation term.
func (s *solver) riseSetAngle() float64 {
	return 0.833 + 0.0347*math.Sqrt(s.elv)
}

// adjustHighLats bounds the angle-based times into a night-length
// envelope around their sunrise/sunset anchors.
func (s *solver) adjustHighLats(t rawTimes) rawTimes {
	night := timeDiff(t.sunset, t.sunrise)

	t.imsak = s.boundTime(t.imsak, t.sunrise, s.settings.Imsak.Value(), night, beforeNoon)
	t.fajr = s.boundTime(t.fajr, t.sunrise, s.settings.Fajr.Value(), night, beforeNoon)
	t.isha = s.boundTime(t.isha, t.sunset, s.settings.Isha.Value(), night, afterNoon)
	t.maghrib = s.boundTime(t.maghrib, t.sunset, s.settings.Maghrib.Value(), night, afterNoon)
	return t
}

// boundTime replaces an undefined or out-of-envelope time with
// base ∓ portion, per the active high-latitude policy.
func (s *solver) boundTime(time, base, angle, night float64, dir direction) float64 {
	portion := s.nightPortion(angle, night)
	var diff float64
	if dir == beforeNoon {
		diff = timeDiff(time, base)
	} else {
		diff = timeDiff(base, time)
	}
	if math.IsNaN(time) || diff > portion {
		if dir == beforeNoon {
			return base - portion
		}
		return base + portion
	}
	return time
}

// nightPortion returns the maximum permissible distance from the anchor
// under the active policy.
func (s *solver) nightPortion(angle, night float64) float64 {
	portion := 1.0 / 2
	switch s.settings.HighLats {
	case HighLatAngleBased:
		portion = angle / 60
	case HighLatOneSeventh:
		portion = 1.0 / 7
	}
	return portion * night
}

// timeDiff returns b − a wrapped into [0, 24). The sign of the real
// difference is discarded; callers reason about wraparound themselves.
func timeDiff(a, b float64) float64 {
	return dmath.FixHour(b - a)
}

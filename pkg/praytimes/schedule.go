package praytimes

// Schedule is one day's computed times as raw fractional hours of local
// clock time. Values are unbounded (a time near the day boundary may
// fall outside [0, 24)) and NaN when undefined; normalization happens at
// formatting time only.
type Schedule struct {
	Imsak    float64
	Fajr     float64
	Sunrise  float64
	Dhuhr    float64
	Asr      float64
	Sunset   float64
	Maghrib  float64
	Isha     float64
	Midnight float64
}

// tune applies per-time minute offsets, returning the adjusted copy.
func (s Schedule) tune(offsets Offsets) Schedule {
	s.Imsak += offsets[Imsak] / 60
	s.Fajr += offsets[Fajr] / 60
	s.Sunrise += offsets[Sunrise] / 60
	s.Dhuhr += offsets[Dhuhr] / 60
	s.Asr += offsets[Asr] / 60
	s.Sunset += offsets[Sunset] / 60
	s.Maghrib += offsets[Maghrib] / 60
	s.Isha += offsets[Isha] / 60
	s.Midnight += offsets[Midnight] / 60
	return s
}

// At returns the schedule entry for a time name; NaN for an unknown name.
func (s Schedule) At(n TimeName) float64 {
	switch n {
	case Imsak:
		return s.Imsak
	case Fajr:
		return s.Fajr
	case Sunrise:
		return s.Sunrise
	case Dhuhr:
		return s.Dhuhr
	case Asr:
		return s.Asr
	case Sunset:
		return s.Sunset
	case Maghrib:
		return s.Maghrib
	case Isha:
		return s.Isha
	case Midnight:
		return s.Midnight
	}
	return nan
}

// Format renders every entry in the given clock format. NaN entries
// become the InvalidTime sentinel.
func (s Schedule) Format(f TimeFormat) map[TimeName]string {
	out := make(map[TimeName]string, len(TimeNames))
	for _, n := range TimeNames {
		out[n] = FormatTime(s.At(n), f)
	}
	return out
}

// Floats returns every entry quantized to the minute, the numeric
// rendition used for downstream arithmetic.
func (s Schedule) Floats() map[TimeName]float64 {
	out := make(map[TimeName]float64, len(TimeNames))
	for _, n := range TimeNames {
		out[n] = FloatTime(s.At(n))
	}
	return out
}

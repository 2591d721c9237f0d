package praytimes

// Settings is the active working configuration for a Calculator. After
// construction every field holds a defined value: defaults are layered
// first, then the selected method's parameters, then any caller
// overrides, each later layer winning field-by-field.
type Settings struct {
	Imsak    Rule // minutes before Fajr, or an angle
	Fajr     Rule // dawn angle
	Dhuhr    Rule // minute offset applied to solar noon
	Asr      AsrRule
	Maghrib  Rule // minute offset after sunset, or an angle
	Isha     Rule // angle, or minutes after Maghrib
	Midnight MidnightRule
	HighLats HighLatRule
}

// DefaultSettings returns the library defaults that every method is
// layered onto.
func DefaultSettings() Settings {
	return Settings{
		Imsak:    Minutes(10),
		Dhuhr:    Minutes(0),
		Asr:      AsrStandard,
		HighLats: HighLatNightMiddle,
	}
}

// Partial is a field-by-field override of Settings. Nil fields are left
// untouched when applied, so a Partial can express both a method's
// parameter set and an ad-hoc caller adjustment.
type Partial struct {
	Imsak    *Rule
	Fajr     *Rule
	Dhuhr    *Rule
	Asr      *AsrRule
	Maghrib  *Rule
	Isha     *Rule
	Midnight *MidnightRule
	HighLats *HighLatRule
}

// apply returns a copy of s with every non-nil field of p written over
// it. Settings values are never mutated in place.
func (s Settings) apply(p Partial) Settings {
	if p.Imsak != nil {
		s.Imsak = *p.Imsak
	}
	if p.Fajr != nil {
		s.Fajr = *p.Fajr
	}
	if p.Dhuhr != nil {
		s.Dhuhr = *p.Dhuhr
	}
	if p.Asr != nil {
		s.Asr = *p.Asr
	}
	if p.Maghrib != nil {
		s.Maghrib = *p.Maghrib
	}
	if p.Isha != nil {
		s.Isha = *p.Isha
	}
	if p.Midnight != nil {
		s.Midnight = *p.Midnight
	}
	if p.HighLats != nil {
		s.HighLats = *p.HighLats
	}
	return s
}

// Pointer helpers for building Partial literals.

// RuleP returns a pointer to r.
func RuleP(r Rule) *Rule { return &r }

// AsrP returns a pointer to a.
func AsrP(a AsrRule) *AsrRule { return &a }

// MidnightP returns a pointer to m.
func MidnightP(m MidnightRule) *MidnightRule { return &m }

// HighLatsP returns a pointer to h.
func HighLatsP(h HighLatRule) *HighLatRule { return &h }

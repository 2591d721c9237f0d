package praytimes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rule is a calculation rule value for one of the configurable times.
// It is either a solar depression angle in degrees (negative-below-horizon
// values are expressed as positive degrees here, matching the published
// method tables) or a fixed minute offset from a reference time. The
// variant is decided once, when the rule is constructed or parsed, so the
// solver never re-inspects strings.
type Rule struct {
	minutes bool
	value   float64
}

// Angle returns an angle-based rule, in degrees below the horizon.
func Angle(deg float64) Rule { return Rule{value: deg} }

// Minutes returns a fixed minute-offset rule relative to the rule's
// reference time (Fajr for Imsak, sunset for Maghrib, Maghrib for Isha).
func Minutes(min float64) Rule { return Rule{minutes: true, value: min} }

// ParseRule converts the catalog's string encoding into a Rule: a bare
// number is an angle in degrees, a "<number> min" string is a minute
// offset. An unparseable value becomes an angle of NaN, which propagates
// through the solver as an undefined time rather than an error.
func ParseRule(s string) Rule {
	return Rule{minutes: strings.Contains(s, "min"), value: leadingNumber(s)}
}

// leadingNumber extracts the leading signed decimal number of a rule
// string, NaN if there is none.
func leadingNumber(s string) float64 {
	i := 0
	for i < len(s) {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != '+' && c != '-' {
			break
		}
		i++
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// IsMinutes reports whether the rule is a fixed minute offset.
func (r Rule) IsMinutes() bool { return r.minutes }

// Value returns the numeric payload: degrees for angle rules, minutes
// for offset rules. The solver feeds this into the hour-angle equation
// either way; minute-offset results are replaced by their offset form in
// the adjustment pass, preserving the reference behavior exactly.
func (r Rule) Value() float64 { return r.value }

func (r Rule) String() string {
	if r.minutes {
		return fmt.Sprintf("%g min", r.value)
	}
	return strconv.FormatFloat(r.value, 'g', -1, 64)
}

// AsrRule is the jurisprudential shadow-length factor determining Asr.
type AsrRule float64

const (
	// AsrStandard is the Shafi'i/Maliki/Hanbali factor: shadow equals
	// object length.
	AsrStandard AsrRule = 1
	// AsrHanafi doubles the shadow length.
	AsrHanafi AsrRule = 2
)

// Shadow returns an AsrRule for a raw numeric shadow factor.
func Shadow(factor float64) AsrRule { return AsrRule(factor) }

// ParseAsrRule maps the conventional school names onto their factors;
// any other string is read as a raw numeric factor, NaN if unparseable.
func ParseAsrRule(s string) AsrRule {
	switch s {
	case "Standard":
		return AsrStandard
	case "Hanafi":
		return AsrHanafi
	}
	return AsrRule(leadingNumber(s))
}

// MidnightRule selects how the derived Midnight time is computed.
type MidnightRule string

const (
	MidnightStandard MidnightRule = "Standard" // midpoint of sunset to sunrise
	MidnightJafari   MidnightRule = "Jafari"   // midpoint of sunset to Fajr
)

// HighLatRule selects the correction policy for latitudes where the
// configured sun angle is never reached.
type HighLatRule string

const (
	HighLatNone        HighLatRule = "None"
	HighLatNightMiddle HighLatRule = "NightMiddle" // half the night
	HighLatOneSeventh  HighLatRule = "OneSeventh"  // 1/7 of the night
	HighLatAngleBased  HighLatRule = "AngleBased"  // angle/60 of the night
)

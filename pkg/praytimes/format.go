package praytimes

import (
	"fmt"
	"math"
	"strconv"

	"github.com/nbouziani/praytimes/pkg/dmath"
)

// TimeFormat selects the display representation of a computed time.
type TimeFormat string

const (
	Format24h   TimeFormat = "24h"
	Format12h   TimeFormat = "12h"
	FormatFloat TimeFormat = "Float"
)

// InvalidTime is returned for times that are undefined on the given day
// and latitude.
const InvalidTime = "-----"

var nan = math.NaN()

// defaultSuffixes are the 12h clock day-half markers.
var defaultSuffixes = [2]string{"AM", "PM"}

// FormatTime renders a fractional hour in the given format. Optional
// suffixes override the AM/PM markers for the 12h format. NaN renders
// as InvalidTime in every format.
func FormatTime(t float64, f TimeFormat, suffixes ...string) string {
	if math.IsNaN(t) {
		return InvalidTime
	}

	t = dmath.FixHour(t)
	hours := int(math.Floor(t))
	minutes := int(math.Floor((t - float64(hours)) * 60))

	switch f {
	case FormatFloat:
		return strconv.FormatFloat(FloatTime(t), 'g', -1, 64)
	case Format12h:
		suffix := defaultSuffixes[:]
		if len(suffixes) >= 2 {
			suffix = suffixes
		}
		half := suffix[1]
		if hours < 12 {
			half = suffix[0]
		}
		return fmt.Sprintf("%d:%02d %s", (hours+11)%12+1, minutes, half)
	default:
		return fmt.Sprintf("%02d:%02d", hours, minutes)
	}
}

// FloatTime quantizes a fractional hour to the minute after fix-hour
// normalization; NaN passes through unchanged.
func FloatTime(t float64) float64 {
	if math.IsNaN(t) {
		return t
	}
	t = dmath.FixHour(t)
	hours := math.Floor(t)
	minutes := math.Floor((t - hours) * 60)
	return hours + minutes/60
}

// Package hijri converts Gregorian calendar dates to the tabular Islamic
// calendar using the Kuwaiti algorithm, a 30-year intercalation cycle
// anchored at the astronomical Hijra epoch. Dates can differ from
// observation-based calendars by a day or two; the adjustment parameter
// lets callers shift the result to match local moon sighting.
package hijri

import (
	"math"
	"time"
)

// Date is a structured Islamic calendar date.
type Date struct {
	Weekday int // 1 = al-Ahad (Sunday) .. 7 = al-Sabt (Saturday)
	Day     int
	Month   int // 1 = Muharram .. 12 = Dhu al-Hijjah
	Year    int
}

var weekdayNames = [7]string{
	"Al-Ahad", "Al-Ithnain", "Al-Thulatha'", "Al-Arbi'a'",
	"Al-Khamees", "Al-Jumu'ah", "Al-Ssabt",
}

var monthNames = [12]string{
	"Muharram", "Safar", "Rabi' Al-Awwal", "Rabi' Al-Aakhir",
	"Jumada Al-Uola", "Jumada Al-Aakhirah", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Thu Al-Qa'dah", "Thu Al-Hijjah",
}

// WeekdayName returns the transliterated Arabic weekday name.
func (d Date) WeekdayName() string {
	if d.Weekday < 1 || d.Weekday > 7 {
		return ""
	}
	return weekdayNames[d.Weekday-1]
}

// MonthName returns the transliterated month name.
func (d Date) MonthName() string {
	if d.Month < 1 || d.Month > 12 {
		return ""
	}
	return monthNames[d.Month-1]
}

// FromGregorian converts a Gregorian date. adjustDays shifts the
// conversion by whole days before the calendar arithmetic, positive
// values moving the Islamic date forward.
func FromGregorian(year int, month time.Month, day int, adjustDays int) Date {
	y := year
	m := int(month)
	d := float64(day)
	if m < 3 {
		y--
		m += 12
	}

	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)
	if y < 1583 {
		b = 0
	}
	if y == 1582 {
		// The Julian-Gregorian changeover year.
		if m > 10 {
			b = -10
		}
		if m == 10 {
			b = 0
			if day > 4 {
				b = -10
			}
		}
	}

	jd := math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + d + b - 1524.5
	jd += float64(adjustDays)

	weekday := int(math.Mod(jd+1.5, 7)) + 1

	// 30-year tabular cycle: 10631 days per cycle, mean year 10631/30.
	const (
		epoch    = 1948084
		cycle    = 10631.0
		meanYear = cycle / 30
		shift    = 8.01 / 60
	)
	z := jd - epoch
	cycles := math.Floor(z / cycle)
	z -= cycle * cycles
	j := math.Floor((z - shift) / meanYear)
	iy := 30*cycles + j
	z -= math.Floor(j*meanYear + shift)
	im := math.Floor((z + 28.5001) / 29.5)
	if im == 13 {
		im = 12
	}
	id := z - math.Floor(29.5001*im-29)

	return Date{
		Weekday: weekday,
		Day:     int(id),
		Month:   int(im),
		Year:    int(iy),
	}
}

// Today converts the current date in the given zone.
func Today(zone *time.Location, adjustDays int) Date {
	y, m, d := time.Now().In(zone).Date()
	return FromGregorian(y, m, d, adjustDays)
}

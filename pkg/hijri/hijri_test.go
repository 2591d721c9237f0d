package hijri

import (
	"testing"
	"time"
)

func TestFromGregorian(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		want    Date
		weekday string
	}{
		{
			name: "Ramadan 1445 begins", year: 2024, month: time.March, day: 11,
			want:    Date{Weekday: 2, Day: 1, Month: 9, Year: 1445},
			weekday: "Al-Ithnain",
		},
		{
			name: "Muharram 1420 begins", year: 1999, month: time.April, day: 17,
			want:    Date{Weekday: 7, Day: 1, Month: 1, Year: 1420},
			weekday: "Al-Ssabt",
		},
		{
			name: "millennium day", year: 2000, month: time.January, day: 1,
			want:    Date{Weekday: 7, Day: 24, Month: 9, Year: 1420},
			weekday: "Al-Ssabt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromGregorian(tt.year, tt.month, tt.day, 0)
			if got != tt.want {
				t.Errorf("FromGregorian = %+v, expected %+v", got, tt.want)
			}
			if got.WeekdayName() != tt.weekday {
				t.Errorf("weekday name = %s, expected %s", got.WeekdayName(), tt.weekday)
			}
		})
	}
}

func TestAdjustmentShiftsDays(t *testing.T) {
	base := FromGregorian(2024, time.March, 11, 0)
	next := FromGregorian(2024, time.March, 11, 1)
	prev := FromGregorian(2024, time.March, 11, -1)

	if next.Day != base.Day+1 && next.Month == base.Month {
		t.Errorf("adjust +1: got day %d from %d", next.Day, base.Day)
	}
	if prev.Month != 8 {
		// One day before 1 Ramadan lands in Sha'ban.
		t.Errorf("adjust -1: got month %d, expected 8", prev.Month)
	}
	if prev.MonthName() != "Sha'ban" {
		t.Errorf("month name = %s, expected Sha'ban", prev.MonthName())
	}
}

func TestMonthNames(t *testing.T) {
	d := Date{Weekday: 1, Day: 1, Month: 9, Year: 1445}
	if d.MonthName() != "Ramadan" {
		t.Errorf("month 9 = %s, expected Ramadan", d.MonthName())
	}
	if (Date{Month: 0}).MonthName() != "" {
		t.Error("out-of-range month should have empty name")
	}
	if (Date{Weekday: 8}).WeekdayName() != "" {
		t.Error("out-of-range weekday should have empty name")
	}
}

package timezone

import (
	"testing"
	"time"
)

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	zone, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("tzdata for %s not available: %v", name, err)
	}
	return zone
}

func TestResolveUTC(t *testing.T) {
	offset, dst := Resolve(time.UTC, 2024, time.June, 15)
	if offset != 0 || dst {
		t.Errorf("UTC: offset=%v dst=%v, expected 0/false", offset, dst)
	}
}

func TestResolveNorthernHemisphere(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	if got := Standard(ny, 2024); got != -5 {
		t.Errorf("standard offset = %v, expected -5", got)
	}

	offset, dst := Resolve(ny, 2024, time.January, 15)
	if offset != -5 || dst {
		t.Errorf("January: offset=%v dst=%v, expected -5/false", offset, dst)
	}

	offset, dst = Resolve(ny, 2024, time.July, 15)
	if offset != -5 || !dst {
		t.Errorf("July: offset=%v dst=%v, expected -5/true", offset, dst)
	}
}

func TestResolveSouthernHemisphere(t *testing.T) {
	// Sydney observes DST around the new year; the standard offset must
	// still come out as the winter value.
	syd := mustZone(t, "Australia/Sydney")

	if got := Standard(syd, 2024); got != 10 {
		t.Errorf("standard offset = %v, expected 10", got)
	}

	offset, dst := Resolve(syd, 2024, time.January, 15)
	if offset != 10 || !dst {
		t.Errorf("January: offset=%v dst=%v, expected 10/true", offset, dst)
	}

	offset, dst = Resolve(syd, 2024, time.June, 15)
	if offset != 10 || dst {
		t.Errorf("June: offset=%v dst=%v, expected 10/false", offset, dst)
	}
}

func TestOffsetHalfHourZones(t *testing.T) {
	tehran := mustZone(t, "Asia/Tehran")
	if got := Offset(tehran, 2024, time.January, 15); got != 3.5 {
		t.Errorf("Tehran offset = %v, expected 3.5", got)
	}
}

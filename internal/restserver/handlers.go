package restserver

import (
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/nbouziani/praytimes/pkg/hijri"
	"github.com/nbouziani/praytimes/pkg/praytimes"
	"github.com/nbouziani/praytimes/pkg/timezone"
)

// GetTimings computes a day's schedule. The configured calculator is
// the base for every request; query parameters layer on top of it.
// Query parameters:
//
//	lat, lng            coordinates in decimal degrees, required unless
//	                    the configuration carries a default location
//	elevation           meters, default 0
//	date                YYYY-MM-DD, default today in the resolved zone
//	method              calculation method id, default from config
//	format              24h | 12h | Float, default from config
//	school              Standard | Hanafi | numeric shadow factor
//	highlats            None | NightMiddle | OneSeventh | AngleBased
//	timezone            numeric UTC offset or IANA name, default from config
//	fajr, isha, maghrib, imsak, dhuhr
//	                    rule overrides in catalog encoding ("18.5", "90 min")
func (c *Controller) GetTimings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	loc, ok := c.resolveLocation(q)
	if !ok {
		writeError(w, http.StatusBadRequest, "lat and lng are required decimal degrees")
		return
	}

	calc := c.cfg.Calculator()
	if method := q.Get("method"); method != "" {
		// Unknown names are a no-op, leaving the configured method.
		calc.SetMethod(method)
	}
	calc.Adjust(overridesFromQuery(q))

	zone, fixedOffset, isFixed := c.resolveZone(q.Get("timezone"))
	if zone == nil && !isFixed {
		writeError(w, http.StatusBadRequest, "unknown timezone")
		return
	}

	date, ok := c.resolveDate(q.Get("date"), zone)
	if !ok {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	var offset float64
	var dst bool
	if isFixed {
		offset, dst = fixedOffset, false
	} else {
		offset, dst = timezone.Resolve(zone, date.Year, date.Month, date.Day)
	}

	sched := calc.Times(date, loc, offset, dst)

	format := praytimes.TimeFormat(q.Get("format"))
	if format == "" {
		format = praytimes.TimeFormat(c.cfg.Format)
	}

	timings := make(map[string]any, len(praytimes.TimeNames))
	if format == praytimes.FormatFloat {
		for n, v := range sched.Floats() {
			if math.IsNaN(v) {
				// JSON has no NaN; undefined times become null.
				timings[string(n)] = nil
				continue
			}
			timings[string(n)] = v
		}
	} else {
		for n, v := range sched.Format(format) {
			timings[string(n)] = v
		}
	}

	h := hijri.FromGregorian(date.Year, date.Month, date.Day, c.cfg.HijriDays)
	effective := offset
	if dst {
		effective++
	}

	writeJSON(w, http.StatusOK, Response{
		Code:   http.StatusOK,
		Status: "OK",
		Data: TimingsData{
			Timings: timings,
			Date: DateInfo{
				Gregorian: time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
				Hijri: HijriInfo{
					Day:     h.Day,
					Month:   h.Month,
					Year:    h.Year,
					Weekday: h.WeekdayName(),
					Name:    h.MonthName(),
				},
			},
			Meta: Meta{
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
				Elevation: loc.Elevation,
				Timezone:  effective,
				DST:       dst,
				Method:    calc.Method(),
				Format:    string(format),
			},
		},
	})
}

// GetMethods lists the calculation method catalog.
func (c *Controller) GetMethods(w http.ResponseWriter, r *http.Request) {
	catalog := praytimes.Methods()
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]MethodInfo, 0, len(ids))
	for _, id := range ids {
		m := catalog[id]
		out = append(out, MethodInfo{
			ID:       id,
			Name:     m.Name,
			Fajr:     m.Params.Fajr.String(),
			Isha:     m.Params.Isha.String(),
			Maghrib:  m.Params.Maghrib.String(),
			Midnight: string(*m.Params.Midnight),
		})
	}
	writeJSON(w, http.StatusOK, Response{Code: http.StatusOK, Status: "OK", Data: out})
}

// overridesFromQuery turns per-time rule parameters into a Partial.
func overridesFromQuery(q map[string][]string) praytimes.Partial {
	var p praytimes.Partial
	get := func(k string) (praytimes.Rule, bool) {
		if v, ok := q[k]; ok && len(v) > 0 && v[0] != "" {
			return praytimes.ParseRule(v[0]), true
		}
		return praytimes.Rule{}, false
	}
	if r, ok := get("imsak"); ok {
		p.Imsak = praytimes.RuleP(r)
	}
	if r, ok := get("fajr"); ok {
		p.Fajr = praytimes.RuleP(r)
	}
	if r, ok := get("dhuhr"); ok {
		p.Dhuhr = praytimes.RuleP(r)
	}
	if r, ok := get("maghrib"); ok {
		p.Maghrib = praytimes.RuleP(r)
	}
	if r, ok := get("isha"); ok {
		p.Isha = praytimes.RuleP(r)
	}
	if v, ok := q["school"]; ok && len(v) > 0 && v[0] != "" {
		p.Asr = praytimes.AsrP(praytimes.ParseAsrRule(v[0]))
	}
	if v, ok := q["highlats"]; ok && len(v) > 0 && v[0] != "" {
		p.HighLats = praytimes.HighLatsP(praytimes.HighLatRule(v[0]))
	}
	return p
}

// resolveLocation reads the observer position from the query, falling
// back to the configured location when neither coordinate is given. An
// all-zero configured location counts as unset.
func (c *Controller) resolveLocation(q url.Values) (praytimes.Location, bool) {
	if q.Get("lat") == "" && q.Get("lng") == "" {
		l := c.cfg.Location
		if l.Latitude == 0 && l.Longitude == 0 {
			return praytimes.Location{}, false
		}
		return praytimes.Location{Latitude: l.Latitude, Longitude: l.Longitude, Elevation: l.Elevation}, true
	}
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		return praytimes.Location{}, false
	}
	elv, _ := strconv.ParseFloat(q.Get("elevation"), 64)
	return praytimes.Location{Latitude: lat, Longitude: lng, Elevation: elv}, true
}

// resolveZone picks the request's timezone: explicit numeric offset,
// explicit IANA name, or the server's configured preference. A nil zone
// with isFixed false means the name did not resolve.
func (c *Controller) resolveZone(tz string) (zone *time.Location, fixed float64, isFixed bool) {
	if tz == "" {
		zone, fixed, isFixed, err := c.cfg.Zone()
		if err != nil {
			return nil, 0, false
		}
		return zone, fixed, isFixed
	}
	if off, err := strconv.ParseFloat(tz, 64); err == nil {
		return nil, off, true
	}
	zone, err := time.LoadLocation(tz)
	if err != nil {
		return nil, 0, false
	}
	return zone, 0, false
}

// resolveDate parses the date parameter, defaulting to today. When the
// request uses a fixed numeric offset, zone is nil and UTC stands in for
// "today".
func (c *Controller) resolveDate(s string, zone *time.Location) (praytimes.Date, bool) {
	if s == "" {
		if zone == nil {
			zone = time.UTC
		}
		return praytimes.DateOf(time.Now().In(zone)), true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return praytimes.Date{}, false
	}
	return praytimes.DateOf(t), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Response{Code: status, Status: msg})
}

package restserver

// Response is the top-level JSON envelope for every endpoint.
type Response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// TimingsData holds the computed schedule plus date info and request
// metadata.
type TimingsData struct {
	Timings map[string]any `json:"timings"`
	Date    DateInfo       `json:"date"`
	Meta    Meta           `json:"meta"`
}

// DateInfo carries both calendar renderings of the requested day.
type DateInfo struct {
	Gregorian string    `json:"gregorian"` // YYYY-MM-DD
	Hijri     HijriInfo `json:"hijri"`
}

// HijriInfo is the structured Islamic calendar date.
type HijriInfo struct {
	Day     int    `json:"day"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	Weekday string `json:"weekday"`
	Name    string `json:"name"` // month name, e.g. "Ramadan"
}

// Meta echoes the resolved computation inputs.
type Meta struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
	Timezone  float64 `json:"timezone"` // effective UTC offset, hours
	DST       bool    `json:"dst"`
	Method    string  `json:"method"`
	Format    string  `json:"format"`
}

// MethodInfo is one catalog entry in the /v1/methods listing.
type MethodInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Fajr     string `json:"fajr"`
	Isha     string `json:"isha"`
	Maghrib  string `json:"maghrib"`
	Midnight string `json:"midnight"`
}

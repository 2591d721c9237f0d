// Command praytimes computes one day's prayer schedule for a location
// and prints it as a table.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nbouziani/praytimes/pkg/config"
	"github.com/nbouziani/praytimes/pkg/hijri"
	"github.com/nbouziani/praytimes/pkg/praytimes"
	"github.com/nbouziani/praytimes/pkg/timezone"
)

func main() {
	var (
		cfgFile   = flag.String("config", "", "Path to YAML configuration file (optional)")
		lat       = flag.Float64("lat", 0, "Latitude in decimal degrees")
		lng       = flag.Float64("lng", 0, "Longitude in decimal degrees")
		elevation = flag.Float64("elevation", 0, "Elevation in meters")
		method    = flag.String("method", "MWL", "Calculation method: ISNA, Egypt, Tehran, MWL, Makkah, Karachi")
		school    = flag.String("school", "Standard", "Asr school: Standard, Hanafi, or a numeric shadow factor")
		highlats  = flag.String("highlats", "NightMiddle", "High-latitude rule: None, NightMiddle, OneSeventh, AngleBased")
		format    = flag.String("format", "24h", "Time format: 24h, 12h, Float")
		dateStr   = flag.String("date", "", "Date (YYYY-MM-DD), default today")
		tzStr     = flag.String("timezone", "", "IANA zone name or numeric UTC offset, default host zone")
		hijriAdj  = flag.Int("hijri-adjustment", 0, "Hijri date adjustment in days")
	)
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var calc *praytimes.Calculator
	if *cfgFile != "" {
		cfg, err := config.NewConfig(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		calc = cfg.Calculator()
		// Flags given on the command line win over the file.
		if !explicit["lat"] {
			*lat = cfg.Location.Latitude
		}
		if !explicit["lng"] {
			*lng = cfg.Location.Longitude
		}
		if !explicit["elevation"] {
			*elevation = cfg.Location.Elevation
		}
		if !explicit["format"] {
			*format = cfg.Format
		}
		if !explicit["timezone"] && cfg.Location.Timezone != "" {
			*tzStr = cfg.Location.Timezone
		}
		if !explicit["hijri-adjustment"] {
			*hijriAdj = cfg.HijriDays
		}
		if explicit["method"] {
			calc.SetMethod(*method)
		}
	} else {
		calc = praytimes.New(*method)
	}

	// The school and high-latitude flag defaults must not stomp a loaded
	// configuration, so they apply only when given or when running
	// without one.
	var adj praytimes.Partial
	if *cfgFile == "" || explicit["school"] {
		adj.Asr = praytimes.AsrP(praytimes.ParseAsrRule(*school))
	}
	if *cfgFile == "" || explicit["highlats"] {
		adj.HighLats = praytimes.HighLatsP(praytimes.HighLatRule(*highlats))
	}
	calc.Adjust(adj)

	zone := time.Local
	fixedOffset, fixedErr := strconv.ParseFloat(*tzStr, 64)
	isFixed := *tzStr != "" && fixedErr == nil
	if *tzStr != "" && !isFixed {
		var err error
		zone, err = time.LoadLocation(*tzStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading timezone: %v\n", err)
			os.Exit(1)
		}
	}

	var date praytimes.Date
	if *dateStr == "" {
		date = praytimes.DateOf(time.Now().In(zone))
	} else {
		t, err := time.Parse("2006-01-02", *dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			os.Exit(1)
		}
		date = praytimes.DateOf(t)
	}

	var offset float64
	var dst bool
	if isFixed {
		offset = fixedOffset
	} else {
		offset, dst = timezone.Resolve(zone, date.Year, date.Month, date.Day)
	}

	loc := praytimes.Location{Latitude: *lat, Longitude: *lng, Elevation: *elevation}
	sched := calc.Times(date, loc, offset, dst)

	h := hijri.FromGregorian(date.Year, date.Month, date.Day, *hijriAdj)
	fmt.Printf("Prayer times for %04d-%02d-%02d (%s %d %s %d AH)\n",
		date.Year, date.Month, date.Day, h.WeekdayName(), h.Day, h.MonthName(), h.Year)
	fmt.Printf("  Location: %.4f, %.4f  elevation %.0f m\n", *lat, *lng, *elevation)
	effective := offset
	if dst {
		effective++
	}
	fmt.Printf("  Method:   %s  UTC%+.1f  DST %v\n\n", calc.Method(), effective, dst)

	formatted := sched.Format(praytimes.TimeFormat(*format))
	for _, name := range praytimes.TimeNames {
		fmt.Printf("  %-9s %s\n", name, formatted[name])
	}
}

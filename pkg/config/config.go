// Package config loads the YAML configuration shared by the CLI and the
// server daemon and turns it into a configured prayer-time calculator.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/nbouziani/praytimes/pkg/praytimes"
)

// Config is the base configuration object.
type Config struct {
	ListenAddr string         `yaml:"listen-addr,omitempty"`
	Location   LocationConfig `yaml:"location"`
	Method     string         `yaml:"method,omitempty"`
	Format     string         `yaml:"format,omitempty"`
	AsrSchool  string         `yaml:"asr-school,omitempty"`
	HighLats   string         `yaml:"high-latitude-rule,omitempty"`
	HijriDays  int            `yaml:"hijri-adjustment,omitempty"`

	// Overrides are ad-hoc rule replacements keyed by time name, in the
	// catalog's string encoding: a bare number is an angle in degrees,
	// "<n> min" a minute offset. Example: Isha: "90 min".
	Overrides map[string]string `yaml:"overrides,omitempty"`

	// Tune is a map of per-time minute adjustments applied after all
	// astronomical computation.
	Tune map[string]float64 `yaml:"tune,omitempty"`
}

// LocationConfig holds the observer's position and timezone preference.
type LocationConfig struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Elevation float64 `yaml:"elevation,omitempty"`
	// Timezone is an IANA zone name (resolved per-date, DST included),
	// a fixed numeric UTC offset in hours, or empty for the host zone.
	Timezone string `yaml:"timezone,omitempty"`
}

// NewConfig creates a new config object from the given filename.
func NewConfig(filename string) (Config, error) {
	cfgFile, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	c := Config{}
	if err := yaml.Unmarshal(cfgFile, &c); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", filename, err)
	}
	c.setDefaults()
	return c, nil
}

func (c *Config) setDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8015"
	}
	if c.Method == "" {
		c.Method = praytimes.DefaultMethod
	}
	if c.Format == "" {
		c.Format = string(praytimes.Format24h)
	}
}

// Calculator builds a calculator from the configured method, overrides,
// and tuning offsets. Unknown methods fall back to the library default;
// malformed rule strings become NaN rules and surface as invalid times,
// never as load errors.
func (c Config) Calculator() *praytimes.Calculator {
	calc := praytimes.New(c.Method)

	var p praytimes.Partial
	for name, v := range c.Overrides {
		rule := praytimes.ParseRule(v)
		switch praytimes.TimeName(name) {
		case praytimes.Imsak:
			p.Imsak = praytimes.RuleP(rule)
		case praytimes.Fajr:
			p.Fajr = praytimes.RuleP(rule)
		case praytimes.Dhuhr:
			p.Dhuhr = praytimes.RuleP(rule)
		case praytimes.Maghrib:
			p.Maghrib = praytimes.RuleP(rule)
		case praytimes.Isha:
			p.Isha = praytimes.RuleP(rule)
		}
	}
	if c.AsrSchool != "" {
		p.Asr = praytimes.AsrP(praytimes.ParseAsrRule(c.AsrSchool))
	}
	if c.HighLats != "" {
		p.HighLats = praytimes.HighLatsP(praytimes.HighLatRule(c.HighLats))
	}
	calc.Adjust(p)

	if len(c.Tune) > 0 {
		offsets := praytimes.Offsets{}
		for name, min := range c.Tune {
			offsets[praytimes.TimeName(name)] = min
		}
		calc.Tune(offsets)
	}
	return calc
}

// Zone resolves the configured timezone preference. A fixed numeric
// offset returns (nil, offset, true); otherwise the returned
// *time.Location is resolved per-date by the caller.
func (c Config) Zone() (zone *time.Location, fixed float64, isFixed bool, err error) {
	tz := c.Location.Timezone
	if tz == "" {
		return time.Local, 0, false, nil
	}
	if off, perr := strconv.ParseFloat(tz, 64); perr == nil {
		return nil, off, true, nil
	}
	zone, err = time.LoadLocation(tz)
	if err != nil {
		return nil, 0, false, fmt.Errorf("loading timezone %q: %w", tz, err)
	}
	return zone, 0, false, nil
}

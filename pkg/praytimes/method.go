package praytimes

// Method is one named calculation convention. Params only carries the
// fields the convention actually specifies; the catalog fills in the
// library defaults (Maghrib "0 min", Midnight Standard) for the rest at
// construction time, so a Method taken from Methods is always complete.
type Method struct {
	Name   string // display name for catalog listings
	Params Partial
}

// DefaultMethod is selected when an unknown method name is requested.
const DefaultMethod = "MWL"

// Methods returns the catalog of named calculation conventions, keyed by
// their short identifier. The map and its entries are fresh copies on
// every call.
func Methods() map[string]Method {
	catalog := map[string]Method{
		"ISNA": {
			Name: "Islamic Society of North America (ISNA)",
			Params: Partial{
				Fajr: RuleP(Angle(15)),
				Isha: RuleP(Angle(15)),
			},
		},
		"Egypt": {
			Name: "Egyptian General Authority of Survey",
			Params: Partial{
				Fajr: RuleP(Angle(19.5)),
				Isha: RuleP(Angle(17.5)),
			},
		},
		"Tehran": {
			// Isha is not explicitly specified by this convention; the
			// published companion value is used.
			Name: "Institute of Geophysics, University of Tehran",
			Params: Partial{
				Fajr:     RuleP(Angle(17.7)),
				Isha:     RuleP(Angle(14)),
				Maghrib:  RuleP(Angle(4.5)),
				Midnight: MidnightP(MidnightJafari),
			},
		},
		"MWL": {
			Name: "Muslim World League",
			Params: Partial{
				Fajr: RuleP(Angle(18)),
				Isha: RuleP(Angle(17)),
			},
		},
		"Makkah": {
			Name: "Umm Al-Qura University, Makkah",
			Params: Partial{
				Fajr: RuleP(Angle(18.5)),
				Isha: RuleP(Minutes(90)),
			},
		},
		"Karachi": {
			Name: "University of Islamic Sciences, Karachi",
			Params: Partial{
				Fajr: RuleP(Angle(18)),
				Isha: RuleP(Angle(18)),
			},
		},
	}

	// Deep-merge the method defaults: fill only what the convention left
	// unspecified, never overwrite an explicit value.
	for id, m := range catalog {
		if m.Params.Maghrib == nil {
			m.Params.Maghrib = RuleP(Minutes(0))
		}
		if m.Params.Midnight == nil {
			m.Params.Midnight = MidnightP(MidnightStandard)
		}
		catalog[id] = m
	}
	return catalog
}

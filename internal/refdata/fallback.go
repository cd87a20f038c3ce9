package refdata

// Fallback returns a minimal compiled-in store used when the YAML datasets
// cannot be loaded. Classification still works, it just misses more lookups.
func Fallback() *Store {
	s := &Store{
		countries: []Country{
			{Code: "US", Name: "United States", Region: "North America", Continent: "North America",
				Timezone: "UTC-5 to UTC-10", Language: "en", Flag: "🇺🇸",
				MajorCities: []string{"New York", "Los Angeles"}},
			{Code: "GB", Name: "United Kingdom", Region: "Western Europe", Continent: "Europe",
				Timezone: "UTC+0", Language: "en", Flag: "🇬🇧",
				MajorCities: []string{"London", "Birmingham"}},
			{Code: "JP", Name: "Japan", Region: "East Asia", Continent: "Asia",
				Timezone: "UTC+9", Language: "ja", Flag: "🇯🇵",
				MajorCities: []string{"Tokyo", "Osaka"}},
		},
		publishers: []Publisher{
			{Name: "Reuters", Country: "GB", Credibility: 95, Type: TypeWireService,
				Bias: "center", Factual: "very_high", Description: "International news agency",
				Domains: []string{"reuters.com"}},
			{Name: "Associated Press", Country: "US", Credibility: 94, Type: TypeWireService,
				Bias: "center", Factual: "very_high", Description: "American news agency",
				Domains: []string{"apnews.com"}},
			{Name: "BBC News", Country: "GB", Credibility: 92, Type: TypePublicBroadcaster,
				Bias: "center_left", Factual: "very_high", Description: "British public broadcaster",
				Domains: []string{"bbc.com", "bbc.co.uk"}},
		},
		wireServices:    toSet([]string{"Reuters", "Associated Press"}),
		stateControlled: toSet(nil),
		highThreshold:   defaultHighThreshold,
		lowThreshold:    defaultLowThreshold,
	}
	s.index()
	return s
}

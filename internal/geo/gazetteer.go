package geo

import "regexp"

type hint struct {
	keyword string
	country string
	re      *regexp.Regexp
}

// countryHints is the ordered gazetteer: city names, country names,
// nationality adjectives and native-language self-references. Order is the
// tie-break for same-position matches, so more specific entries should come
// before generic ones within a country block.
var countryHints = []struct {
	keyword string
	country string
}{
	// Japan
	{"tokyo", "JP"}, {"japan", "JP"}, {"osaka", "JP"}, {"kyoto", "JP"}, {"yokohama", "JP"},
	{"nagoya", "JP"}, {"sapporo", "JP"}, {"fukuoka", "JP"}, {"kobe", "JP"}, {"kawasaki", "JP"},
	{"japanese", "JP"}, {"nippon", "JP"}, {"nihon", "JP"},

	// France
	{"paris", "FR"}, {"france", "FR"}, {"marseille", "FR"}, {"lyon", "FR"}, {"toulouse", "FR"},
	{"nice", "FR"}, {"nantes", "FR"}, {"strasbourg", "FR"}, {"montpellier", "FR"}, {"bordeaux", "FR"},
	{"french", "FR"}, {"français", "FR"}, {"française", "FR"},

	// United Kingdom
	{"london", "GB"}, {"britain", "GB"}, {"uk", "GB"}, {"england", "GB"}, {"scotland", "GB"},
	{"wales", "GB"}, {"birmingham", "GB"}, {"manchester", "GB"}, {"glasgow", "GB"}, {"liverpool", "GB"},
	{"leeds", "GB"}, {"sheffield", "GB"}, {"edinburgh", "GB"}, {"bristol", "GB"}, {"cardiff", "GB"},
	{"british", "GB"}, {"english", "GB"}, {"scottish", "GB"}, {"welsh", "GB"},

	// United States
	{"new york", "US"}, {"washington", "US"}, {"america", "US"}, {"usa", "US"}, {"los angeles", "US"},
	{"chicago", "US"}, {"houston", "US"}, {"phoenix", "US"}, {"philadelphia", "US"}, {"san antonio", "US"},
	{"san diego", "US"}, {"dallas", "US"}, {"san jose", "US"}, {"austin", "US"}, {"jacksonville", "US"},
	{"american", "US"}, {"united states", "US"},

	// Germany
	{"berlin", "DE"}, {"germany", "DE"}, {"hamburg", "DE"}, {"munich", "DE"}, {"cologne", "DE"},
	{"frankfurt", "DE"}, {"stuttgart", "DE"}, {"düsseldorf", "DE"}, {"dortmund", "DE"}, {"essen", "DE"},
	{"german", "DE"}, {"deutschland", "DE"}, {"deutsch", "DE"},

	// China
	{"beijing", "CN"}, {"china", "CN"}, {"shanghai", "CN"}, {"guangzhou", "CN"}, {"shenzhen", "CN"},
	{"tianjin", "CN"}, {"wuhan", "CN"}, {"dongguan", "CN"}, {"chengdu", "CN"}, {"nanjing", "CN"},
	{"chinese", "CN"}, {"zhongguo", "CN"},

	// India
	{"mumbai", "IN"}, {"india", "IN"}, {"delhi", "IN"}, {"bangalore", "IN"}, {"hyderabad", "IN"},
	{"ahmedabad", "IN"}, {"chennai", "IN"}, {"kolkata", "IN"}, {"surat", "IN"}, {"pune", "IN"},
	{"indian", "IN"}, {"bharat", "IN"},

	// Russia
	{"moscow", "RU"}, {"russia", "RU"}, {"saint petersburg", "RU"}, {"novosibirsk", "RU"},
	{"yekaterinburg", "RU"}, {"nizhny novgorod", "RU"}, {"kazan", "RU"}, {"chelyabinsk", "RU"},
	{"russian", "RU"}, {"rossiya", "RU"},

	// Australia
	{"sydney", "AU"}, {"australia", "AU"}, {"melbourne", "AU"}, {"brisbane", "AU"}, {"perth", "AU"},
	{"adelaide", "AU"}, {"gold coast", "AU"}, {"newcastle", "AU"}, {"canberra", "AU"},
	{"australian", "AU"}, {"aussie", "AU"},

	// Canada
	{"toronto", "CA"}, {"canada", "CA"}, {"montreal", "CA"}, {"calgary", "CA"}, {"ottawa", "CA"},
	{"edmonton", "CA"}, {"mississauga", "CA"}, {"winnipeg", "CA"}, {"vancouver", "CA"},
	{"canadian", "CA"},

	// Spain
	{"madrid", "ES"}, {"spain", "ES"}, {"barcelona", "ES"}, {"valencia", "ES"}, {"seville", "ES"},
	{"zaragoza", "ES"}, {"málaga", "ES"}, {"murcia", "ES"}, {"palma", "ES"}, {"bilbao", "ES"},
	{"spanish", "ES"}, {"españa", "ES"},

	// Italy
	{"rome", "IT"}, {"italy", "IT"}, {"milan", "IT"}, {"naples", "IT"}, {"turin", "IT"},
	{"palermo", "IT"}, {"genoa", "IT"}, {"bologna", "IT"}, {"florence", "IT"}, {"bari", "IT"},
	{"italian", "IT"}, {"italia", "IT"},

	// Netherlands
	{"amsterdam", "NL"}, {"netherlands", "NL"}, {"rotterdam", "NL"}, {"the hague", "NL"},
	{"utrecht", "NL"}, {"eindhoven", "NL"}, {"tilburg", "NL"}, {"groningen", "NL"},
	{"dutch", "NL"}, {"holland", "NL"},

	// Brazil
	{"são paulo", "BR"}, {"brazil", "BR"}, {"rio de janeiro", "BR"}, {"brasília", "BR"},
	{"salvador", "BR"}, {"fortaleza", "BR"}, {"belo horizonte", "BR"}, {"manaus", "BR"},
	{"brazilian", "BR"}, {"brasil", "BR"},

	// Israel
	{"jerusalem", "IL"}, {"israel", "IL"}, {"tel aviv", "IL"}, {"haifa", "IL"},
	{"israeli", "IL"},

	// Qatar
	{"doha", "QA"}, {"qatar", "QA"}, {"qatari", "QA"},

	// Hong Kong
	{"hong kong", "HK"}, {"hongkong", "HK"}, {"kowloon", "HK"},
}

// NewGazetteer compiles the hint table into word-boundary matchers.
func NewGazetteer() *Gazetteer {
	g := &Gazetteer{hints: make([]hint, 0, len(countryHints))}
	for _, h := range countryHints {
		g.hints = append(g.hints, hint{
			keyword: h.keyword,
			country: h.country,
			re:      regexp.MustCompile(`\b` + regexp.QuoteMeta(h.keyword) + `\b`),
		})
	}
	return g
}

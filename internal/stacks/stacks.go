// Package stacks groups classified articles into per-origin-country stacks
// and computes the corpus-wide perspective summary.
package stacks

import (
	"math"
	"sort"

	"github.com/BenBen05059997/globalPerspective-v1/internal/article"
	"github.com/BenBen05059997/globalPerspective-v1/internal/refdata"
)

// UnknownCountry is the grouping sentinel for articles whose origin or
// publisher country never resolved. It appears only in stack keys.
const UnknownCountry = "UNK"

const unknownFlag = "🌍"

// Statistics summarizes one stack.
type Statistics struct {
	TotalArticles          int     `json:"total_articles"`
	LocalCount             int     `json:"local_count"`
	ForeignCount           int     `json:"foreign_count"`
	RegionalCount          int     `json:"regional_count"`
	NeutralCount           int     `json:"neutral_count"`
	AverageCredibility     float64 `json:"average_credibility"`
	UniqueForeignCountries int     `json:"unique_foreign_countries"`
	CoverageDiversity      int     `json:"coverage_diversity"`
}

// ForeignGroup carries the display metadata for one foreign publisher
// country inside a stack.
type ForeignGroup struct {
	Articles       []article.Article `json:"articles"`
	CountryName    string            `json:"country_name"`
	CountryFlag    string            `json:"country_flag"`
	Region         string            `json:"region"`
	ArticleCount   int               `json:"article_count"`
	AvgCredibility float64           `json:"avg_credibility"`
}

// Stack is the set of articles about one origin country, partitioned by
// classification.
type Stack struct {
	OriginCountry     string                       `json:"origin_country"`
	OriginCountryName string                       `json:"origin_country_name"`
	OriginCountryFlag string                       `json:"origin_country_flag"`
	OriginRegion      string                       `json:"origin_region"`
	Local             []article.Article            `json:"local"`
	ForeignByCountry  map[string][]article.Article `json:"foreign_by_country"`
	Regional          []article.Article            `json:"regional"`
	Neutral           []article.Article            `json:"neutral"`
	ForeignDetails    map[string]ForeignGroup      `json:"foreign_by_country_enhanced"`
	Statistics        Statistics                   `json:"statistics"`
}

// Builder constructs stacks against a read-only reference store.
type Builder struct {
	store *refdata.Store
}

func NewBuilder(store *refdata.Store) *Builder {
	return &Builder{store: store}
}

// Build groups classified articles by origin country and computes per-stack
// statistics. Stacks are sorted descending by total article count; the sort
// is stable so equal-sized stacks keep encounter order.
func (b *Builder) Build(articles []article.Article) []Stack {
	groups := make(map[string][]article.Article)
	var order []string
	for _, a := range articles {
		origin := a.OriginCountry
		if origin == "" {
			origin = UnknownCountry
		}
		if _, seen := groups[origin]; !seen {
			order = append(order, origin)
		}
		groups[origin] = append(groups[origin], a)
	}

	out := make([]Stack, 0, len(order))
	for _, origin := range order {
		out = append(out, b.buildStack(origin, groups[origin]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Statistics.TotalArticles > out[j].Statistics.TotalArticles
	})
	return out
}

func (b *Builder) buildStack(origin string, items []article.Article) Stack {
	s := Stack{
		OriginCountry:     origin,
		OriginCountryName: origin,
		OriginCountryFlag: unknownFlag,
		OriginRegion:      "Unknown",
		Local:             []article.Article{},
		ForeignByCountry:  map[string][]article.Article{},
		Regional:          []article.Article{},
		Neutral:           []article.Article{},
		ForeignDetails:    map[string]ForeignGroup{},
	}
	if origin != UnknownCountry {
		if country, ok := b.store.GetCountry(origin); ok {
			s.OriginCountryName = country.Name
			s.OriginCountryFlag = country.Flag
			s.OriginRegion = country.Region
		}
	}

	publisherCountries := make(map[string]struct{})
	var credibilitySum float64
	for _, a := range items {
		credibilitySum += float64(scoreOrDefault(a))
		if a.PublisherCountry != "" {
			publisherCountries[a.PublisherCountry] = struct{}{}
		}

		switch a.Classification {
		case article.ClassLocal:
			s.Local = append(s.Local, a)
		case article.ClassRegional:
			s.Regional = append(s.Regional, a)
		case article.ClassNeutral:
			s.Neutral = append(s.Neutral, a)
		case article.ClassForeign:
			pubCountry := a.PublisherCountry
			if pubCountry == "" {
				pubCountry = UnknownCountry
			}
			s.ForeignByCountry[pubCountry] = append(s.ForeignByCountry[pubCountry], a)
		}
	}

	foreignCount := 0
	for code, group := range s.ForeignByCountry {
		foreignCount += len(group)
		s.ForeignDetails[code] = b.foreignGroup(code, group)
	}

	total := len(items)
	avg := 50.0
	if total > 0 {
		avg = credibilitySum / float64(total)
	}
	s.Statistics = Statistics{
		TotalArticles:          total,
		LocalCount:             len(s.Local),
		ForeignCount:           foreignCount,
		RegionalCount:          len(s.Regional),
		NeutralCount:           len(s.Neutral),
		AverageCredibility:     round1(avg),
		UniqueForeignCountries: len(s.ForeignByCountry),
		CoverageDiversity:      len(publisherCountries),
	}
	return s
}

func (b *Builder) foreignGroup(code string, group []article.Article) ForeignGroup {
	fg := ForeignGroup{
		Articles:     group,
		CountryName:  code,
		CountryFlag:  unknownFlag,
		Region:       "Unknown",
		ArticleCount: len(group),
	}
	if country, ok := b.store.GetCountry(code); ok {
		fg.CountryName = country.Name
		fg.CountryFlag = country.Flag
		fg.Region = country.Region
	}
	sum := 0.0
	for _, a := range group {
		sum += float64(scoreOrDefault(a))
	}
	if len(group) > 0 {
		fg.AvgCredibility = round1(sum / float64(len(group)))
	} else {
		fg.AvgCredibility = 50
	}
	return fg
}

// scoreOrDefault substitutes 50 only for articles whose credibility fields
// were never assigned. The classifier always sets a category (even
// "unknown"), so an empty category is the unset signal; a genuine 0 from a
// categorized publisher is averaged as 0.
func scoreOrDefault(a article.Article) int {
	if a.CredibilityCategory == "" {
		return 50
	}
	return a.CredibilityScore
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

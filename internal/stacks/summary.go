package stacks

import (
	"sort"

	"github.com/BenBen05059997/globalPerspective-v1/internal/article"
	"github.com/BenBen05059997/globalPerspective-v1/internal/refdata"
)

// PerspectiveBreakdown counts articles per classification label.
type PerspectiveBreakdown struct {
	Local    int `json:"local"`
	Foreign  int `json:"foreign"`
	Regional int `json:"regional"`
	Neutral  int `json:"neutral"`
}

// CountryCoverage describes which countries published and which were
// covered across the corpus.
type CountryCoverage struct {
	UniquePublisherCountries int            `json:"unique_publisher_countries"`
	UniqueOriginCountries    int            `json:"unique_origin_countries"`
	PublisherDistribution    map[string]int `json:"publisher_distribution"`
	OriginDistribution       map[string]int `json:"origin_distribution"`
}

// ScoreDistribution counts articles per credibility category.
type ScoreDistribution struct {
	High    int `json:"high"`
	Medium  int `json:"medium"`
	Low     int `json:"low"`
	Unknown int `json:"unknown"`
}

// CredibilityAnalysis aggregates source credibility across the corpus.
type CredibilityAnalysis struct {
	AverageScore      float64           `json:"average_score"`
	ScoreDistribution ScoreDistribution `json:"score_distribution"`
	WireServices      int               `json:"wire_services"`
	StateControlled   int               `json:"state_controlled"`
}

// DiversityMetrics describes the breadth of resolved sources. Countries and
// regions only count articles whose publisher resolved.
type DiversityMetrics struct {
	UniqueCountries         int            `json:"unique_countries"`
	UniqueRegions           int            `json:"unique_regions"`
	AverageCredibility      float64        `json:"average_credibility"`
	WireServices            int            `json:"wire_services"`
	StateControlled         int            `json:"state_controlled"`
	TotalSources            int            `json:"total_sources"`
	Countries               []string       `json:"countries"`
	Regions                 []string       `json:"regions"`
	ClassificationBreakdown map[string]int `json:"classification_breakdown"`
	CredibilityBreakdown    map[string]int `json:"credibility_breakdown"`
}

// QualityIndicators are the two headline quality numbers plus a combined
// geographic spread count.
type QualityIndicators struct {
	GeographicDiversity int     `json:"geographic_diversity"`
	SourceReliability   float64 `json:"source_reliability"`
	PerspectiveBalance  float64 `json:"perspective_balance"`
}

// Summary is the corpus-wide perspective analysis.
type Summary struct {
	TotalArticles        int                  `json:"total_articles"`
	PerspectiveBreakdown PerspectiveBreakdown `json:"perspective_breakdown"`
	CountryCoverage      CountryCoverage      `json:"country_coverage"`
	CredibilityAnalysis  CredibilityAnalysis  `json:"credibility_analysis"`
	DiversityMetrics     DiversityMetrics     `json:"diversity_metrics"`
	QualityIndicators    QualityIndicators    `json:"quality_indicators"`
}

// Summarize computes the corpus-wide perspective summary. An empty input
// yields the all-zero shape with empty (but non-nil) maps and lists.
func (b *Builder) Summarize(articles []article.Article) Summary {
	s := emptySummary()
	if len(articles) == 0 {
		return s
	}

	s.TotalArticles = len(articles)
	var scoreSum float64
	for _, a := range articles {
		switch a.Classification {
		case article.ClassLocal:
			s.PerspectiveBreakdown.Local++
		case article.ClassForeign:
			s.PerspectiveBreakdown.Foreign++
		case article.ClassRegional:
			s.PerspectiveBreakdown.Regional++
		case article.ClassNeutral:
			s.PerspectiveBreakdown.Neutral++
		}

		if a.PublisherCountry != "" {
			s.CountryCoverage.PublisherDistribution[a.PublisherCountry]++
		}
		if a.OriginCountry != "" {
			s.CountryCoverage.OriginDistribution[a.OriginCountry]++
		}

		scoreSum += float64(scoreOrDefault(a))
		switch a.CredibilityCategory {
		case refdata.CategoryHigh:
			s.CredibilityAnalysis.ScoreDistribution.High++
		case refdata.CategoryMedium:
			s.CredibilityAnalysis.ScoreDistribution.Medium++
		case refdata.CategoryLow:
			s.CredibilityAnalysis.ScoreDistribution.Low++
		default:
			s.CredibilityAnalysis.ScoreDistribution.Unknown++
		}
		if a.IsWireService {
			s.CredibilityAnalysis.WireServices++
		}
		if a.IsStateControlled {
			s.CredibilityAnalysis.StateControlled++
		}
	}

	s.CountryCoverage.UniquePublisherCountries = len(s.CountryCoverage.PublisherDistribution)
	s.CountryCoverage.UniqueOriginCountries = len(s.CountryCoverage.OriginDistribution)
	s.CredibilityAnalysis.AverageScore = round1(scoreSum / float64(len(articles)))

	s.DiversityMetrics = b.diversity(articles)
	s.QualityIndicators = qualityIndicators(s)
	return s
}

func (b *Builder) diversity(articles []article.Article) DiversityMetrics {
	m := emptyDiversity()

	countries := make(map[string]struct{})
	regions := make(map[string]struct{})
	var credSum float64
	resolved := 0
	for _, a := range articles {
		m.ClassificationBreakdown[string(a.Classification)]++
		m.CredibilityBreakdown[string(a.CredibilityCategory)]++
		if a.SourceName != "" {
			m.TotalSources++
		}
		if a.PublisherCountry == "" {
			continue
		}
		countries[a.PublisherCountry] = struct{}{}
		if country, ok := b.store.GetCountry(a.PublisherCountry); ok {
			regions[country.Region] = struct{}{}
		}
		credSum += float64(a.CredibilityScore)
		resolved++
		if a.IsWireService {
			m.WireServices++
		}
		if a.IsStateControlled {
			m.StateControlled++
		}
	}

	m.Countries = sortedKeys(countries)
	m.Regions = sortedKeys(regions)
	m.UniqueCountries = len(m.Countries)
	m.UniqueRegions = len(m.Regions)
	if resolved > 0 {
		m.AverageCredibility = round1(credSum / float64(resolved))
	}
	return m
}

func qualityIndicators(s Summary) QualityIndicators {
	q := QualityIndicators{
		GeographicDiversity: s.CountryCoverage.UniquePublisherCountries + s.CountryCoverage.UniqueOriginCountries,
	}
	if s.TotalArticles > 0 {
		reliable := s.CredibilityAnalysis.ScoreDistribution.High + s.CredibilityAnalysis.ScoreDistribution.Medium
		q.SourceReliability = round1(float64(reliable) / float64(s.TotalArticles) * 100)
	}

	local, foreign := s.PerspectiveBreakdown.Local, s.PerspectiveBreakdown.Foreign
	smaller, larger := local, foreign
	if smaller > larger {
		smaller, larger = larger, smaller
	}
	if larger == 0 {
		larger = 1
	}
	q.PerspectiveBalance = float64(smaller) / float64(larger)
	return q
}

func emptySummary() Summary {
	return Summary{
		CountryCoverage: CountryCoverage{
			PublisherDistribution: map[string]int{},
			OriginDistribution:    map[string]int{},
		},
		DiversityMetrics: emptyDiversity(),
	}
}

func emptyDiversity() DiversityMetrics {
	return DiversityMetrics{
		Countries:               []string{},
		Regions:                 []string{},
		ClassificationBreakdown: map[string]int{},
		CredibilityBreakdown:    map[string]int{},
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package stacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenBen05059997/globalPerspective-v1/internal/article"
	"github.com/BenBen05059997/globalPerspective-v1/internal/refdata"
)

// classified mimics classifier output: a score of 0 means the credibility
// fields were never assigned, anything else carries a category.
func classified(id, origin, pubCountry string, class article.Classification, score int) article.Article {
	a := article.Article{
		ID:               id,
		SourceName:       "src-" + id,
		Title:            "title " + id,
		OriginCountry:    origin,
		PublisherCountry: pubCountry,
		Classification:   class,
		CredibilityScore: score,
	}
	switch {
	case score == 0:
	case score >= 85:
		a.CredibilityCategory = refdata.CategoryHigh
	case score >= 60:
		a.CredibilityCategory = refdata.CategoryMedium
	default:
		a.CredibilityCategory = refdata.CategoryLow
	}
	return a
}

func TestBuildPartitionsEveryArticleExactlyOnce(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	articles := []article.Article{
		classified("1", "JP", "JP", article.ClassLocal, 80),
		classified("2", "JP", "GB", article.ClassForeign, 92),
		classified("3", "JP", "US", article.ClassForeign, 94),
		classified("4", "JP", "GB", article.ClassNeutral, 95),
		classified("5", "US", "GB", article.ClassForeign, 92),
	}

	out := b.Build(articles)
	require.Len(t, out, 2)

	total := 0
	for _, s := range out {
		stats := s.Statistics
		foreign := 0
		for _, group := range s.ForeignByCountry {
			foreign += len(group)
		}
		assert.Equal(t, stats.TotalArticles,
			len(s.Local)+foreign+len(s.Regional)+len(s.Neutral))
		assert.Equal(t, stats.ForeignCount, foreign)
		total += stats.TotalArticles
	}
	assert.Equal(t, len(articles), total)
}

func TestBuildSortsByStackSize(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	articles := []article.Article{
		classified("1", "US", "GB", article.ClassForeign, 90),
		classified("2", "JP", "JP", article.ClassLocal, 80),
		classified("3", "JP", "GB", article.ClassForeign, 92),
	}

	out := b.Build(articles)
	require.Len(t, out, 2)
	assert.Equal(t, "JP", out[0].OriginCountry)
	assert.Equal(t, "US", out[1].OriginCountry)
}

func TestBuildStableOrderForEqualSizes(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	articles := []article.Article{
		classified("1", "US", "US", article.ClassLocal, 80),
		classified("2", "JP", "JP", article.ClassLocal, 80),
		classified("3", "GB", "GB", article.ClassLocal, 80),
	}

	out := b.Build(articles)
	require.Len(t, out, 3)
	assert.Equal(t, "US", out[0].OriginCountry)
	assert.Equal(t, "JP", out[1].OriginCountry)
	assert.Equal(t, "GB", out[2].OriginCountry)
}

func TestBuildUnknownOriginGetsSentinelStack(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	articles := []article.Article{
		classified("1", "", "", article.ClassNeutral, 0),
		classified("2", "", "GB", article.ClassForeign, 92),
	}

	out := b.Build(articles)
	require.Len(t, out, 1)

	s := out[0]
	assert.Equal(t, UnknownCountry, s.OriginCountry)
	assert.Equal(t, UnknownCountry, s.OriginCountryName)
	assert.Equal(t, "🌍", s.OriginCountryFlag)
	assert.Equal(t, "Unknown", s.OriginRegion)
}

func TestBuildForeignGroupedByPublisherCountry(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	articles := []article.Article{
		classified("1", "JP", "GB", article.ClassForeign, 92),
		classified("2", "JP", "GB", article.ClassForeign, 94),
		classified("3", "JP", "", article.ClassForeign, 0),
	}

	out := b.Build(articles)
	require.Len(t, out, 1)
	s := out[0]

	require.Len(t, s.ForeignByCountry["GB"], 2)
	require.Len(t, s.ForeignByCountry[UnknownCountry], 1)

	gb := s.ForeignDetails["GB"]
	assert.Equal(t, "United Kingdom", gb.CountryName)
	assert.Equal(t, "🇬🇧", gb.CountryFlag)
	assert.Equal(t, 2, gb.ArticleCount)
	assert.Equal(t, 93.0, gb.AvgCredibility)

	unk := s.ForeignDetails[UnknownCountry]
	assert.Equal(t, UnknownCountry, unk.CountryName)
	assert.Equal(t, "🌍", unk.CountryFlag)
	assert.Equal(t, 50.0, unk.AvgCredibility)

	assert.Equal(t, 2, s.Statistics.UniqueForeignCountries)
}

func TestBuildUnscoredCountsAsFifty(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	articles := []article.Article{
		classified("1", "JP", "JP", article.ClassLocal, 0), // credibility never assigned
		classified("2", "JP", "JP", article.ClassLocal, 100),
	}

	out := b.Build(articles)
	require.Len(t, out, 1)
	assert.Equal(t, 75.0, out[0].Statistics.AverageCredibility)
}

func TestBuildGenuineZeroScoreNotInflated(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	zero := classified("1", "JP", "JP", article.ClassLocal, 0)
	zero.CredibilityCategory = refdata.CategoryLow // a real dataset score of 0

	articles := []article.Article{
		zero,
		classified("2", "JP", "JP", article.ClassLocal, 100),
	}

	out := b.Build(articles)
	require.Len(t, out, 1)
	assert.Equal(t, 50.0, out[0].Statistics.AverageCredibility)
}

func TestBuildEmptyInput(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	assert.Empty(t, b.Build(nil))
	assert.Empty(t, b.Build([]article.Article{}))
}

func TestCoverageDiversityCountsPublisherCountries(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	articles := []article.Article{
		classified("1", "JP", "JP", article.ClassLocal, 80),
		classified("2", "JP", "GB", article.ClassForeign, 92),
		classified("3", "JP", "GB", article.ClassNeutral, 95),
		classified("4", "JP", "", article.ClassNeutral, 0),
	}

	out := b.Build(articles)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Statistics.CoverageDiversity)
}

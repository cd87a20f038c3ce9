package stacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BenBen05059997/globalPerspective-v1/internal/article"
	"github.com/BenBen05059997/globalPerspective-v1/internal/refdata"
)

func TestSummarizeEmptyInput(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	s := b.Summarize(nil)

	assert.Zero(t, s.TotalArticles)
	assert.NotNil(t, s.CountryCoverage.PublisherDistribution)
	assert.NotNil(t, s.CountryCoverage.OriginDistribution)
	assert.NotNil(t, s.DiversityMetrics.Countries)
	assert.NotNil(t, s.DiversityMetrics.ClassificationBreakdown)
	assert.Zero(t, s.QualityIndicators.PerspectiveBalance)
}

func TestSummarizeBreakdownAndCoverage(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	articles := []article.Article{
		{SourceName: "a", OriginCountry: "JP", PublisherCountry: "JP",
			Classification: article.ClassLocal, CredibilityScore: 80,
			CredibilityCategory: refdata.CategoryMedium},
		{SourceName: "b", OriginCountry: "JP", PublisherCountry: "GB",
			Classification: article.ClassForeign, CredibilityScore: 92,
			CredibilityCategory: refdata.CategoryHigh, IsWireService: true},
		{SourceName: "c", OriginCountry: "US", PublisherCountry: "GB",
			Classification: article.ClassForeign, CredibilityScore: 95,
			CredibilityCategory: refdata.CategoryHigh},
		{SourceName: "d", Classification: article.ClassNeutral,
			CredibilityScore: 50, CredibilityCategory: refdata.CategoryUnknown},
	}

	s := b.Summarize(articles)

	assert.Equal(t, 4, s.TotalArticles)
	assert.Equal(t, 1, s.PerspectiveBreakdown.Local)
	assert.Equal(t, 2, s.PerspectiveBreakdown.Foreign)
	assert.Equal(t, 0, s.PerspectiveBreakdown.Regional)
	assert.Equal(t, 1, s.PerspectiveBreakdown.Neutral)

	assert.Equal(t, 2, s.CountryCoverage.UniquePublisherCountries)
	assert.Equal(t, 2, s.CountryCoverage.UniqueOriginCountries)
	assert.Equal(t, 2, s.CountryCoverage.PublisherDistribution["GB"])
	assert.Equal(t, 2, s.CountryCoverage.OriginDistribution["JP"])

	assert.Equal(t, 2, s.CredibilityAnalysis.ScoreDistribution.High)
	assert.Equal(t, 1, s.CredibilityAnalysis.ScoreDistribution.Medium)
	assert.Equal(t, 1, s.CredibilityAnalysis.ScoreDistribution.Unknown)
	assert.Equal(t, 1, s.CredibilityAnalysis.WireServices)

	// (80+92+95+50)/4
	assert.Equal(t, 79.3, s.CredibilityAnalysis.AverageScore)
}

func TestDiversityOnlyCountsResolvedPublishers(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	articles := []article.Article{
		{SourceName: "a", PublisherCountry: "GB", CredibilityScore: 92,
			Classification: article.ClassForeign, CredibilityCategory: refdata.CategoryHigh},
		{SourceName: "b", PublisherCountry: "JP", CredibilityScore: 78,
			Classification: article.ClassLocal, CredibilityCategory: refdata.CategoryMedium},
		{SourceName: "c", Classification: article.ClassNeutral,
			CredibilityCategory: refdata.CategoryUnknown},
	}

	s := b.Summarize(articles)
	d := s.DiversityMetrics

	assert.Equal(t, []string{"GB", "JP"}, d.Countries)
	assert.Equal(t, 2, d.UniqueCountries)
	assert.Equal(t, 3, d.TotalSources)
	assert.Equal(t, 85.0, d.AverageCredibility)
	assert.Equal(t, 1, d.ClassificationBreakdown["neutral"])
	assert.Equal(t, 1, d.CredibilityBreakdown["unknown"])
}

func TestQualityIndicators(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	var articles []article.Article
	for i := 0; i < 2; i++ {
		articles = append(articles, article.Article{
			SourceName: "l", OriginCountry: "JP", PublisherCountry: "JP",
			Classification: article.ClassLocal, CredibilityScore: 90,
			CredibilityCategory: refdata.CategoryHigh})
	}
	for i := 0; i < 4; i++ {
		articles = append(articles, article.Article{
			SourceName: "f", OriginCountry: "JP", PublisherCountry: "GB",
			Classification: article.ClassForeign, CredibilityScore: 40,
			CredibilityCategory: refdata.CategoryLow})
	}

	s := b.Summarize(articles)
	q := s.QualityIndicators

	// 2 publisher countries + 1 origin country
	assert.Equal(t, 3, q.GeographicDiversity)
	// 2 of 6 articles rate high or medium
	assert.Equal(t, 33.3, q.SourceReliability)
	// local/foreign = 2/4
	assert.Equal(t, 0.5, q.PerspectiveBalance)
}

func TestPerspectiveBalanceFloorsDivisor(t *testing.T) {
	b := NewBuilder(refdata.Fallback())

	articles := []article.Article{
		{SourceName: "a", OriginCountry: "JP", PublisherCountry: "JP",
			Classification: article.ClassLocal, CredibilityScore: 90,
			CredibilityCategory: refdata.CategoryHigh},
	}

	s := b.Summarize(articles)
	// 1 local, 0 foreign: smaller/max(larger,1) = 0/1
	assert.Equal(t, 0.0, s.QualityIndicators.PerspectiveBalance)
}

package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenBen05059997/globalPerspective-v1/internal/article"
	"github.com/BenBen05059997/globalPerspective-v1/internal/refdata"
)

func sampleInput() []article.Raw {
	return []article.Raw{
		{
			Source: &article.RawSource{Name: "Reuters"},
			Title:  "Tokyo exchange closes higher after policy shift",
			URL:    "https://www.reuters.com/markets/asia/tokyo-1",
		},
		{
			Source: &article.RawSource{Name: "BBC News"},
			Title:  "Tokyo exchange closes higher after policy shift",
			URL:    "https://www.bbc.co.uk/news/business-1", // duplicate headline
		},
		{
			Source: &article.RawSource{Name: "BBC News"},
			Title:  "London museums report record attendance",
			URL:    "https://www.bbc.co.uk/news/uk-2",
		},
		{
			Title: "", URL: "", // dropped during normalization
		},
		{
			Source: &article.RawSource{Name: "Unknown Gazette"},
			Title:  "Community garden wins national award",
			URL:    "https://unknown-gazette.example/garden",
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	p := New(refdata.Fallback())

	result := p.Run(sampleInput())

	counted := 0
	for _, s := range result.Stacks {
		counted += s.Statistics.TotalArticles
	}
	// 5 raw - 1 empty - 1 duplicate headline
	assert.Equal(t, 3, counted)
	assert.Equal(t, 3, result.Summary.TotalArticles)

	require.NotEmpty(t, result.Stacks)
	for _, s := range result.Stacks {
		assert.NotEmpty(t, s.OriginCountry)
		assert.NotNil(t, s.ForeignByCountry)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	p := New(refdata.Fallback())

	first, err := json.Marshal(p.Run(sampleInput()))
	require.NoError(t, err)
	second, err := json.Marshal(p.Run(sampleInput()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRunEmptyInput(t *testing.T) {
	p := New(refdata.Fallback())

	result := p.Run(nil)

	assert.Empty(t, result.Stacks)
	assert.Zero(t, result.Summary.TotalArticles)
	assert.NotNil(t, result.Summary.CountryCoverage.PublisherDistribution)
}

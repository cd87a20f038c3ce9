// Package pipeline runs raw articles through normalization, deduplication,
// classification and stack building in a single deterministic pass.
package pipeline

import (
	"log/slog"
	"time"

	"github.com/BenBen05059997/globalPerspective-v1/internal/article"
	"github.com/BenBen05059997/globalPerspective-v1/internal/classify"
	"github.com/BenBen05059997/globalPerspective-v1/internal/metrics"
	"github.com/BenBen05059997/globalPerspective-v1/internal/refdata"
	"github.com/BenBen05059997/globalPerspective-v1/internal/stacks"
)

// Result is the complete output of one pipeline run.
type Result struct {
	Stacks  []stacks.Stack `json:"stacks"`
	Summary stacks.Summary `json:"summary"`
}

type Pipeline struct {
	classifier *classify.Classifier
	builder    *stacks.Builder
}

func New(store *refdata.Store) *Pipeline {
	return &Pipeline{
		classifier: classify.New(store),
		builder:    stacks.NewBuilder(store),
	}
}

// Run processes raw articles end to end. Equal inputs always produce equal
// results: every stage is order-stable and free of randomness.
func (p *Pipeline) Run(raw []article.Raw) Result {
	start := time.Now()

	normalized := article.Normalize(raw)
	deduped := article.Dedupe(normalized)

	metrics.Global.AddArticlesProcessed(int64(len(normalized)))
	metrics.Global.AddDuplicatesFiltered(int64(len(normalized) - len(deduped)))

	deduped = p.classifier.Classify(deduped)

	for _, a := range deduped {
		metrics.Global.IncrementClassification(string(a.Classification))
		if a.PublisherType == refdata.TypeUnknown {
			metrics.Global.IncrementUnknownPublishers()
		}
	}

	result := Result{
		Stacks:  p.builder.Build(deduped),
		Summary: p.builder.Summarize(deduped),
	}

	elapsed := time.Since(start)
	metrics.Global.RecordProcessingTime(elapsed)

	slog.Info("Pipeline run complete",
		"raw", len(raw),
		"normalized", len(normalized),
		"deduplicated", len(deduped),
		"stacks", len(result.Stacks),
		"duration", elapsed)

	return result
}

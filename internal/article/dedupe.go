package article

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Titles at or above this token-set similarity (0-100) count as duplicates.
const similarityThreshold = 90

// Dedupe collapses near-duplicate articles, preserving first-seen order.
// An item is dropped when its non-empty URL exactly matches a kept item's
// URL, or when its title is near-identical to a kept item's title. Both
// checks run against the kept set only, so duplicates of duplicates are
// removed as well. Items with empty URLs are never matched by URL.
func Dedupe(items []Article) []Article {
	kept := make([]Article, 0, len(items))
	seenURLs := make(map[string]struct{}, len(items))

	for _, it := range items {
		u := strings.TrimSpace(it.URL)
		if u != "" {
			if _, dup := seenURLs[u]; dup {
				continue
			}
		}

		title := strings.ToLower(strings.TrimSpace(it.Title))
		dup := false
		for i := range kept {
			other := strings.ToLower(strings.TrimSpace(kept[i].Title))
			if fuzzy.TokenSetRatio(title, other) >= similarityThreshold {
				dup = true
				break
			}
		}
		if dup {
			continue
		}

		if u != "" {
			seenURLs[u] = struct{}{}
		}
		kept = append(kept, it)
	}
	return kept
}

// NormalizeAndDedupe is the combined dedup stage: shape raw records, then
// collapse near-duplicates.
func NormalizeAndDedupe(raw []Raw) []Article {
	return Dedupe(Normalize(raw))
}

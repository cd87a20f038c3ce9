// Package article defines the working record that flows through the
// pipeline and the normalization/dedup stage that shapes raw input into it.
package article

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/BenBen05059997/globalPerspective-v1/internal/refdata"
)

// Classification is the perspective label assigned by the classifier.
// After classification it is always one of exactly four values.
type Classification string

const (
	ClassLocal    Classification = "local"
	ClassForeign  Classification = "foreign"
	ClassRegional Classification = "regional"
	ClassNeutral  Classification = "neutral"
)

// RawSource is the source block of a raw input record. May be null.
type RawSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Raw is one raw article record as supplied by an ingestion source.
// Optional fields may be missing; a missing field is never fatal.
type Raw struct {
	Source      *RawSource `json:"source"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	PublishedAt string     `json:"publishedAt"`
	Language    string     `json:"language"`
}

// Article is the mutable working record. The derived fields stay zero-valued
// until the corresponding pipeline stage assigns them; an unknown country is
// an empty string, never a sentinel.
type Article struct {
	ID          string `json:"id"`
	SourceID    string `json:"source_id,omitempty"`
	SourceName  string `json:"source_name"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	Language    string `json:"language,omitempty"`

	// Assigned by the classifier.
	PublisherCountry    string           `json:"publisher_country,omitempty"`
	OriginCountry       string           `json:"origin_country_guess,omitempty"`
	Classification      Classification   `json:"classification,omitempty"`
	CredibilityScore    int              `json:"credibility_score"`
	CredibilityCategory refdata.Category `json:"credibility_category,omitempty"`
	BiasRating          string           `json:"bias_rating,omitempty"`
	FactualReporting    string           `json:"factual_reporting,omitempty"`
	PublisherType       string           `json:"publisher_type,omitempty"`
	IsWireService       bool             `json:"is_wire_service"`
	IsStateControlled   bool             `json:"is_state_controlled"`

	// Denormalized display metadata, filled when the country resolves.
	PublisherCountryName string `json:"publisher_country_name,omitempty"`
	PublisherRegion      string `json:"publisher_region,omitempty"`
	PublisherFlag        string `json:"publisher_flag,omitempty"`
	OriginCountryName    string `json:"origin_country_name,omitempty"`
	OriginRegion         string `json:"origin_region,omitempty"`
	OriginFlag           string `json:"origin_flag,omitempty"`
}

// Normalize shapes raw records into Articles with derived fields unset.
// Records missing both title and URL are dropped; everything else passes
// through with safe defaults.
func Normalize(raw []Raw) []Article {
	out := make([]Article, 0, len(raw))
	for _, r := range raw {
		title := strings.TrimSpace(r.Title)
		u := strings.TrimSpace(r.URL)
		if title == "" && u == "" {
			continue
		}
		a := Article{
			URL:         u,
			Title:       title,
			Description: strings.TrimSpace(r.Description),
			PublishedAt: r.PublishedAt,
			Language:    r.Language,
		}
		if r.Source != nil {
			a.SourceID = r.Source.ID
			a.SourceName = strings.TrimSpace(r.Source.Name)
		}
		a.ID = contentKey(a.Title, a.Description)
		out = append(out, a)
	}
	return out
}

// contentKey derives a stable identifier from title and description. Hash
// based so repeated runs over the same input produce identical output.
func contentKey(title, description string) string {
	h := sha1.New()
	h.Write([]byte(strings.ToLower(title + description)))
	return hex.EncodeToString(h.Sum(nil))
}

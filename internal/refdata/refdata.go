// Package refdata holds the static country and publisher reference data the
// classification pipeline consults. The store is loaded once at startup and
// never mutated afterwards, so it is safe for concurrent readers.
package refdata

import (
	"net/url"
	"strings"
)

// Country is an immutable reference entity keyed by its ISO-3166 code.
type Country struct {
	Code        string   `yaml:"code" json:"code"`
	Name        string   `yaml:"name" json:"name"`
	Region      string   `yaml:"region" json:"region"`
	Continent   string   `yaml:"continent" json:"continent"`
	Timezone    string   `yaml:"timezone" json:"timezone"`
	Language    string   `yaml:"language" json:"language"`
	Flag        string   `yaml:"flag" json:"flag"`
	MajorCities []string `yaml:"cities" json:"major_cities,omitempty"`
}

// Publisher types as they appear in the dataset.
const (
	TypeWireService       = "wire_service"
	TypePublicBroadcaster = "public_broadcaster"
	TypeNewspaper         = "newspaper"
	TypeStateMedia        = "state_media"
	TypeOther             = "other"
	TypeUnknown           = "unknown"
)

// Publisher is an immutable reference entity describing a news organization.
type Publisher struct {
	Name        string   `yaml:"name" json:"name"`
	Country     string   `yaml:"country" json:"country"`
	Credibility int      `yaml:"credibility" json:"credibility_score"`
	Type        string   `yaml:"type" json:"type"`
	Bias        string   `yaml:"bias" json:"bias_rating"`
	Factual     string   `yaml:"factual" json:"factual_reporting"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Domains     []string `yaml:"domains" json:"-"`
}

// Category buckets a credibility score against the dataset thresholds.
type Category string

const (
	CategoryHigh    Category = "high"
	CategoryMedium  Category = "medium"
	CategoryLow     Category = "low"
	CategoryUnknown Category = "unknown"
)

type domainEntry struct {
	domain    string
	publisher string
}

// Store is the read-only lookup context passed into the classifier and
// aggregator. Publishers and domains keep their dataset declaration order
// because substring lookups are first-hit-wins.
type Store struct {
	countries       []Country
	countryByCode   map[string]int
	publishers      []Publisher
	publisherByName map[string]int
	domains         []domainEntry
	wireServices    map[string]struct{}
	stateControlled map[string]struct{}
	highThreshold   int
	lowThreshold    int
}

// GetCountry looks up a country by its ISO code.
func (s *Store) GetCountry(code string) (Country, bool) {
	i, ok := s.countryByCode[code]
	if !ok {
		return Country{}, false
	}
	return s.countries[i], true
}

// GetPublisher resolves a source name to a publisher. Lookup order: exact
// match, case-insensitive match, then substring match in either direction.
// Iteration follows dataset declaration order so the first hit is stable.
func (s *Store) GetPublisher(name string) (Publisher, bool) {
	if name == "" {
		return Publisher{}, false
	}
	if i, ok := s.publisherByName[name]; ok {
		return s.publishers[i], true
	}
	lower := strings.ToLower(name)
	for _, p := range s.publishers {
		if strings.ToLower(p.Name) == lower {
			return p, true
		}
	}
	for _, p := range s.publishers {
		pl := strings.ToLower(p.Name)
		if strings.Contains(pl, lower) || strings.Contains(lower, pl) {
			return p, true
		}
	}
	return Publisher{}, false
}

// PublisherByDomain resolves an article URL to a publisher through the
// domain index: normalized exact match first, then substring match in
// index declaration order.
func (s *Store) PublisherByDomain(rawURL string) (Publisher, bool) {
	host := normalizeHost(rawURL)
	if host == "" {
		return Publisher{}, false
	}
	for _, e := range s.domains {
		if e.domain == host {
			return s.GetPublisher(e.publisher)
		}
	}
	for _, e := range s.domains {
		if strings.Contains(host, e.domain) || strings.Contains(e.domain, host) {
			return s.GetPublisher(e.publisher)
		}
	}
	return Publisher{}, false
}

// IsWireService reports whether the named publisher is on the wire-service
// list. Wire services always classify as neutral.
func (s *Store) IsWireService(name string) bool {
	_, ok := s.wireServices[name]
	return ok
}

// IsStateControlled reports whether the named publisher is state-controlled.
func (s *Store) IsStateControlled(name string) bool {
	_, ok := s.stateControlled[name]
	return ok
}

// CredibilityCategory buckets a 0-100 score against the dataset thresholds.
func (s *Store) CredibilityCategory(score int) Category {
	switch {
	case score >= s.highThreshold:
		return CategoryHigh
	case score >= s.lowThreshold:
		return CategoryMedium
	default:
		return CategoryLow
	}
}

// Countries returns the number of loaded countries (used for startup logging).
func (s *Store) Countries() int { return len(s.countries) }

// Publishers returns the number of loaded publishers.
func (s *Store) Publishers() int { return len(s.publishers) }

func normalizeHost(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

func (s *Store) index() {
	s.countryByCode = make(map[string]int, len(s.countries))
	for i, c := range s.countries {
		s.countryByCode[c.Code] = i
	}
	s.publisherByName = make(map[string]int, len(s.publishers))
	for i, p := range s.publishers {
		s.publisherByName[p.Name] = i
	}
	s.domains = s.domains[:0]
	for _, p := range s.publishers {
		for _, d := range p.Domains {
			s.domains = append(s.domains, domainEntry{domain: strings.ToLower(d), publisher: p.Name})
		}
	}
}

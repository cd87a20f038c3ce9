// Package geo infers the country a story is about from its URL or text.
// Resolution is a layered chain of strategies tried in order, first hit
// wins. Everything here is pure: same input, same answer.
package geo

import (
	"strings"

	"github.com/BenBen05059997/globalPerspective-v1/internal/refdata"
)

// Resolver is one origin-country strategy. Implementations must be
// side-effect free.
type Resolver interface {
	Resolve(title, description, url string) (code string, ok bool)
}

// Chain tries each resolver in order and returns the first hit.
type Chain []Resolver

func (c Chain) Resolve(title, description, url string) (string, bool) {
	for _, r := range c {
		if code, ok := r.Resolve(title, description, url); ok {
			return code, true
		}
	}
	return "", false
}

// NewResolver builds the standard chain: publisher domain lookup first,
// gazetteer keyword scan second.
func NewResolver(store *refdata.Store) Chain {
	return Chain{
		&DomainResolver{Store: store},
		NewGazetteer(),
	}
}

// DomainResolver maps an article URL to the home country of the publisher
// that owns the domain.
type DomainResolver struct {
	Store *refdata.Store
}

func (d *DomainResolver) Resolve(_, _, url string) (string, bool) {
	if url == "" {
		return "", false
	}
	pub, ok := d.Store.PublisherByDomain(url)
	if !ok || pub.Country == "" {
		return "", false
	}
	return pub.Country, true
}

// Gazetteer scans lowercased title+description for place and nationality
// keywords using word-boundary matching. The earliest match in the text
// wins; matches starting at the same position resolve by table order.
type Gazetteer struct {
	hints []hint
}

func (g *Gazetteer) Resolve(title, description, _ string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(title + " " + description))
	if text == "" {
		return "", false
	}

	best := -1
	code := ""
	for _, h := range g.hints {
		loc := h.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if best == -1 || loc[0] < best {
			best = loc[0]
			code = h.country
		}
	}
	if best == -1 {
		return "", false
	}
	return code, true
}

// Package classify resolves each article's publisher and origin country and
// assigns the local/foreign/regional/neutral perspective label.
package classify

import (
	"github.com/BenBen05059997/globalPerspective-v1/internal/article"
	"github.com/BenBen05059997/globalPerspective-v1/internal/geo"
	"github.com/BenBen05059997/globalPerspective-v1/internal/refdata"
)

// Unknown sources get a middle-of-the-road score with category "unknown".
const defaultCredibility = 50

// Classifier holds the read-only lookup context. It keeps no per-call state,
// so one instance serves any number of batches concurrently.
type Classifier struct {
	store  *refdata.Store
	origin geo.Resolver
}

// New builds a classifier over the given reference store, using the standard
// origin resolution chain.
func New(store *refdata.Store) *Classifier {
	return &Classifier{store: store, origin: geo.NewResolver(store)}
}

// Classify assigns the derived fields on every article in place and returns
// the slice. Every article ends with one of the four classification labels;
// unresolved publishers and origins are explicit unknown states, never
// errors.
func (c *Classifier) Classify(articles []article.Article) []article.Article {
	for i := range articles {
		c.classifyOne(&articles[i])
	}
	return articles
}

func (c *Classifier) classifyOne(a *article.Article) {
	pub, found := c.store.GetPublisher(a.SourceName)
	if !found && a.URL != "" {
		// Unrecognized source string; fall back to the URL domain and, on a
		// hit, adopt the canonical publisher name.
		if byDomain, ok := c.store.PublisherByDomain(a.URL); ok {
			pub, found = byDomain, true
			a.SourceName = byDomain.Name
		}
	}

	if found {
		a.PublisherCountry = pub.Country
		a.CredibilityScore = pub.Credibility
		a.CredibilityCategory = c.store.CredibilityCategory(pub.Credibility)
		a.BiasRating = pub.Bias
		a.FactualReporting = pub.Factual
		a.PublisherType = pub.Type
		a.IsWireService = c.store.IsWireService(pub.Name)
		a.IsStateControlled = c.store.IsStateControlled(pub.Name)
	} else {
		a.CredibilityScore = defaultCredibility
		a.CredibilityCategory = refdata.CategoryUnknown
		a.BiasRating = "unknown"
		a.FactualReporting = "unknown"
		a.PublisherType = refdata.TypeUnknown
		a.IsWireService = false
		a.IsStateControlled = false
	}

	if code, ok := c.origin.Resolve(a.Title, a.Description, a.URL); ok {
		a.OriginCountry = code
	}

	a.Classification = c.decide(a, found)
	c.attachCountryMetadata(a)
}

// decide applies the classification rules in strict order. Wire-service
// neutrality overrides the geographic logic, and "foreign" is the
// conservative default when the origin is ambiguous but the publisher known.
func (c *Classifier) decide(a *article.Article, publisherKnown bool) article.Classification {
	switch {
	case publisherKnown && a.IsWireService:
		return article.ClassNeutral
	case a.OriginCountry != "" && a.PublisherCountry != "":
		if a.OriginCountry == a.PublisherCountry {
			return article.ClassLocal
		}
		if c.sameRegion(a.OriginCountry, a.PublisherCountry) {
			return article.ClassRegional
		}
		return article.ClassForeign
	case a.PublisherCountry != "":
		return article.ClassForeign
	default:
		return article.ClassNeutral
	}
}

func (c *Classifier) sameRegion(codeA, codeB string) bool {
	ca, okA := c.store.GetCountry(codeA)
	cb, okB := c.store.GetCountry(codeB)
	return okA && okB && ca.Region == cb.Region
}

func (c *Classifier) attachCountryMetadata(a *article.Article) {
	if a.PublisherCountry != "" {
		if country, ok := c.store.GetCountry(a.PublisherCountry); ok {
			a.PublisherCountryName = country.Name
			a.PublisherRegion = country.Region
			a.PublisherFlag = country.Flag
		}
	}
	if a.OriginCountry != "" {
		if country, ok := c.store.GetCountry(a.OriginCountry); ok {
			a.OriginCountryName = country.Name
			a.OriginRegion = country.Region
			a.OriginFlag = country.Flag
		}
	}
}

package ingest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML flattens HTML markup in feed titles and descriptions to plain
// text. Invalid markup falls back to the input unchanged.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	doc.Find("script, style").Remove()

	text := doc.Text()
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}

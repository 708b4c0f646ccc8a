package service

import (
	"context"
)

// PageSnapshot holds the SEO-relevant facts extracted from one web page.
type PageSnapshot struct {
	URL             string   // The URL that was fetched, after redirects.
	StatusCode      int      // HTTP status of the final response.
	Title           string   // Contents of the <title> tag.
	MetaDescription string   // Contents of the description meta tag.
	Headings        []string // Text of the top-level <h1> headings.
	ImageCount      int      // Number of <img> tags on the page.
	HasJSONLD       bool     // Whether any ld+json script block is present.
	TextExcerpt     string   // Bounded excerpt of the visible page text.
}

// SiteFetcher defines the interface for retrieving and parsing an external
// website so its SEO posture can be audited.
type SiteFetcher interface {
	// Fetch downloads the page at url and extracts a snapshot of it.
	Fetch(ctx context.Context, url string) (*PageSnapshot, error)
}

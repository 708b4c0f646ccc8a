// Package webaudit fetches external websites and extracts the DOM facts
// needed to grade their SEO posture.
package webaudit

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"vault/config"
	"vault/internal/domain/service"
)

const (
	defaultUserAgent   = "AiVault-Auditor/1.0"
	defaultTimeout     = 10 * time.Second
	textExcerptMaxSize = 3000
)

// httpFetcher implements service.SiteFetcher with a plain HTTP client and
// a goquery DOM walk.
type httpFetcher struct {
	client    *http.Client
	userAgent string
}

// NewSiteFetcher creates a site fetcher using the configured user agent
// and timeout.
func NewSiteFetcher(cfg *config.Config) service.SiteFetcher {
	userAgent := defaultUserAgent
	timeout := defaultTimeout
	if cfg.Auditor != nil {
		if cfg.Auditor.UserAgent != "" {
			userAgent = cfg.Auditor.UserAgent
		}
		if cfg.Auditor.Timeout > 0 {
			timeout = cfg.Auditor.Timeout
		}
	}

	return &httpFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch downloads the page at url and extracts a snapshot of it.
func (f *httpFetcher) Fetch(ctx context.Context, url string) (*service.PageSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch site")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("fetch site: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	return snapshotFromDocument(resp.Request.URL.String(), resp.StatusCode, doc), nil
}

func snapshotFromDocument(url string, status int, doc *goquery.Document) *service.PageSnapshot {
	snap := &service.PageSnapshot{
		URL:        url,
		StatusCode: status,
	}

	snap.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if snap.Title == "" {
		snap.Title = "Missing Title"
	}

	snap.MetaDescription = "Missing Description"
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		snap.MetaDescription = content
	}

	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		snap.Headings = append(snap.Headings, strings.TrimSpace(s.Text()))
	})

	snap.ImageCount = doc.Find("img").Length()
	snap.HasJSONLD = doc.Find(`script[type="application/ld+json"]`).Length() > 0

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if len(text) > textExcerptMaxSize {
		text = text[:textExcerptMaxSize]
	}
	snap.TextExcerpt = text

	return snap
}

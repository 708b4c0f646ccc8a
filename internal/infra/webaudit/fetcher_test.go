package webaudit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vault/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>Joe's Cafe - Best Coffee in Town</title>
<meta name="description" content="Neighborhood cafe serving filter coffee.">
<script type="application/ld+json">{"@type":"Cafe"}</script>
</head>
<body>
<h1>Welcome to Joe's Cafe</h1>
<img src="/front.jpg"><img src="/menu.jpg">
<p>We serve coffee and snacks all day.</p>
</body>
</html>`

func newTestFetcher() *httpFetcher {
	cfg := &config.Config{
		Auditor: &config.AuditorConfig{
			UserAgent: "AiVault-Auditor/1.0",
			Timeout:   5 * time.Second,
		},
	}

	return NewSiteFetcher(cfg).(*httpFetcher)
}

func TestFetcher_ExtractsSEOElements(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer server.Close()

	snap, err := newTestFetcher().Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "AiVault-Auditor/1.0", gotUserAgent)
	assert.Equal(t, http.StatusOK, snap.StatusCode)
	assert.Equal(t, "Joe's Cafe - Best Coffee in Town", snap.Title)
	assert.Equal(t, "Neighborhood cafe serving filter coffee.", snap.MetaDescription)
	require.Len(t, snap.Headings, 1)
	assert.Equal(t, "Welcome to Joe's Cafe", snap.Headings[0])
	assert.Equal(t, 2, snap.ImageCount)
	assert.True(t, snap.HasJSONLD)
	assert.Contains(t, snap.TextExcerpt, "We serve coffee and snacks all day.")
}

func TestFetcher_MissingElementsGetPlaceholders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>bare page</p></body></html>`))
	}))
	defer server.Close()

	snap, err := newTestFetcher().Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Missing Title", snap.Title)
	assert.Equal(t, "Missing Description", snap.MetaDescription)
	assert.Empty(t, snap.Headings)
	assert.Zero(t, snap.ImageCount)
	assert.False(t, snap.HasJSONLD)
}

func TestFetcher_NonSuccessStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	snap, err := newTestFetcher().Fetch(context.Background(), server.URL)
	assert.Error(t, err)
	assert.Nil(t, snap)
}

func TestFetcher_UnreachableHost(t *testing.T) {
	snap, err := newTestFetcher().Fetch(context.Background(), "http://127.0.0.1:1")
	assert.Error(t, err)
	assert.Nil(t, snap)
}

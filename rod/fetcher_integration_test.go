//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noto-news/noto"
	"github.com/noto-news/noto/rod"
)

func TestFetcher_Fetch_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	// Serve an article body injected by JavaScript, like a hydrating
	// news page.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Article</title></head>
<body>
<article id="content">Chargement...</article>
<script>
document.getElementById('content').textContent = 'Le gouvernement annonce une réforme.';
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "Le gouvernement annonce une réforme.")
	assert.NotContains(t, html, "Chargement...")
}

func TestFetcher_Fetch_TimeoutTriggersOnSlowPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>delayed</body></html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(100 * time.Millisecond))
	require.NoError(t, err)
	defer fetcher.Close()

	_, err = fetcher.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestFetcher_Close_Idempotent(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	require.NoError(t, fetcher.Close())
	require.NoError(t, fetcher.Close())
}

func TestFetcher_Fetch_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	require.NoError(t, fetcher.Close())

	_, err = fetcher.Fetch(context.Background(), "http://example.com")

	require.Error(t, err)
	assert.Equal(t, noto.EINVALID, noto.ErrorCode(err))
	assert.Contains(t, noto.ErrorMessage(err), "closed")
}

package mediaproxy

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/folderforge/folderforge/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func newTestProxy(t *testing.T, hosts []string) *Service {
	t.Helper()
	svc, err := NewService(hosts, 8, testLogger())
	require.NoError(t, err)
	return svc
}

func TestFetch_DisallowedHost(t *testing.T) {
	svc := newTestProxy(t, []string{"cdn.example.com"})

	_, err := svc.Fetch(context.Background(), "https://evil.example.net/a.png", false)
	assert.True(t, errors.Is(err, common.ErrorForbidden))
}

func TestFetch_InvalidURL(t *testing.T) {
	svc := newTestProxy(t, []string{"cdn.example.com"})

	for _, raw := range []string{"", "not a url", "ftp://cdn.example.com/a"} {
		_, err := svc.Fetch(context.Background(), raw, false)
		assert.True(t, errors.Is(err, common.ErrorValidation), "url %q", raw)
	}
}

func TestFetch_CachesResponses(t *testing.T) {
	hits := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg-bytes"))
	}))
	defer upstream.Close()

	host := mustHostname(t, upstream.URL)
	svc := newTestProxy(t, []string{host})

	first, err := svc.Fetch(context.Background(), upstream.URL+"/a.jpg", false)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, "image/jpeg", first.ContentType)
	assert.Equal(t, []byte("jpeg-bytes"), first.Body)

	second, err := svc.Fetch(context.Background(), upstream.URL+"/a.jpg", false)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, 1, hits)
}

func TestFetch_NocacheBypassesCache(t *testing.T) {
	hits := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("x"))
	}))
	defer upstream.Close()

	svc := newTestProxy(t, []string{mustHostname(t, upstream.URL)})

	for i := 0; i < 2; i++ {
		res, err := svc.Fetch(context.Background(), upstream.URL+"/b.png", true)
		require.NoError(t, err)
		assert.False(t, res.FromCache)
	}
	assert.Equal(t, 2, hits)
}

func TestFetch_DefaultContentType(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		w.Write([]byte{0x89, 0x50})
	}))
	defer upstream.Close()

	svc := newTestProxy(t, []string{mustHostname(t, upstream.URL)})

	res, err := svc.Fetch(context.Background(), upstream.URL+"/raw", false)
	require.NoError(t, err)
	assert.Equal(t, DefaultContentType, res.ContentType)
}

func TestFetch_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer upstream.Close()

	svc := newTestProxy(t, []string{mustHostname(t, upstream.URL)})

	_, err := svc.Fetch(context.Background(), upstream.URL+"/c.png", false)
	assert.True(t, errors.Is(err, common.ErrorUpstream))
}

func TestCacheControl(t *testing.T) {
	assert.Equal(t, "no-store, no-cache, must-revalidate", CacheControl(true))
	assert.Equal(t, "public, max-age=31536000, immutable", CacheControl(false))
}

func mustHostname(t *testing.T, rawURL string) string {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return u.Hostname()
}

package mediaproxy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/folderforge/folderforge/internal/logging"
)

const (
	// DefaultContentType is used when the upstream does not declare one.
	DefaultContentType = "image/png"

	// Upstream objects larger than this are served but not cached.
	maxCacheableBytes = 5 << 20

	maxBodyBytes = 25 << 20

	fetchTimeout = 15 * time.Second
)

// Result is a proxied upstream object.
type Result struct {
	Body        []byte
	ContentType string
	FromCache   bool
}

type cacheEntry struct {
	body        []byte
	contentType string
}

type Service struct {
	client  *http.Client
	allowed map[string]bool
	cache   *lru.Cache[string, cacheEntry]
	logger  logging.Logger
}

func NewService(allowedHosts []string, cacheEntries int, logger logging.Logger) (*Service, error) {
	if cacheEntries <= 0 {
		cacheEntries = 1
	}

	cache, err := lru.New[string, cacheEntry](cacheEntries)
	if err != nil {
		return nil, fmt.Errorf("error creating proxy cache: %w", err)
	}

	allowed := make(map[string]bool, len(allowedHosts))
	for _, h := range allowedHosts {
		allowed[strings.ToLower(h)] = true
	}

	return &Service{
		client:  &http.Client{Timeout: fetchTimeout},
		allowed: allowed,
		cache:   cache,
		logger:  logger,
	}, nil
}

// CacheControl returns the response cache policy for a request.
// Bypassed requests must never be cached by intermediaries either.
func CacheControl(nocache bool) string {
	if nocache {
		return "no-store, no-cache, must-revalidate"
	}
	return "public, max-age=31536000, immutable"
}

// Fetch retrieves an upstream object, serving from the in-memory cache
// unless nocache is set.
func (s *Service) Fetch(ctx context.Context, rawURL string, nocache bool) (*Result, error) {
	target, err := url.Parse(rawURL)
	if err != nil || target.Host == "" || (target.Scheme != "http" && target.Scheme != "https") {
		return nil, fmt.Errorf("%w: invalid url", common.ErrorValidation)
	}

	if !s.allowed[strings.ToLower(target.Hostname())] {
		return nil, fmt.Errorf("%w: host %q is not allowed", common.ErrorForbidden, target.Hostname())
	}

	if !nocache {
		if entry, ok := s.cache.Get(rawURL); ok {
			s.logger.Debug(ctx, "proxy cache hit", "url", rawURL)
			return &Result{Body: entry.body, ContentType: entry.contentType, FromCache: true}, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid url", common.ErrorValidation)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: upstream returned %d", common.ErrorUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = DefaultContentType
	}

	if !nocache && len(body) <= maxCacheableBytes {
		s.cache.Add(rawURL, cacheEntry{body: body, contentType: contentType})
	}

	return &Result{Body: body, ContentType: contentType}, nil
}

package fetch

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// DefaultPageCacheTTL is how long an extracted job page stays fresh.
const DefaultPageCacheTTL = 30 * time.Minute

// CachedFetcher wraps JobPage with an in-memory TTL cache keyed by URL.
// Failed fetches are never cached.
type CachedFetcher struct {
	cache      *cache.Cache
	options    *Options
	useBrowser bool
	logger     *zap.Logger
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL   time.Duration
	UseBrowser bool
	Options    *Options
	Logger     *zap.Logger
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL: DefaultPageCacheTTL,
		Options:  DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = DefaultPageCacheTTL
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedFetcher{
		cache:      cache.New(config.CacheTTL, 2*config.CacheTTL),
		options:    config.Options,
		useBrowser: config.UseBrowser,
		logger:     logger,
	}
}

// CachedResult extends Page with cache metadata.
type CachedResult struct {
	*Page
	FromCache bool
}

// Fetch retrieves a job page, using the cache if an entry is still fresh.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	key := cacheKey(urlStr)
	if cached, ok := f.cache.Get(key); ok {
		f.logger.Debug("job page cache hit", zap.String("url", urlStr))
		return &CachedResult{Page: cached.(*Page), FromCache: true}, nil
	}

	page, err := JobPage(ctx, urlStr, f.options, f.useBrowser, f.logger)
	if err != nil {
		return nil, err
	}

	f.cache.SetDefault(key, page)
	f.logger.Debug("job page cached", zap.String("url", urlStr), zap.Int("cached_pages", f.Len()))
	return &CachedResult{Page: page}, nil
}

// PageText implements the workflow's page-grounding dependency.
func (f *CachedFetcher) PageText(ctx context.Context, urlStr string) (string, error) {
	result, err := f.Fetch(ctx, urlStr)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// Len returns the number of cached pages (expired entries may be counted until cleanup).
func (f *CachedFetcher) Len() int {
	return f.cache.ItemCount()
}

func cacheKey(urlStr string) string {
	return strings.TrimRight(strings.TrimSpace(urlStr), "/")
}

package fs

import (
	"context"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedHost keeps directory listings for a while so that re-entering a
// directory or refreshing both panels does not hit the disk every time.
// Creating an entry invalidates its parent directory.
type CachedHost struct {
	inner Host
	cache *gocache.Cache
}

// NewCachedHost wraps inner with a listing cache expiring after ttl.
func NewCachedHost(inner Host, ttl time.Duration) *CachedHost {
	return &CachedHost{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func cacheKey(dir string) string {
	return filepath.Clean(dir)
}

func (c *CachedHost) ReadDir(ctx context.Context, dir string) ([]Entry, error) {
	key := cacheKey(dir)
	if cached, ok := c.cache.Get(key); ok {
		entries := cached.([]Entry)
		return append([]Entry(nil), entries...), nil
	}

	entries, err := c.inner.ReadDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, append([]Entry(nil), entries...), gocache.DefaultExpiration)
	return entries, nil
}

// Invalidate forgets the listing of dir.
func (c *CachedHost) Invalidate(dir string) {
	c.cache.Delete(cacheKey(dir))
}

// Flush forgets every listing.
func (c *CachedHost) Flush() {
	c.cache.Flush()
}

func (c *CachedHost) Exists(ctx context.Context, path string) (bool, error) {
	return c.inner.Exists(ctx, path)
}

func (c *CachedHost) CreateDir(ctx context.Context, path string) error {
	defer c.Invalidate(filepath.Dir(path))
	return c.inner.CreateDir(ctx, path)
}

func (c *CachedHost) CreateFile(ctx context.Context, path string) error {
	defer c.Invalidate(filepath.Dir(path))
	return c.inner.CreateFile(ctx, path)
}

package pages

import (
	"context"
	"sync"

	"github.com/golang/groupcache/singleflight"
	"github.com/pkg/errors"
)

// StaticPaths are the counter segments always rendered before the server
// accepts traffic.
var StaticPaths = []string{"0"}

// StaticPathsWith returns StaticPaths followed by extra, without
// duplicates or blank entries.
func StaticPathsWith(extra []string) []string {
	paths := make([]string, 0, len(StaticPaths)+len(extra))
	seen := make(map[string]bool, cap(paths))

	for _, path := range append(append([]string{}, StaticPaths...), extra...) {
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		paths = append(paths, path)
	}

	return paths
}

// Cache holds rendered pages by key. A key missing from the cache is
// rendered once however many requests arrive for it concurrently; the
// waiting requests share that render. Once the cache holds limit pages,
// further misses are rendered but not kept.
type Cache struct {
	mu    sync.RWMutex
	pages map[string][]byte
	limit int
	group singleflight.Group
}

func NewCache(limit int) *Cache {
	return &Cache{
		pages: make(map[string][]byte),
		limit: limit,
	}
}

type RenderFunction func() ([]byte, error)

func (c *Cache) Get(key string, render RenderFunction) ([]byte, error) {
	if page, ok := c.lookup(key); ok {
		return page, nil
	}

	value, err := c.group.Do(key, func() (interface{}, error) {
		if page, ok := c.lookup(key); ok {
			return page, nil
		}

		page, err := render()
		if err != nil {
			return nil, err
		}

		c.store(key, page)
		return page, nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]byte), nil
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.pages)
}

func (c *Cache) lookup(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	page, ok := c.pages[key]
	return page, ok
}

func (c *Cache) store(key string, page []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pages) >= c.limit {
		return
	}

	c.pages[key] = page
}

// Prerender fills the cache with the counter page for each path.
func Prerender(ctx context.Context, cache *Cache, renderer *Renderer, paths []string) error {
	for _, path := range paths {
		segment := path
		if _, err := cache.Get(segment, func() ([]byte, error) { return renderer.Counter(ctx, segment) }); err != nil {
			return errors.Wrapf(err, "failed to prerender %s", CounterPath(segment))
		}
	}

	return nil
}

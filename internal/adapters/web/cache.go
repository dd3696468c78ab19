package web

import (
	"bytes"
	"net/http"
	"strings"
	"sync"
	"time"
)

const maxCacheEntries = 256

// PageCache memoizes rendered HTML for the read-heavy listing pages so
// repeated visits skip the database entirely. Entries expire after the
// configured TTL; invoice mutations drop the affected path eagerly through
// Revalidate, so writes are visible on the next request regardless of TTL.
//
// Only successful GET responses for the allowlisted paths are cached, keyed
// by path plus query string. Requests carrying flash or error parameters
// bypass the cache: those pages are transient by construction.
type PageCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	paths   map[string]bool
}

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

// NewPageCache creates a cache for the dashboard and listing pages.
// A non-positive ttl disables caching.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		paths: map[string]bool{
			"/":          true,
			"/invoices":  true,
			"/customers": true,
		},
	}
}

// Revalidate drops every cached variant of path (all query-string
// combinations). Implements the application layer's Revalidator.
func (c *PageCache) Revalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k == path || strings.HasPrefix(k, path+"?") {
			delete(c.entries, k)
		}
	}
}

// Middleware serves allowlisted GET requests from the cache and stores
// fresh responses on the way out.
func (c *PageCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c.ttl <= 0 || r.Method != http.MethodGet || !c.paths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}
		q := r.URL.Query()
		if q.Get("flash_success") != "" || q.Get("flash_error") != "" || q.Get("error") != "" {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.Path
		if r.URL.RawQuery != "" {
			key += "?" + r.URL.RawQuery
		}

		if body, ok := c.get(key); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("X-Cache", "HIT")
			_, _ = w.Write(body)
			return
		}

		rec := &captureWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		if rec.status == http.StatusOK {
			c.put(key, rec.buf.Bytes())
		}
	})
}

func (c *PageCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.body, true
}

func (c *PageCache) put(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	// Search queries make the key space unbounded; cap it.
	if len(c.entries) >= maxCacheEntries {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = cacheEntry{body: body, expiresAt: now.Add(c.ttl)}
}

// captureWriter tees the response body so it can be cached after serving.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(p []byte) (int, error) {
	cw.buf.Write(p)
	return cw.ResponseWriter.Write(p)
}

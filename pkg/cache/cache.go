package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Entry is a cached response body with its content type.
type Entry struct {
	Body        []byte
	ContentType string
	StoredAt    time.Time
}

// ResponseCache is a bounded TTL LRU for GET responses, keyed by
// "firm:METHOD:path?query". Keys carry the caller's firm so one tenant's
// responses are never served to another. It is constructor-injected rather
// than held as package state so lifetime and test isolation stay explicit.
type ResponseCache struct {
	lru *expirable.LRU[string, Entry]

	mu   sync.Mutex
	keys map[string]struct{} // live keys, for prefix invalidation
}

// New creates a ResponseCache holding at most maxEntries entries for ttl each.
func New(maxEntries int, ttl time.Duration) *ResponseCache {
	if maxEntries <= 0 {
		maxEntries = 100
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	c := &ResponseCache{
		keys: make(map[string]struct{}),
	}
	c.lru = expirable.NewLRU[string, Entry](maxEntries, func(key string, _ Entry) {
		c.mu.Lock()
		delete(c.keys, key)
		c.mu.Unlock()
	}, ttl)
	return c
}

// Key builds the cache key for a request on behalf of one firm.
func Key(firmID, method, path, rawQuery string) string {
	if rawQuery == "" {
		return firmID + ":" + method + ":" + path
	}
	return firmID + ":" + method + ":" + path + "?" + rawQuery
}

// Get returns the cached entry for key, if present and unexpired.
func (c *ResponseCache) Get(key string) (Entry, bool) {
	return c.lru.Get(key)
}

// Set stores an entry under key.
func (c *ResponseCache) Set(key string, e Entry) {
	e.StoredAt = time.Now()
	c.lru.Add(key, e)
	c.mu.Lock()
	c.keys[key] = struct{}{}
	c.mu.Unlock()
}

// InvalidatePrefix drops the firm's cached entries whose path component
// starts with pathPrefix. Writes use this for coarse per-resource
// invalidation; other firms' entries age out on their own TTL.
func (c *ResponseCache) InvalidatePrefix(firmID, pathPrefix string) {
	firmPrefix := firmID + ":"

	c.mu.Lock()
	var stale []string
	for key := range c.keys {
		// key format is firm:METHOD:path[?query]
		if !strings.HasPrefix(key, firmPrefix) {
			continue
		}
		rest := key[len(firmPrefix):]
		if i := strings.Index(rest, ":"); i >= 0 && strings.HasPrefix(rest[i+1:], pathPrefix) {
			stale = append(stale, key)
		}
	}
	c.mu.Unlock()

	for _, key := range stale {
		c.lru.Remove(key)
	}
}

// Len returns the number of live entries.
func (c *ResponseCache) Len() int {
	return c.lru.Len()
}

// Purge drops everything.
func (c *ResponseCache) Purge() {
	c.lru.Purge()
	c.mu.Lock()
	c.keys = make(map[string]struct{})
	c.mu.Unlock()
}

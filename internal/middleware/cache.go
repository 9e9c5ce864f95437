package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"tax-practice-management/pkg/cache"
)

// cacheWriter tees the response body so a successful GET can be stored.
type cacheWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache serves GET responses from the response cache and invalidates the
// resource's entries on writes. Other methods pass through untouched.
// Entries are keyed by the caller's firm; requests without a valid bearer
// token bypass the cache entirely and are left for Auth to reject.
func (m Middleware) Cache() gin.HandlerFunc {
	if m.respCache == nil || !m.config.Cache.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			sc, ok = m.bearerScope(c)
		}
		if !ok {
			c.Next()
			return
		}

		if c.Request.Method != http.MethodGet {
			c.Next()
			// Writes invalidate every cached variant of the path so
			// stale lists are not served after a mutation.
			if c.Writer.Status() < 400 {
				m.respCache.InvalidatePrefix(sc.FirmID, resourcePrefix(c.Request.URL.Path))
			}
			return
		}

		key := cache.Key(sc.FirmID, c.Request.Method, c.Request.URL.Path, c.Request.URL.RawQuery)
		if entry, ok := m.respCache.Get(key); ok {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, entry.ContentType, entry.Body)
			c.Abort()
			return
		}

		w := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if c.Writer.Status() == http.StatusOK {
			m.respCache.Set(key, cache.Entry{
				Body:        w.body.Bytes(),
				ContentType: w.Header().Get("Content-Type"),
			})
		}
	}
}

// resourcePrefix trims a path like /api/v1/projects/123 down to
// /api/v1/projects so one write clears the whole collection.
func resourcePrefix(path string) string {
	const keep = 3 // api, v1, resource
	count := 0
	for i := 1; i < len(path); i++ {
		if path[i] == '/' {
			count++
			if count == keep {
				return path[:i]
			}
		}
	}
	return path
}

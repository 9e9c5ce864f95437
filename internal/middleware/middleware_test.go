package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tax-practice-management/config"
	"tax-practice-management/internal/middleware"
	"tax-practice-management/pkg/cache"
	"tax-practice-management/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func init() {
	gin.SetMode(gin.TestMode)
}

var testJWT = scope.NewManager("test-secret", time.Hour)

func bearerToken(t *testing.T, firmID string) string {
	t.Helper()
	token, err := testJWT.Issue("u-1", firmID, "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return "Bearer " + token
}

func TestRateLimit_ThrottlesBurst(t *testing.T) {
	cfg := &config.Config{}
	cfg.RateLimit.RequestsPerMin = 60 // burst of 6

	mw := middleware.New(&mockLogger{}, testJWT, cfg, nil)
	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })

	var denied int
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			denied++
		}
	}
	if denied == 0 {
		t.Fatal("no request throttled over burst")
	}

	// A different client gets a fresh bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("fresh client status = %d, want 200", w.Code)
	}
}

func TestRateLimit_ConcurrentRequestsShareOneBucket(t *testing.T) {
	cfg := &config.Config{}
	cfg.RateLimit.RequestsPerMin = 60 // burst of 6, ~1 token/sec refill

	mw := middleware.New(&mockLogger{}, testJWT, cfg, nil)
	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })

	var allowed int64
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
			if w.Code == http.StatusOK {
				atomic.AddInt64(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	// One shared bucket: at most the burst plus a little refill slack.
	if allowed > 8 {
		t.Fatalf("allowed = %d concurrent requests, want at most 8", allowed)
	}
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	cfg := &config.Config{}
	cfg.RateLimit.RequestsPerMin = 0

	mw := middleware.New(&mockLogger{}, testJWT, cfg, nil)
	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, w.Code)
		}
	}
}

// newCachedRouter mounts the cache at engine level with Auth on the route,
// the same shape the server uses.
func newCachedRouter(mw middleware.Middleware, hits *int) *gin.Engine {
	r := gin.New()
	r.Use(mw.Cache())
	r.GET("/api/v1/projects", mw.Auth(), func(c *gin.Context) {
		*hits++
		sc, _ := middleware.GetScope(c)
		c.JSON(200, gin.H{"firm": sc.FirmID, "total": *hits})
	})
	r.PUT("/api/v1/projects/p-1", mw.Auth(), func(c *gin.Context) { c.JSON(200, gin.H{}) })
	return r
}

func TestCache_ServesHitAndInvalidatesOnWrite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true

	respCache := cache.New(10, time.Minute)
	mw := middleware.New(&mockLogger{}, testJWT, cfg, respCache)

	hits := 0
	r := newCachedRouter(mw, &hits)
	token := bearerToken(t, "firm-a")

	get := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
		req.Header.Set("Authorization", token)
		r.ServeHTTP(w, req)
		return w
	}

	first := get()
	if first.Header().Get("X-Cache") == "HIT" {
		t.Fatal("first request served from cache")
	}
	second := get()
	if second.Header().Get("X-Cache") != "HIT" {
		t.Fatal("second request not served from cache")
	}
	if hits != 1 {
		t.Fatalf("handler ran %d times, want 1", hits)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("cached body %q differs from original %q", second.Body.String(), first.Body.String())
	}

	// A write under the same resource clears the cached list.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/projects/p-1", nil)
	req.Header.Set("Authorization", token)
	r.ServeHTTP(w, req)

	third := get()
	if third.Header().Get("X-Cache") == "HIT" {
		t.Fatal("stale entry served after write")
	}
	if hits != 2 {
		t.Fatalf("handler ran %d times after invalidation, want 2", hits)
	}
}

func TestCache_IsolatesFirms(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true

	respCache := cache.New(10, time.Minute)
	mw := middleware.New(&mockLogger{}, testJWT, cfg, respCache)

	hits := 0
	r := newCachedRouter(mw, &hits)

	get := func(authorization string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		r.ServeHTTP(w, req)
		return w
	}

	// Warm the cache for firm-a.
	firmA := get(bearerToken(t, "firm-a"))
	if firmA.Code != http.StatusOK {
		t.Fatalf("firm-a status = %d", firmA.Code)
	}

	// Another firm must get its own response, not firm-a's cached body.
	firmB := get(bearerToken(t, "firm-b"))
	if firmB.Header().Get("X-Cache") == "HIT" {
		t.Fatal("another firm was served from the first firm's cache")
	}
	if firmB.Body.String() == firmA.Body.String() {
		t.Fatalf("firm-b body %q matches firm-a's cached body", firmB.Body.String())
	}
	if hits != 2 {
		t.Fatalf("handler ran %d times, want 2", hits)
	}

	// Unauthenticated callers bypass the cache and are rejected by Auth.
	anon := get("")
	if anon.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want 401", anon.Code)
	}
	if anon.Header().Get("X-Cache") == "HIT" {
		t.Fatal("unauthenticated request served from cache")
	}

	// A garbage token gets no cache service either.
	bad := get("Bearer not-a-token")
	if bad.Code != http.StatusUnauthorized {
		t.Fatalf("bad-token status = %d, want 401", bad.Code)
	}
}

func TestCache_SkipsWhenDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	mw := middleware.New(&mockLogger{}, testJWT, cfg, cache.New(10, time.Minute))

	hits := 0
	r := newCachedRouter(mw, &hits)
	token := bearerToken(t, "firm-a")

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
		req.Header.Set("Authorization", token)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
	}
	if hits != 2 {
		t.Fatalf("handler ran %d times, want 2", hits)
	}
}

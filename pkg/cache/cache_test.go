package cache_test

import (
	"testing"
	"time"

	"tax-practice-management/pkg/cache"
)

func TestGetSet(t *testing.T) {
	c := cache.New(10, time.Minute)

	key := cache.Key("f-1", "GET", "/api/v1/projects", "status=todo")
	if _, ok := c.Get(key); ok {
		t.Fatal("Get() hit on empty cache")
	}

	c.Set(key, cache.Entry{Body: []byte(`{"data":[]}`), ContentType: "application/json"})

	entry, ok := c.Get(key)
	if !ok {
		t.Fatal("Get() miss after Set")
	}
	if string(entry.Body) != `{"data":[]}` {
		t.Errorf("Body = %q", entry.Body)
	}
	if entry.ContentType != "application/json" {
		t.Errorf("ContentType = %q", entry.ContentType)
	}
}

func TestExpiry(t *testing.T) {
	c := cache.New(10, 20*time.Millisecond)

	key := cache.Key("f-1", "GET", "/api/v1/projects", "")
	c.Set(key, cache.Entry{Body: []byte("x")})

	if _, ok := c.Get(key); !ok {
		t.Fatal("Get() miss before TTL")
	}

	time.Sleep(50 * time.Millisecond)
	if _, ok := c.Get(key); ok {
		t.Fatal("Get() hit after TTL")
	}
}

func TestInvalidatePrefix(t *testing.T) {
	c := cache.New(10, time.Minute)

	projects := cache.Key("f-1", "GET", "/api/v1/projects", "status=todo")
	detail := cache.Key("f-1", "GET", "/api/v1/projects/p-1", "")
	tasks := cache.Key("f-1", "GET", "/api/v1/tasks", "")
	otherFirm := cache.Key("f-2", "GET", "/api/v1/projects", "")
	c.Set(projects, cache.Entry{Body: []byte("a")})
	c.Set(detail, cache.Entry{Body: []byte("b")})
	c.Set(tasks, cache.Entry{Body: []byte("c")})
	c.Set(otherFirm, cache.Entry{Body: []byte("d")})

	c.InvalidatePrefix("f-1", "/api/v1/projects")

	if _, ok := c.Get(projects); ok {
		t.Error("projects list survived invalidation")
	}
	if _, ok := c.Get(detail); ok {
		t.Error("project detail survived invalidation")
	}
	if _, ok := c.Get(tasks); !ok {
		t.Error("unrelated tasks entry was dropped")
	}
	if _, ok := c.Get(otherFirm); !ok {
		t.Error("another firm's entry was dropped")
	}
}

func TestKeySeparatesFirmsAndQueries(t *testing.T) {
	a := cache.Key("f-1", "GET", "/api/v1/projects", "status=todo")
	b := cache.Key("f-1", "GET", "/api/v1/projects", "status=completed")
	if a == b {
		t.Fatal("keys with different queries collide")
	}

	other := cache.Key("f-2", "GET", "/api/v1/projects", "status=todo")
	if a == other {
		t.Fatal("keys for different firms collide")
	}
}

func TestLenAndPurge(t *testing.T) {
	c := cache.New(10, time.Minute)
	c.Set(cache.Key("f-1", "GET", "/a", ""), cache.Entry{Body: []byte("a")})
	c.Set(cache.Key("f-1", "GET", "/b", ""), cache.Entry{Body: []byte("b")})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("Len() after Purge = %d, want 0", c.Len())
	}
}

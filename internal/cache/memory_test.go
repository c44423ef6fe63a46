package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache[map[string]string](time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	c.Set("a", map[string]string{"1": "EN"}, 0)
	v, found := c.Get("a")
	if !found {
		t.Fatal("expected hit")
	}
	if v["1"] != "EN" {
		t.Errorf("expected EN, got %q", v["1"])
	}
}

func TestMemoryCache_NilValueIsAHit(t *testing.T) {
	c := NewMemoryCache[map[string]string](time.Minute, time.Minute)
	c.Set("absent-file", nil, 0)

	v, found := c.Get("absent-file")
	if !found {
		t.Fatal("expected stored nil to be found")
	}
	if v != nil {
		t.Errorf("expected nil value, got %v", v)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache[string](time.Minute, time.Minute)
	c.Set("k", "v", 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expected entry to expire")
	}
}

func TestMemoryCache_DeleteClear(t *testing.T) {
	c := NewMemoryCache[string](time.Minute, time.Minute)
	c.Set("a", "1", 0)
	c.Set("b", "2", 0)

	c.Delete("a")
	if _, found := c.Get("a"); found {
		t.Error("expected a to be deleted")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d items", c.Len())
	}
}

func TestKey(t *testing.T) {
	if Key("en", "ep-09-01-12.txt") == Key("en", "ep-09-01-13.txt") {
		t.Error("expected different keys for different files")
	}
	if Key("ab", "c") == Key("a", "bc") {
		t.Error("expected part boundaries to matter")
	}
	if Key("en", "x") != Key("en", "x") {
		t.Error("expected stable keys")
	}
}

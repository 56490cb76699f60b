package utils

import (
	"testing"
	"time"
)

func TestCache_Expiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	prev := Now
	Now = func() time.Time { return now }
	t.Cleanup(func() { Now = prev })

	c, err := NewCache(2)
	if err != nil {
		t.Fatal(err)
	}
	c.Set("playlist", []string{"v1"}, time.Hour)
	c.Set("skipped", "x", 0)

	if _, ok := c.Get("skipped"); ok {
		t.Error("zero ttl entry was stored")
	}
	if v, ok := c.Get("playlist"); !ok || len(v.([]string)) != 1 {
		t.Fatalf("Get = %v, %v", v, ok)
	}

	now = now.Add(time.Hour)
	if _, ok := c.Get("playlist"); ok {
		t.Error("entry still served after ttl")
	}
}

func TestCache_Evicts(t *testing.T) {
	c, err := NewCache(2)
	if err != nil {
		t.Fatal(err)
	}
	c.Set("a", 1, time.Hour)
	c.Set("b", 2, time.Hour)
	c.Get("a")
	c.Set("c", 3, time.Hour)

	if _, ok := c.Get("b"); ok {
		t.Error("least recently used entry kept")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("recently used entry evicted")
	}
}

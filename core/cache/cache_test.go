package cache

import (
	"testing"
	"time"
)

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := NewCache(), NewCache()
	a.Set("k", 1, 0, nil)
	if _, ok := b.Get("k"); ok {
		t.Error("value leaked between caches")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	c.Set("k", "val", 0, nil)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get missing key: want false")
	}
}

func TestExpiry(t *testing.T) {
	c := NewCache()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("short", "v", time.Minute, []string{"meta"})
	c.Set("forever", "v", 0, nil)

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("short"); ok {
		t.Error("expired entry returned")
	}
	if _, ok := c.Get("forever"); !ok {
		t.Error("entry without ttl expired")
	}
	if keys := c.GetKeysByTag("meta"); len(keys) != 0 {
		t.Errorf("GetKeysByTag after expiry = %v, want none", keys)
	}
}

func TestPurge(t *testing.T) {
	c := NewCache()
	now := time.Now()
	c.now = func() time.Time { return now }
	c.Set("a", 1, time.Second, nil)
	c.Set("b", 2, time.Hour, nil)
	now = now.Add(time.Minute)
	if n := c.Purge(); n != 1 {
		t.Errorf("Purge = %d, want 1", n)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestGetOrDefault(t *testing.T) {
	c := NewCache()
	def := "default"
	if got := c.GetOrDefault("k", def); got != def {
		t.Errorf("GetOrDefault missing = %v, want %v", got, def)
	}
	c.Set("k", "stored", 0, nil)
	if got := c.GetOrDefault("k", def); got != "stored" {
		t.Errorf("GetOrDefault found = %v, want stored", got)
	}
}

func TestDeleteMany(t *testing.T) {
	c := NewCache()
	c.Set("dm1", 1, 0, nil)
	c.Set("dm2", 2, 0, nil)
	c.DeleteMany("dm1", "dm2")
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestSetN_GetN_DeleteN(t *testing.T) {
	c := NewCache()
	c.SetN([]interface{}{"brands", "tr"}, "composite-val", 0, nil)
	got, ok := c.GetN("brands", "tr")
	if !ok || got != "composite-val" {
		t.Errorf("GetN = %v, %v; want composite-val, true", got, ok)
	}
	c.DeleteN("brands", "tr")
	if _, ok = c.GetN("brands", "tr"); ok {
		t.Error("DeleteN: key should be gone")
	}
}

func TestTagKey_GetKeysByTag_DeleteByTag(t *testing.T) {
	c := NewCache()
	c.Set("k1", "v1", 0, []string{"catalog"})
	c.Set("k2", "v2", 0, nil)
	c.TagKey("k2", []string{"catalog"})
	c.Set("k3", "v3", 0, nil)

	if keys := c.GetKeysByTag("catalog"); len(keys) != 2 {
		t.Errorf("GetKeysByTag = %d keys, want 2", len(keys))
	}

	c.DeleteByTag("catalog")
	if _, ok := c.Get("k1"); ok {
		t.Error("DeleteByTag: k1 should be gone")
	}
	if _, ok := c.Get("k3"); !ok {
		t.Error("DeleteByTag: untagged k3 removed")
	}
}

func TestDelete_RemovesFromTagIndex(t *testing.T) {
	c := NewCache()
	c.Set("k", "v", 0, []string{"t2"})
	c.Delete("k")
	if keys := c.GetKeysByTag("t2"); len(keys) != 0 {
		t.Errorf("GetKeysByTag after Delete = %d keys, want 0", len(keys))
	}
}

package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := NewCache()
	c.Set("menu", []string{"Orange Chicken"}, 0, nil)
	v, ok := c.Get("menu")
	if !ok {
		t.Fatal("expected hit")
	}
	if items, _ := v.([]string); len(items) != 1 || items[0] != "Orange Chicken" {
		t.Errorf("unexpected value %v", v)
	}
}

func TestGetMiss(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("nope"); ok {
		t.Error("expected miss")
	}
}

func TestTTLStillFresh(t *testing.T) {
	c := NewCache()
	c.Set("k", "v", 60, nil)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("value should not expire immediately")
	}
}

func TestCompositeKeys(t *testing.T) {
	c := NewCache()
	c.SetN([]interface{}{"stock", uint(4)}, "4.50", 0, nil)
	v, ok := c.GetN("stock", uint(4))
	if !ok || v != "4.50" {
		t.Errorf("GetN = %v, %v", v, ok)
	}
	c.DeleteN("stock", uint(4))
	if _, ok := c.GetN("stock", uint(4)); ok {
		t.Error("expected delete")
	}
}

func TestInvalidateTag(t *testing.T) {
	c := NewCache()
	c.Set("menu:kiosk", "a", 0, []string{"menu"})
	c.Set("menu:board", "b", 0, []string{"menu"})
	c.Set("other", "c", 0, nil)

	c.InvalidateTag("menu")

	if _, ok := c.Get("menu:kiosk"); ok {
		t.Error("menu:kiosk should be invalidated")
	}
	if _, ok := c.Get("menu:board"); ok {
		t.Error("menu:board should be invalidated")
	}
	if _, ok := c.Get("other"); !ok {
		t.Error("untagged key should survive")
	}
}

func TestExpiredEntryEvicted(t *testing.T) {
	c := NewCache()
	c.m.Store("k", cacheItem{Value: "v", ExpiresAt: time.Now().Add(-time.Second).UnixNano()})
	if _, ok := c.Get("k"); ok {
		t.Error("expired entry should miss")
	}
}

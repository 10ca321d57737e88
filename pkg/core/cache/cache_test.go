package cache

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(maxItems int, ttl time.Duration) (*Cache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
	return New(Config{MaxItems: maxItems, TTL: ttl, Now: clock.Now}), clock
}

func TestCache_SetGet(t *testing.T) {
	c, _ := newTestCache(4, time.Minute)

	c.Set("a", 1)
	got, ok := c.Get("a")
	if !ok || got != 1 {
		t.Errorf("Get(a) = %v, %v, want 1, true", got, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should miss")
	}

	hits, misses, rate := c.Stats()
	if hits != 1 || misses != 1 || rate != 50 {
		t.Errorf("Stats() = %d, %d, %v, want 1, 1, 50", hits, misses, rate)
	}
}

func TestCache_Expiration(t *testing.T) {
	c, clock := newTestCache(4, time.Minute)

	c.Set("a", "x")
	c.SetWithTTL("forever", "y", 0)
	clock.Advance(2 * time.Minute)

	if _, ok := c.Get("a"); ok {
		t.Error("Get(a) should miss after TTL")
	}
	if _, ok := c.Get("forever"); !ok {
		t.Error("Get(forever) should hit without TTL")
	}
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1", c.Size())
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, clock := newTestCache(2, time.Hour)

	c.Set("a", 1)
	clock.Advance(time.Second)
	c.Set("b", 2)
	clock.Advance(time.Second)
	c.Get("a")
	clock.Advance(time.Second)
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should still be cached")
	}
	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}
}

func TestCache_OverwriteDoesNotEvict(t *testing.T) {
	c, _ := newTestCache(2, time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3)

	if got, _ := c.Get("a"); got != 3 {
		t.Errorf("Get(a) = %v, want 3", got)
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("b should still be cached")
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c, _ := newTestCache(4, time.Hour)
	calls := 0
	fn := func() (interface{}, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrSet("k", fn)
		if err != nil || got != "value" {
			t.Fatalf("GetOrSet() = %v, %v", got, err)
		}
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}

	wantErr := errors.New("boom")
	if _, err := c.GetOrSet("bad", func() (interface{}, error) { return nil, wantErr }); err != wantErr {
		t.Errorf("GetOrSet() error = %v, want %v", err, wantErr)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computation should not be cached")
	}
}

func TestCache_DeleteClear(t *testing.T) {
	c, _ := newTestCache(4, time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Get(a) should miss after Delete")
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0", c.Size())
	}
}

func TestCache_Cleanup(t *testing.T) {
	c, clock := newTestCache(4, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	clock.Advance(time.Hour)

	c.cleanup()
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0", c.Size())
	}
}

func TestCache_CloseIsIdempotent(t *testing.T) {
	c := New(DefaultConfig())
	c.Close()
	c.Close()
}

func TestKey(t *testing.T) {
	if Key("a", "b") == Key("ab") {
		t.Error("Key should separate parts")
	}
	if Key("x") != Key("x") {
		t.Error("Key should be deterministic")
	}
	if len(Key("x")) != 64 {
		t.Errorf("len(Key) = %d, want 64", len(Key("x")))
	}
}

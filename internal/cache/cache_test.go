package cache

import (
	"sync"
	"testing"
)

func TestLRU_GetSet(t *testing.T) {
	c := New[string, int](10)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache should miss")
	}

	c.Set("a", 1)
	c.Set("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v, want 1, true", v, ok)
	}

	c.Set("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("Get(a) after overwrite = %v, want 10", v)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, string](3)
	var evicted []int
	c.OnEvict(func(k int, _ string) { evicted = append(evicted, k) })

	c.Set(1, "one")
	c.Set(2, "two")
	c.Set(3, "three")
	c.Get(1) // 2 is now the oldest
	c.Set(4, "four")

	if len(evicted) != 1 || evicted[0] != 2 {
		t.Fatalf("evicted = %v, want [2]", evicted)
	}
	if _, ok := c.Get(2); ok {
		t.Error("evicted key is still present")
	}
	for _, k := range []int{1, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d missing", k)
		}
	}
	if s := c.Stats(); s.Evictions != 1 || s.Len != 3 || s.Capacity != 3 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestLRU_Unlimited(t *testing.T) {
	c := New[int, int](0)
	for i := range 1000 {
		c.Set(i, i)
	}
	if c.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", c.Len())
	}
}

func TestLRU_GetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	var used []int
	use := func(v int) { used = append(used, v) }

	if v := c.GetOrCreate("k", create, use); v != 42 {
		t.Errorf("GetOrCreate = %d, want 42", v)
	}
	if v := c.GetOrCreate("k", create, use); v != 42 {
		t.Errorf("GetOrCreate = %d, want 42", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if len(used) != 2 {
		t.Errorf("use called %d times, want 2", len(used))
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.HitRate != 0.5 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss", s)
	}
}

func TestLRU_DeleteAndClear(t *testing.T) {
	c := New[string, int](10)
	evicted := 0
	c.OnEvict(func(string, int) { evicted++ })

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if evicted != 3 {
		t.Errorf("evicted = %d, want 3", evicted)
	}

	// The cache stays usable after Clear.
	c.Set("d", 4)
	if v, ok := c.Get("d"); !ok || v != 4 {
		t.Errorf("Get(d) = %v, %v, want 4, true", v, ok)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := New[int, int](50)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				k := (g*31 + i) % 100
				c.GetOrCreate(k, func() int { return k }, func(v int) {
					if v != k {
						t.Errorf("value for %d = %d", k, v)
					}
				})
			}
		}()
	}
	wg.Wait()
	if c.Len() > 50 {
		t.Errorf("Len() = %d, exceeds capacity 50", c.Len())
	}
}

func TestLRUList(t *testing.T) {
	l := newLRUList[int]()
	if _, ok := l.Oldest(); ok {
		t.Error("Oldest on empty list should report false")
	}
	n1 := l.PushFront(1)
	l.PushFront(2)
	l.PushFront(3)
	if k, _ := l.Oldest(); k != 1 {
		t.Errorf("Oldest() = %d, want 1", k)
	}
	l.MoveToFront(n1)
	if k, _ := l.RemoveOldest(); k != 2 {
		t.Errorf("RemoveOldest() = %d, want 2", k)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
	l.Remove(n1)
	l.Remove(n1)
	if l.Len() != 1 {
		t.Errorf("Len() after double Remove = %d, want 1", l.Len())
	}
}

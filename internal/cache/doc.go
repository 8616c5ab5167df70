// Package cache provides a generic LRU cache.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// An eviction callback lets values that own resources release them when
// they leave the cache:
//
//	c.OnEvict(func(_ string, p *cg.Path) { p.Release() })
//
// # Thread Safety
//
// LRU is safe for concurrent use and must not be copied after creation.
package cache

package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// StatementCache memoizes rendered DDL statement text keyed by a plan
// fingerprint. The DDL builders themselves stay pure and cache-free; this
// sits in front of them when the same plan is rendered repeatedly, e.g.
// when a runner re-plans pending migrations on every apply cycle.
type StatementCache struct {
	cache *lru.Cache[uint64, string]
}

func NewStatementCache(size int) *StatementCache {
	cache, _ := lru.New[uint64, string](size)
	return &StatementCache{cache: cache}
}

func (c *StatementCache) Get(key uint64) (string, bool) {
	return c.cache.Get(key)
}

func (c *StatementCache) Add(key uint64, stmt string) {
	c.cache.Add(key, stmt)
}

// GetOrRender returns the cached statement for key, rendering and caching
// it on a miss. Render errors are not cached.
func (c *StatementCache) GetOrRender(key uint64, render func() (string, error)) (string, error) {
	if stmt, ok := c.cache.Get(key); ok {
		return stmt, nil
	}
	stmt, err := render()
	if err != nil {
		return "", err
	}
	c.cache.Add(key, stmt)
	return stmt, nil
}

func (c *StatementCache) Len() int {
	return c.cache.Len()
}

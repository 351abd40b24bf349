package fishing

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/AnglerBot_Go/internal/domain"
)

type probKey struct {
	strength   int
	difficulty int
	treasure   bool
}

// probCache memoizes ProbabilitySet lookups. The probability model is a
// pure function of its key, so entries never go stale; the TTL just bounds
// memory on long-running hosts.
type probCache struct {
	lru *expirable.LRU[probKey, domain.ProbabilitySet]
}

func newProbCache() *probCache {
	return &probCache{
		lru: expirable.NewLRU[probKey, domain.ProbabilitySet](probCacheSize, nil, probCacheTTL),
	}
}

func (c *probCache) get(strength, difficulty int, treasure bool) (domain.ProbabilitySet, bool) {
	return c.lru.Get(probKey{strength: strength, difficulty: difficulty, treasure: treasure})
}

func (c *probCache) set(strength, difficulty int, treasure bool, ps domain.ProbabilitySet) {
	c.lru.Add(probKey{strength: strength, difficulty: difficulty, treasure: treasure}, ps)
}

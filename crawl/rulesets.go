package crawl

import (
	"sync"

	"sitesmith"
)

// RulesetCache memoizes robots policies per domain so a run fetches each
// site's robots.txt at most once.
type RulesetCache struct {
	mu       sync.RWMutex
	rulesets map[string]*sitesmith.Ruleset
}

// NewRulesetCache creates an empty RulesetCache.
func NewRulesetCache() *RulesetCache {
	return &RulesetCache{
		rulesets: make(map[string]*sitesmith.Ruleset),
	}
}

// Get returns the cached ruleset for a domain, or nil.
func (c *RulesetCache) Get(domain string) *sitesmith.Ruleset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rulesets[domain]
}

// Put stores a ruleset for a domain.
func (c *RulesetCache) Put(domain string, ruleset *sitesmith.Ruleset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rulesets[domain] = ruleset
}

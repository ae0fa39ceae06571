// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/stylehaus/internal/metrics"
)

// cacheType labels suggestion cache metrics.
const cacheType = "suggestions"

// cacheEntry holds one cached suggestion result.
type cacheEntry struct {
	suggestions []Suggestion
	expiresAt   time.Time
}

// suggestionCache is a TTL cache for suggestion results.
// Entries expire after the configured TTL; when the cache is full the
// entry closest to expiry is evicted.
type suggestionCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	maxSize int
}

// newSuggestionCache creates a cache. A zero TTL or size disables caching;
// get always misses and put is a no-op.
func newSuggestionCache(ttl time.Duration, maxSize int) *suggestionCache {
	return &suggestionCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// enabled reports whether the cache stores anything at all.
func (c *suggestionCache) enabled() bool {
	return c.ttl > 0 && c.maxSize > 0
}

// get returns the cached suggestions for a key, if present and fresh.
func (c *suggestionCache) get(key string) ([]Suggestion, bool) {
	if !c.enabled() {
		return nil, false
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		metrics.RecordCacheMiss(cacheType)
		return nil, false
	}
	metrics.RecordCacheHit(cacheType)
	return entry.suggestions, true
}

// put stores suggestions under a key, evicting if the cache is full.
func (c *suggestionCache) put(key string, suggestions []Suggestion) {
	if !c.enabled() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.evictLocked()
	}

	c.entries[key] = cacheEntry{
		suggestions: suggestions,
		expiresAt:   time.Now().Add(c.ttl),
	}
	metrics.UpdateCacheSize(cacheType, len(c.entries))
}

// evictLocked removes expired entries, then the entry closest to expiry
// if still over capacity. Caller must hold mu.
func (c *suggestionCache) evictLocked() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}

	if len(c.entries) < c.maxSize {
		return
	}

	var oldestKey string
	var oldestTime time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.expiresAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.expiresAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// len returns the current entry count.
func (c *suggestionCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// suggestionCacheKey builds a stable key for a suggestion request.
// Everything that influences scoring is folded into the hash: the
// anchor and wardrobe item attributes (not just IDs, so a mutated item
// under a reused ID cannot hit a stale entry) and the full profile
// contents, so requests with different preferences never share an
// entry. Wardrobe digests are sorted so reordering the same pool still
// hits the cache.
func suggestionCacheKey(req *SuggestionRequest) string {
	digests := make([]string, 0, len(req.Wardrobe))
	for i := range req.Wardrobe {
		digests = append(digests, itemDigest(&req.Wardrobe[i]))
	}
	sort.Strings(digests)

	h := fnv.New64a()
	_, _ = h.Write([]byte(itemDigest(&req.Item)))
	_, _ = h.Write([]byte{'\n'})
	_, _ = h.Write([]byte(strings.Join(digests, ",")))
	_, _ = h.Write([]byte{'\n'})
	_, _ = h.Write([]byte(profileDigest(req.Profile)))

	return fmt.Sprintf("%s|%s|%d|%.3f|%x",
		req.Item.ID, strings.ToLower(req.Occasion), req.Limit, req.Threshold,
		h.Sum64())
}

// itemDigest flattens the item fields that influence scoring.
func itemDigest(item *ClothingItem) string {
	return strings.Join([]string{
		item.ID,
		string(item.Category),
		item.Style,
		strings.Join(item.Colors, "+"),
	}, ":")
}

// profileDigest flattens a preference profile. Colors and styles are
// hashed in sorted order so equivalent profiles produce the same digest.
func profileDigest(p *PreferenceProfile) string {
	if p == nil {
		return ""
	}
	parts := []string{
		strings.Join(sortedCopy(p.PreferredColors), "+"),
		strings.Join(sortedCopy(p.PreferredStyles), "+"),
		strings.Join(sortedCopy(p.AvoidedColors), "+"),
		occasionMapDigest(p.OccasionColors),
		occasionMapDigest(p.OccasionStyles),
	}
	return strings.Join(parts, "|")
}

// occasionMapDigest flattens a per-occasion preference map with keys in
// sorted order.
func occasionMapDigest(m map[string][]string) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strings.Join(sortedCopy(m[k]), "+"))
	}
	return strings.Join(parts, ";")
}

// sortedCopy returns a sorted copy, leaving the input untouched.
func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}

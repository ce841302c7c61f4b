// cmd/coysfeed/cache.go
package main

import (
	"sync"
	"time"
)

// DigestCache holds the single current daily digest. Updates replace
// the whole value under the lock, so readers either see the previous
// digest or the new one, never a partially written state. The cache is
// purely in-memory: a restart loses it and the startup fetch rebuilds
// it.
type DigestCache struct {
	mu     sync.RWMutex
	digest *DailyDigest
	now    func() time.Time
}

func NewDigestCache() *DigestCache {
	return &DigestCache{now: time.Now}
}

// Current returns the published digest, or nil before the first
// publish.
func (c *DigestCache) Current() *DailyDigest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.digest
}

// Publish swaps in a new digest. Concurrent refreshes may race here;
// either result is a valid digest for the same date, so last write
// wins.
func (c *DigestCache) Publish(digest *DailyDigest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.digest = digest
}

// Stale reports whether a read must trigger a refresh first: nothing
// published yet, an empty story list, or a digest left over from a
// previous calendar day.
func (c *DigestCache) Stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.digest == nil || len(c.digest.Stories) == 0 {
		return true
	}
	return c.digest.Date != c.now().Format(DateLayout)
}

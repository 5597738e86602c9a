package dashboard

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// SnapshotCache keeps raw query results per user, query and calendar day.
// A nil *SnapshotCache is valid and caches nothing.
//
// Every Invalidate bumps the user's generation. Results loaded under an older
// generation are not stored, so a read that was in flight during a write
// cannot replace the refreshed entries.
type SnapshotCache struct {
	cache *freecache.Cache
	ttl   time.Duration

	mu          sync.Mutex
	generations map[uuid.UUID]uint64
}

// NewSnapshotCache returns nil when ttl is not positive.
func NewSnapshotCache(sizeBytes int, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		return nil
	}
	return &SnapshotCache{
		cache:       freecache.NewCache(sizeBytes),
		ttl:         ttl,
		generations: make(map[uuid.UUID]uint64),
	}
}

func cacheKey(userID uuid.UUID, query, day string) []byte {
	return []byte(fmt.Sprintf("%s::%s::%s", userID, query, day))
}

// Get unmarshals the cached value into v and reports whether it was found.
func (c *SnapshotCache) Get(userID uuid.UUID, query, day string, v any) bool {
	if c == nil {
		return false
	}
	key := cacheKey(userID, query, day)
	valBytes, err := c.cache.Get(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(valBytes, v); err != nil {
		log.Errorf("failed to unmarshal cached %s for %s: %s", query, userID, err)
		c.cache.Del(key)
		return false
	}
	return true
}

// Generation returns the user's current cache generation. Capture it before
// loading a value that is later passed to Set.
func (c *SnapshotCache) Generation(userID uuid.UUID) uint64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[userID]
}

// Set stores v unless the user's cache was invalidated after gen was taken.
// It reports whether v was stored.
func (c *SnapshotCache) Set(userID uuid.UUID, query, day string, gen uint64, v any) bool {
	if c == nil {
		return false
	}
	valBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal %s for cache: %s", query, err)
		return false
	}
	expire := max(int(c.ttl/time.Second), 1)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[userID] != gen {
		log.Debugf("skip stale %s cache write for %s", query, userID)
		return false
	}
	if err := c.cache.Set(cacheKey(userID, query, day), valBytes, expire); err != nil {
		log.Errorf("failed to write %s cache for %s: %s", query, userID, err)
		return false
	}
	return true
}

// Invalidate drops all cached query results of the user for day and starts
// a new generation.
func (c *SnapshotCache) Invalidate(userID uuid.UUID, day string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[userID]++
	for _, q := range Queries {
		c.cache.Del(cacheKey(userID, q, day))
	}
}

package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// PutOutcome says what happened to a report handed to the cache.
// Values double as metric labels.
type PutOutcome string

const (
	PutStored   PutOutcome = "store"
	PutStale    PutOutcome = "stale"
	PutTooLarge PutOutcome = "too_large"
	PutError    PutOutcome = "error"
)

// room left for the key and freecache's entry header
const entryOverheadBytes = 1024

// ReportCache memoizes reports per user, range and data generation.
// Every write for a user bumps its generation, so older reports can no
// longer be looked up and are left to expire.
type ReportCache struct {
	cache         *freecache.Cache
	ttl           time.Duration
	maxEntryBytes int

	mu          sync.Mutex
	generations map[string]uint64
}

// NewReportCache sizes the cache from the largest report it must hold.
// freecache refuses entries above 1/1024 of its size, so the cache takes
// about maxEntryKB megabytes.
func NewReportCache(maxEntryKB int, ttl time.Duration) *ReportCache {
	maxEntryBytes := maxEntryKB * 1024
	return &ReportCache{
		cache:         freecache.NewCache((maxEntryBytes + entryOverheadBytes) * 1024),
		ttl:           ttl,
		maxEntryBytes: maxEntryBytes,
		generations:   make(map[string]uint64),
	}
}

func reportKey(userID string, rng TimeRange, gen uint64) []byte {
	return []byte(fmt.Sprintf("report||%s||%s||%d", userID, rng, gen))
}

func (c *ReportCache) Generation(userID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[userID]
}

// Bump invalidates everything cached for the user and returns the new generation.
func (c *ReportCache) Bump(userID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[userID]++
	return c.generations[userID]
}

func (c *ReportCache) Get(userID string, rng TimeRange, gen uint64) (*Report, bool) {
	data, err := c.cache.Get(reportKey(userID, rng, gen))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("stats cache get [%s]: %s", userID, err)
		}
		return nil, false
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		log.Errorf("stats cache unmarshal [%s]: %s", userID, err)
		return nil, false
	}
	return &report, true
}

// Put stores the report only if it was derived from the user's current
// generation and fits the entry budget.
func (c *ReportCache) Put(userID string, rng TimeRange, gen uint64, report *Report) PutOutcome {
	data, err := json.Marshal(report)
	if err != nil {
		log.Errorf("stats cache marshal [%s]: %s", userID, err)
		return PutError
	}
	if len(data) > c.maxEntryBytes {
		log.Warnf("stats cache [%s]: report of %d bytes exceeds the %d bytes entry limit", userID, len(data), c.maxEntryBytes)
		return PutTooLarge
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[userID] != gen {
		return PutStale
	}
	if err := c.cache.Set(reportKey(userID, rng, gen), data, int(c.ttl.Seconds())); err != nil {
		log.Errorf("stats cache set [%s]: %s", userID, err)
		if errors.Is(err, freecache.ErrLargeEntry) {
			return PutTooLarge
		}
		return PutError
	}
	return PutStored
}

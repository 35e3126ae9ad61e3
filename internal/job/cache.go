package job

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// cachedJobsEntry wraps the job list with version metadata for cache invalidation
type cachedJobsEntry struct {
	Version  string
	Jobs     []domain.Job
	CachedAt time.Time
}

// jobCache holds the profession catalog with time-based expiration
type jobCache struct {
	lru *expirable.LRU[string, *cachedJobsEntry]
}

func newJobCache(size int, ttl time.Duration) *jobCache {
	if size <= 0 {
		size = 1
	}
	return &jobCache{
		lru: expirable.NewLRU[string, *cachedJobsEntry](size, nil, ttl),
	}
}

// Get returns the cached job list, dropping entries written by another schema version
func (c *jobCache) Get() ([]domain.Job, bool) {
	entry, found := c.lru.Get(cacheKeyAllJobs)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(cacheKeyAllJobs)
		return nil, false
	}
	return entry.Jobs, true
}

// Set stores the job list
func (c *jobCache) Set(jobs []domain.Job) {
	c.lru.Add(cacheKeyAllJobs, &cachedJobsEntry{
		Version:  CacheSchemaVersion,
		Jobs:     jobs,
		CachedAt: time.Now(),
	})
}

// Clear removes all entries from the cache
func (c *jobCache) Clear() {
	c.lru.Purge()
}

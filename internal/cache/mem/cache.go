package mem

import (
	"sync"

	"statcard/internal/domain"
)

// Cache keeps league reference distributions per season. Written once
// on first use, read by every following request.
type Cache struct {
	mu      sync.RWMutex
	samples map[string]domain.LeagueSample
}

func New() *Cache {
	return &Cache{
		samples: make(map[string]domain.LeagueSample),
	}
}

func (c *Cache) Put(sample domain.LeagueSample) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.samples[sample.Season] = sample
}

func (c *Cache) Get(season string) (domain.LeagueSample, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sample, ok := c.samples[season]
	return sample, ok
}

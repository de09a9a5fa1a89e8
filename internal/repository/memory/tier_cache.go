package memory

import (
	"time"

	"renderiq-ambassador-be/internal/entity"

	gocache "github.com/patrickmn/go-cache"
)

const tierTableKey = "volume_tiers"

// ITierCache holds the volume tier table in process memory. The table is tiny
// and changes rarely, so a short TTL plus explicit invalidation on admin
// writes is enough.
type ITierCache interface {
	Get() ([]entity.VolumeTier, bool)
	Set(tiers []entity.VolumeTier)
	Invalidate()
}

type tierCache struct {
	cache *gocache.Cache
}

func NewTierCache(ttl time.Duration) ITierCache {
	return &tierCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *tierCache) Get() ([]entity.VolumeTier, bool) {
	v, found := c.cache.Get(tierTableKey)
	if !found {
		return nil, false
	}
	tiers, ok := v.([]entity.VolumeTier)
	return tiers, ok
}

func (c *tierCache) Set(tiers []entity.VolumeTier) {
	c.cache.Set(tierTableKey, tiers, gocache.DefaultExpiration)
}

func (c *tierCache) Invalidate() {
	c.cache.Delete(tierTableKey)
}

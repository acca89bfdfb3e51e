package cache

import (
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/savdoai/console-api/pkg/metrics"
)

const (
	tariffsCacheKey  = "tariffs"
	tariffsCacheName = "tariffs"
)

// TariffsCache keeps the backend's tariff list in memory so the public
// pricing page does not hit the upstream on every render. The stored value
// is the backend's raw data payload, relayed as-is on a hit.
type TariffsCache struct {
	cache *gocache.Cache
}

// NewTariffsCache creates a tariffs cache with the given TTL in seconds
func NewTariffsCache(ttlSeconds int) *TariffsCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	return &TariffsCache{
		cache: gocache.New(ttl, time.Hour),
	}
}

// Get returns the cached tariff payload, if any
func (tc *TariffsCache) Get() (json.RawMessage, bool) {
	data, found := tc.cache.Get(tariffsCacheKey)
	if !found {
		metrics.CacheMisses.WithLabelValues(tariffsCacheName).Inc()
		return nil, false
	}

	payload, ok := data.(json.RawMessage)
	if !ok {
		tc.cache.Delete(tariffsCacheKey)
		metrics.CacheMisses.WithLabelValues(tariffsCacheName).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(tariffsCacheName).Inc()
	return payload, true
}

// Set stores a tariff payload with the default TTL
func (tc *TariffsCache) Set(payload json.RawMessage) {
	tc.cache.SetDefault(tariffsCacheKey, payload)
}

// Invalidate drops the cached payload
func (tc *TariffsCache) Invalidate() {
	tc.cache.Delete(tariffsCacheKey)
}

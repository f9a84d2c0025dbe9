package cache

import (
	"fmt"
	"time"

	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/jellydator/ttlcache/v3"
)

// QuoteCache holds quotes handed out by the gateway until they are ordered or expire.
type QuoteCache struct {
	quoteCache *ttlcache.Cache[string, lifecycle.Quotable]
	maxTTL     time.Duration
}

func NewQuoteCache(maxTTL time.Duration) *QuoteCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, lifecycle.Quotable](maxTTL),
		ttlcache.WithDisableTouchOnHit[string, lifecycle.Quotable](),
	)
	go cache.Start()

	return &QuoteCache{
		quoteCache: cache,
		maxTTL:     maxTTL,
	}
}

// Key scopes a quote id to the protocol line it was quoted on.
func Key(chainID uint64, protocol string, quoteID string) string {
	return fmt.Sprintf("%d/%s/%s", chainID, protocol, quoteID)
}

// Add stores the quote of a protocol line until its expiry, capped at the cache TTL.
// Expired quotes are not stored.
func (c *QuoteCache) Add(chainID uint64, protocol string, quote lifecycle.Quotable) error {
	ttl := time.Until(quote.ExpiresAt())
	if ttl <= 0 {
		return fmt.Errorf("%w: %s", lifecycle.ErrQuoteExpired, quote.ID())
	}
	if ttl > c.maxTTL {
		ttl = c.maxTTL
	}

	c.quoteCache.Set(Key(chainID, protocol, quote.ID()), quote, ttl)
	return nil
}

func (c *QuoteCache) Quote(chainID uint64, protocol string, quoteID string) (lifecycle.Quotable, error) {
	quote := c.quoteCache.Get(Key(chainID, protocol, quoteID))
	if quote == nil {
		return nil, fmt.Errorf("no quote found with id %s", quoteID)
	}

	return quote.Value(), nil
}

func (c *QuoteCache) Stop() {
	c.quoteCache.Stop()
}

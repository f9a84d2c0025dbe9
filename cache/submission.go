package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	SUBMISSION_TTL = time.Hour
)

// SubmissionCache remembers submitted quote ids so a quote is never submitted twice.
type SubmissionCache struct {
	submitted *ttlcache.Cache[string, time.Time]
}

func NewSubmissionCache(ttl time.Duration) *SubmissionCache {
	if ttl <= 0 {
		ttl = SUBMISSION_TTL
	}

	return &SubmissionCache{
		submitted: ttlcache.New(
			ttlcache.WithTTL[string, time.Time](ttl),
			ttlcache.WithDisableTouchOnHit[string, time.Time](),
		),
	}
}

// MarkSubmitted atomically records the quote and returns false if it was recorded before.
func (c *SubmissionCache) MarkSubmitted(quoteID string) bool {
	_, found := c.submitted.GetOrSet(quoteID, time.Now())
	return !found
}

func (c *SubmissionCache) Submitted(quoteID string) bool {
	return c.submitted.Has(quoteID)
}

// Watch evicts expired entries until the context is done.
func (c *SubmissionCache) Watch(ctx context.Context) {
	go c.submitted.Start()
	<-ctx.Done()
	c.submitted.Stop()
}

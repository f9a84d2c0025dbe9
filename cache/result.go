package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
)

const (
	RESULT_TTL = time.Hour
)

// ResultCache keeps the outcome of finished lifecycles by protocol line and quote id.
type ResultCache struct {
	resultCache *ttlcache.Cache[string, *lifecycle.Result]
}

func NewResultCache(ctx context.Context, resultChn chan *lifecycle.Result) *ResultCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, *lifecycle.Result](RESULT_TTL),
	)

	rc := &ResultCache{
		resultCache: cache,
	}

	go cache.Start()
	go rc.watch(ctx, resultChn)
	return rc
}

func (r *ResultCache) Result(chainID uint64, protocol string, quoteID string) (*lifecycle.Result, error) {
	result := r.resultCache.Get(Key(chainID, protocol, quoteID))
	if result == nil {
		return nil, fmt.Errorf("no result found for quote %s", quoteID)
	}

	return result.Value(), nil
}

func (r *ResultCache) watch(ctx context.Context, resultChn chan *lifecycle.Result) {
	for {
		select {
		case result := <-resultChn:
			{
				log.Debug().Msgf("Received lifecycle result for quote %s in state %s", result.QuoteID, result.State)
				r.resultCache.Set(Key(result.ChainID, result.Protocol, result.QuoteID), result, ttlcache.DefaultTTL)
			}
		case <-ctx.Done():
			{
				r.resultCache.Stop()
				return
			}
		}
	}
}

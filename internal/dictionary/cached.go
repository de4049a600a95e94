package dictionary

import (
	"context"
	"log/slog"
	"time"
)

type verdictCache interface {
	Get(ctx context.Context, word string) (valid, found bool, err error)
	Set(ctx context.Context, word string, valid bool, ttl time.Duration) error
}

// CachedOracle remembers the inner oracle's answers. A broken cache only
// costs a lookup; errors from the inner oracle are never cached.
type CachedOracle struct {
	logger *slog.Logger

	inner Oracle
	cache verdictCache
	ttl   time.Duration
}

func NewCachedOracle(logger *slog.Logger, inner Oracle, cache verdictCache, ttl time.Duration) *CachedOracle {
	return &CachedOracle{
		logger: logger.With("component", "cached_oracle"),
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
	}
}

func (that *CachedOracle) IsValidWord(ctx context.Context, word string) (bool, error) {
	log := that.logger.With("method", "IsValidWord", "word", word)

	valid, found, err := that.cache.Get(ctx, word)
	if err != nil {
		log.Warn("verdict cache lookup failed", "error", err)
	}

	if err == nil && found {
		return valid, nil
	}

	valid, err = that.inner.IsValidWord(ctx, word)
	if err != nil {
		return false, err
	}

	if err = that.cache.Set(ctx, word, valid, that.ttl); err != nil {
		log.Warn("failed to cache verdict", "error", err)
	}

	return valid, nil
}

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	gocache "github.com/patrickmn/go-cache"
)

// VerdictCache memoizes an evaluator's answers. The knowledge base never
// changes at runtime, so entries only expire to bound memory.
type VerdictCache struct {
	next  domain.Evaluator
	cache *gocache.Cache
}

// NewVerdictCache wraps next with an in-memory cache.
func NewVerdictCache(next domain.Evaluator, ttl time.Duration, cleanupInterval time.Duration) *VerdictCache {
	return &VerdictCache{
		next:  next,
		cache: gocache.New(ttl, cleanupInterval),
	}
}

func verdictKey(suspect domain.Suspect, crime domain.CrimeType) string {
	return fmt.Sprintf("enquete:v1:verdict:%q|%q", suspect, crime)
}

func guiltyKey(crime domain.CrimeType) string {
	return fmt.Sprintf("enquete:v1:guilty:%q", crime)
}

func (c *VerdictCache) Verdict(ctx context.Context, suspect domain.Suspect, crime domain.CrimeType) (*domain.Verdict, error) {
	key := verdictKey(suspect, crime)
	if val, found := c.cache.Get(key); found {
		return val.(*domain.Verdict).Clone(), nil
	}

	v, err := c.next.Verdict(ctx, suspect, crime)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, v.Clone())
	return v, nil
}

func (c *VerdictCache) GuiltySuspects(ctx context.Context, crime domain.CrimeType) ([]domain.Suspect, error) {
	key := guiltyKey(crime)
	if val, found := c.cache.Get(key); found {
		return append([]domain.Suspect{}, val.([]domain.Suspect)...), nil
	}

	suspects, err := c.next.GuiltySuspects(ctx, crime)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, append([]domain.Suspect{}, suspects...))
	return suspects, nil
}

// Len returns the number of cached entries, including expired ones not yet
// cleaned up.
func (c *VerdictCache) Len() int {
	return c.cache.ItemCount()
}

// Clear drops every cached entry.
func (c *VerdictCache) Clear() {
	c.cache.Flush()
}

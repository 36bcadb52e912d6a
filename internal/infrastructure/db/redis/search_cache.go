package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/woodline/warehouse-system/internal/api/metrics"
	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

const searchCacheTTL = 30 * time.Second

// SearchCache is a short-lived cache for nomenclature autocomplete results.
// Key format: nomen:<type>:<limit>:<lowercased search>
type SearchCache struct {
	client *redis.Client
}

// NewSearchCache creates a SearchCache wrapping the given Redis client.
func NewSearchCache(client *redis.Client) *SearchCache {
	return &SearchCache{client: client}
}

// Get returns cached entries for the filter. Any Redis or decode error counts
// as a miss; the autocomplete must never fail on cache trouble.
func (c *SearchCache) Get(ctx context.Context, filter ports.NomenclatureFilter) ([]domain.NomenclatureEntry, bool) {
	raw, err := c.client.Get(ctx, c.key(filter)).Bytes()
	if err != nil {
		metrics.NomenclatureCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var entries []domain.NomenclatureEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		metrics.NomenclatureCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.NomenclatureCacheTotal.WithLabelValues("hit").Inc()
	return entries, true
}

// Set stores entries for the filter with a short TTL. Errors are dropped.
func (c *SearchCache) Set(ctx context.Context, filter ports.NomenclatureFilter, entries []domain.NomenclatureEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(filter), raw, searchCacheTTL).Err()
}

func (c *SearchCache) key(filter ports.NomenclatureFilter) string {
	return fmt.Sprintf("nomen:%s:%d:%s", filter.Type, filter.Limit, strings.ToLower(filter.Search))
}

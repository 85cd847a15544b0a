package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moneypad/expense-tracker/internal/core/domain"
)

const summaryTTL = 5 * time.Minute

// SummaryCache stores per-user ledger summaries in Redis.
// Key format: summary:<owner_id>
type SummaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a SummaryCache wrapping the given Redis client.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

// Get returns the cached summary for ownerID, or nil on a cache miss.
func (c *SummaryCache) Get(ctx context.Context, ownerID string) (*domain.Summary, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("summary cache get: %w", err)
	}

	var s domain.Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("summary cache decode: %w", err)
	}
	return &s, nil
}

// Set stores the summary for ownerID (expires after summaryTTL).
func (c *SummaryCache) Set(ctx context.Context, ownerID string, summary domain.Summary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("summary cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(ownerID), raw, summaryTTL).Err()
}

// Invalidate drops the cached summary for ownerID. Dropping an absent key
// succeeds.
func (c *SummaryCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, c.key(ownerID)).Err()
}

func (c *SummaryCache) key(ownerID string) string {
	return "summary:" + ownerID
}

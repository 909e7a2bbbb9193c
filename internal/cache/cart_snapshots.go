package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aarohi-store/storefront/internal/models"
)

// CartSnapshots stores per-session cart snapshots in redis so carts survive
// process restarts. It is a cache, not a source of truth.
type CartSnapshots struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewCartSnapshots(client *redis.Client) *CartSnapshots {
	return &CartSnapshots{
		client:  client,
		baseTTL: 24 * time.Hour,
	}
}

// Get returns the snapshot for the session, or (nil, nil) when none exists.
func (c *CartSnapshots) Get(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	data, err := c.client.Get(ctx, snapshotKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("unmarshal cart snapshot failed: %w", err)
	}
	return lines, nil
}

func (c *CartSnapshots) Set(ctx context.Context, sessionID string, lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart snapshot failed: %w", err)
	}

	// Jitter spreads expirations so a burst of sessions does not expire at once.
	ttl := c.baseTTL + time.Duration(rand.Intn(300))*time.Second
	if err := c.client.Set(ctx, snapshotKey(sessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *CartSnapshots) Delete(ctx context.Context, sessionID string) error {
	if err := c.client.Del(ctx, snapshotKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func snapshotKey(sessionID string) string {
	return "storefront:cart:" + sessionID
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/aureeture/careerhub/internal/dtos"
)

// Slot listings are recomputed per request; a short-lived Redis cache keeps
// repeated calendar renders from hammering the database. New bookings make
// cached results stale, so the TTL stays short.
const slotsTTL = 30 * time.Second

type SlotsCache struct {
	client *redis.Client
}

func NewSlotsCache(client *redis.Client) *SlotsCache {
	return &SlotsCache{client: client}
}

// Connect dials Redis and verifies the connection.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func slotsKey(mentorID string, start, end time.Time) string {
	return fmt.Sprintf("slots:%s:%s:%s", mentorID, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// Get returns the cached slot listing, or (nil, nil) on a miss. Cache errors
// are returned so callers can log them, but a miss is not an error.
func (c *SlotsCache) Get(ctx context.Context, mentorID string, start, end time.Time) (*dtos.SlotListResponse, error) {
	data, err := c.client.Get(ctx, slotsKey(mentorID, start, end)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var resp dtos.SlotListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *SlotsCache) Set(ctx context.Context, mentorID string, start, end time.Time, resp *dtos.SlotListResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, slotsKey(mentorID, start, end), data, slotsTTL).Err()
}

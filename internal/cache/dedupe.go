// Package cache holds the Redis-backed helpers of the push receiver.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const webhookKeyPrefix = "webhook:delivery:"

// WebhookDeduper remembers push deliveries for a while so gateway retries of
// the same event skip the store. The durable compare-and-set stays the source
// of truth.
type WebhookDeduper struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewWebhookDeduper(client redis.UniversalClient, ttl time.Duration) *WebhookDeduper {
	return &WebhookDeduper{client: client, ttl: ttl}
}

// Claim reports whether this is the first time the delivery is seen.
func (d *WebhookDeduper) Claim(ctx context.Context, deliveryKey string) (bool, error) {
	ok, err := d.client.SetNX(ctx, webhookKeyPrefix+deliveryKey, time.Now().UTC().Format(time.RFC3339), d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis dedupe error: %w", err)
	}
	return ok, nil
}

// Release forgets a delivery so a redelivery is processed again.
func (d *WebhookDeduper) Release(ctx context.Context, deliveryKey string) error {
	if err := d.client.Del(ctx, webhookKeyPrefix+deliveryKey).Err(); err != nil {
		return fmt.Errorf("redis dedupe error: %w", err)
	}
	return nil
}

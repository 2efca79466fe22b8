package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/lucaspalermo/defesapix/internal/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeduper(t *testing.T) (*cache.WebhookDeduper, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewWebhookDeduper(client, time.Hour), mr
}

func TestWebhookDeduper_ClaimOnce(t *testing.T) {
	d, _ := newDeduper(t)
	ctx := context.Background()

	first, err := d.Claim(ctx, "evt_1")
	require.NoError(t, err)
	second, err := d.Claim(ctx, "evt_1")
	require.NoError(t, err)
	other, err := d.Claim(ctx, "evt_2")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.True(t, other)
}

func TestWebhookDeduper_ExpiresAfterTTL(t *testing.T) {
	d, mr := newDeduper(t)
	ctx := context.Background()

	_, err := d.Claim(ctx, "evt_1")
	require.NoError(t, err)
	mr.FastForward(2 * time.Hour)

	again, err := d.Claim(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, again)
}

func TestWebhookDeduper_Release(t *testing.T) {
	d, _ := newDeduper(t)
	ctx := context.Background()

	_, err := d.Claim(ctx, "evt_1")
	require.NoError(t, err)
	require.NoError(t, d.Release(ctx, "evt_1"))

	again, err := d.Claim(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, again)
}

func TestWebhookDeduper_RedisDown(t *testing.T) {
	d, mr := newDeduper(t)
	mr.Close()

	_, err := d.Claim(context.Background(), "evt_1")

	assert.Error(t, err)
}

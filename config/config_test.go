package config_test

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/lucaspalermo/defesapix/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var cfg config.Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, "8080", cfg.APP.PORT)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 3*time.Second, cfg.Reconciler.PollInterval)
	assert.Equal(t, []string{"charges.webhook.retry"}, cfg.SubscriberTopicList())
	assert.Contains(t, cfg.PublishTopicList(), "charges.paid")
	assert.Nil(t, cfg.Redis.Client())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("KAFKA_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	var cfg config.Config
	require.NoError(t, env.Parse(&cfg))

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.BrokerList())
	assert.Equal(t, 7, cfg.GetRetryConfig().MaxAttempts)
	client := cfg.Redis.Client()
	require.NotNil(t, client)
	client.Close()
}

package publisher_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lucaspalermo/defesapix/config"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/lucaspalermo/defesapix/internal/publisher"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	failures int
	messages []kafka.Message
	calls    int
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.calls <= w.failures {
		return errors.New("broker not available")
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

var fastRetry = config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}

func TestPublish_KeysChargeEvents(t *testing.T) {
	w := &fakeWriter{}
	p := publisher.NewWithWriters(map[string]publisher.MessageWriter{models.ChargePaidTopic: w}, fastRetry)

	err := p.Publish(context.Background(), models.ChargePaidTopic, models.ChargePaidEvent{ChargeID: "pay_1", Source: models.SourcePush})

	require.NoError(t, err)
	require.Len(t, w.messages, 1)
	assert.Equal(t, "pay_1", string(w.messages[0].Key))
	assert.Contains(t, string(w.messages[0].Value), `"source":"PUSH"`)
}

func TestPublish_UnkeyedEvent(t *testing.T) {
	w := &fakeWriter{}
	p := publisher.NewWithWriters(map[string]publisher.MessageWriter{models.IncidentClassifiedTopic: w}, fastRetry)

	require.NoError(t, p.Publish(context.Background(), models.IncidentClassifiedTopic, models.IncidentClassifiedEvent{Category: models.CategoryOther}))

	assert.Nil(t, w.messages[0].Key)
}

func TestPublish_RetriesThenSucceeds(t *testing.T) {
	w := &fakeWriter{failures: 2}
	p := publisher.NewWithWriters(map[string]publisher.MessageWriter{models.ChargePaidTopic: w}, fastRetry)

	err := p.Publish(context.Background(), models.ChargePaidTopic, models.ChargePaidEvent{ChargeID: "pay_1"})

	assert.NoError(t, err)
	assert.Equal(t, 3, w.calls)
}

func TestPublish_GivesUp(t *testing.T) {
	w := &fakeWriter{failures: 10}
	p := publisher.NewWithWriters(map[string]publisher.MessageWriter{models.ChargePaidTopic: w}, fastRetry)

	err := p.Publish(context.Background(), models.ChargePaidTopic, models.ChargePaidEvent{ChargeID: "pay_1"})

	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, 3, w.calls)
}

func TestPublish_UnknownTopic(t *testing.T) {
	p := publisher.NewWithWriters(map[string]publisher.MessageWriter{}, fastRetry)

	err := p.Publish(context.Background(), "nope", struct{}{})

	assert.ErrorContains(t, err, "no writer configured")
}

func TestBackoff(t *testing.T) {
	cfg := config.RetryConfig{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second}

	assert.Equal(t, 100*time.Millisecond, publisher.Backoff(cfg, 0))
	assert.Equal(t, 400*time.Millisecond, publisher.Backoff(cfg, 2))
	assert.Equal(t, time.Second, publisher.Backoff(cfg, 10))

	cfg.Jitter = true
	for i := 0; i < 50; i++ {
		d := publisher.Backoff(cfg, 1)
		assert.GreaterOrEqual(t, d, 170*time.Millisecond)
		assert.LessOrEqual(t, d, 230*time.Millisecond)
	}
}

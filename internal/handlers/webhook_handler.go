package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucaspalermo/defesapix/internal/gateway"
	"github.com/lucaspalermo/defesapix/internal/metrics"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/sirupsen/logrus"
)

// MaxWebhookBody caps the size of a push notification body.
const MaxWebhookBody = 64 << 10

// WebhookHandler receives gateway push notifications. Once a request is
// authenticated it is always acknowledged with 200; failures to apply it are
// re-queued on the retry topic instead of being pushed back to the gateway.
type WebhookHandler struct {
	Service   PushApplier
	Deduper   Deduper
	Publisher Publisher
}

// NewWebhookHandler accepts a nil deduper, in which case every delivery goes
// to the store.
func NewWebhookHandler(s PushApplier, deduper Deduper, publisher Publisher) *WebhookHandler {
	return &WebhookHandler{Service: s, Deduper: deduper, Publisher: publisher}
}

// POST /webhooks/gateway
func (h *WebhookHandler) Receive(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			metrics.WebhookNotificationsTotal.WithLabelValues("invalid").Inc()
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	notification, err := gateway.ParseWebhook(body)
	if err != nil {
		metrics.WebhookNotificationsTotal.WithLabelValues("invalid").Inc()
		logrus.Warnf("discarding webhook: %s", err.Error())
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	log := logrus.WithFields(logrus.Fields{
		"charge_id": notification.ChargeID,
		"event":     notification.EventType,
	})

	key := notification.DeliveryKey()
	if h.Deduper != nil {
		first, err := h.Deduper.Claim(ctx, key)
		if err != nil {
			log.Warnf("dedupe unavailable: %s", err.Error())
		} else if !first {
			metrics.WebhookNotificationsTotal.WithLabelValues("duplicate").Inc()
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}
	}

	if err := h.Service.ApplyPush(ctx, notification); err != nil {
		log.Errorf("error applying webhook: %s", err.Error())
		h.requeue(ctx, key, notification)
	} else {
		metrics.WebhookNotificationsTotal.WithLabelValues("applied").Inc()
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *WebhookHandler) requeue(ctx context.Context, key string, notification models.WebhookNotification) {
	err := h.Publisher.Publish(ctx, models.WebhookRetryTopic, notification)
	if err == nil {
		metrics.WebhookNotificationsTotal.WithLabelValues("requeued").Inc()
		return
	}
	logrus.WithField("charge_id", notification.ChargeID).Errorf("error re-queueing webhook: %s", err.Error())

	metrics.WebhookNotificationsTotal.WithLabelValues("failed").Inc()
	// let the gateway's own redelivery through
	if h.Deduper != nil {
		if err := h.Deduper.Release(ctx, key); err != nil {
			logrus.WithField("charge_id", notification.ChargeID).Errorf("error releasing delivery: %s", err.Error())
		}
	}
}

// HandleEvents replays notifications from the retry topic.
func (h *WebhookHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.WebhookRetryTopic:
		var notification models.WebhookNotification
		if err := json.Unmarshal(value, &notification); err != nil {
			logrus.Errorf("Error parsing webhook retry event %s", err.Error())
			return fmt.Errorf("error parsing webhook retry event %w", err)
		}
		if err := h.Service.ApplyPush(ctx, notification); err != nil {
			return fmt.Errorf("error applying webhook retry %w", err)
		}
		metrics.WebhookNotificationsTotal.WithLabelValues("applied").Inc()
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}

	return nil
}

package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/lucaspalermo/defesapix/internal/models"
)

type webhookBody struct {
	ID      string `json:"id"`
	Event   string `json:"event"`
	Payment struct {
		ID                string               `json:"id"`
		Status            models.GatewayStatus `json:"status"`
		Value             float64              `json:"value"`
		ExternalReference string               `json:"externalReference"`
	} `json:"payment"`
}

// ParseWebhook decodes a push delivery. Deliveries without a charge id are rejected.
func ParseWebhook(body []byte) (models.WebhookNotification, error) {
	var b webhookBody
	if err := json.Unmarshal(body, &b); err != nil {
		return models.WebhookNotification{}, fmt.Errorf("error parsing webhook body: %w", err)
	}
	if b.Payment.ID == "" {
		return models.WebhookNotification{}, &models.ValidationError{Field: "payment.id", Message: "is required"}
	}
	return models.WebhookNotification{
		EventID:           b.ID,
		EventType:         b.Event,
		ChargeID:          b.Payment.ID,
		Status:            b.Payment.Status,
		Amount:            b.Payment.Value,
		ExternalReference: b.Payment.ExternalReference,
	}, nil
}

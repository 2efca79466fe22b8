package gateway_test

import (
	"testing"

	"github.com/lucaspalermo/defesapix/internal/gateway"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhook(t *testing.T) {
	body := []byte(`{"id":"evt_1","event":"PAYMENT_RECEIVED","payment":{"id":"pay_1","status":"RECEIVED","value":29.9,"externalReference":"ref-1"}}`)

	n, err := gateway.ParseWebhook(body)

	require.NoError(t, err)
	assert.Equal(t, models.WebhookNotification{
		EventID:           "evt_1",
		EventType:         "PAYMENT_RECEIVED",
		ChargeID:          "pay_1",
		Status:            models.GatewayStatusReceived,
		Amount:            29.9,
		ExternalReference: "ref-1",
	}, n)
	assert.True(t, n.ConfirmsPayment())
	assert.Equal(t, "evt_1", n.DeliveryKey())
}

func TestParseWebhook_MissingCharge(t *testing.T) {
	_, err := gateway.ParseWebhook([]byte(`{"event":"PAYMENT_RECEIVED","payment":{}}`))

	var vErr *models.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestParseWebhook_InvalidJSON(t *testing.T) {
	_, err := gateway.ParseWebhook([]byte(`{`))

	assert.Error(t, err)
}

func TestParseWebhook_OverdueDoesNotConfirm(t *testing.T) {
	n, err := gateway.ParseWebhook([]byte(`{"event":"PAYMENT_OVERDUE","payment":{"id":"pay_1","status":"OVERDUE"}}`))

	require.NoError(t, err)
	assert.False(t, n.ConfirmsPayment())
	assert.Equal(t, "pay_1:PAYMENT_OVERDUE", n.DeliveryKey())
}

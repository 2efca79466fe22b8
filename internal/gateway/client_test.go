package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lucaspalermo/defesapix/internal/gateway"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gateway.NewClient(srv.URL, "test-key")
}

func TestFindOrCreatePayer_ReusesExisting(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("access_token"))
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "ana@example.com", r.URL.Query().Get("email"))
		w.Write([]byte(`{"data":[{"id":"cus_1","name":"Ana","email":"ana@example.com"}]}`))
	})

	payer, err := client.FindOrCreatePayer(context.Background(), "Ana", "ana@example.com", "12345678901")

	require.NoError(t, err)
	assert.Equal(t, "cus_1", payer.ID)
}

func TestFindOrCreatePayer_CreatesWhenMissing(t *testing.T) {
	var created bool
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"data":[]}`))
		case http.MethodPost:
			created = true
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "12345678901", body["cpfCnpj"])
			w.Write([]byte(`{"id":"cus_2","name":"Ana","email":"ana@example.com"}`))
		}
	})

	payer, err := client.FindOrCreatePayer(context.Background(), "Ana", "ana@example.com", "12345678901")

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "cus_2", payer.ID)
}

func TestCreateCharge_SendsPixRequest(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PIX", body["billingType"])
		assert.Equal(t, 29.9, body["value"])
		assert.Equal(t, "2026-10-20", body["dueDate"])
		assert.Equal(t, "ref-1", body["externalReference"])
		w.Write([]byte(`{"id":"pay_1","status":"PENDING"}`))
	})

	charge, err := client.CreateCharge(context.Background(), gateway.ChargeRequest{
		PayerID:           "cus_1",
		Amount:            decimal.RequireFromString("29.90"),
		DueDate:           time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		Description:       "kit",
		ExternalReference: "ref-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "pay_1", charge.ID)
	assert.Equal(t, models.GatewayStatusPending, charge.Status)
}

func TestCreateCharge_GatewayMessageSurfaced(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"code":"invalid_customer","description":"Customer inválido"}]}`))
	})

	_, err := client.CreateCharge(context.Background(), gateway.ChargeRequest{Amount: decimal.NewFromInt(10)})

	var gwErr *gateway.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusBadRequest, gwErr.StatusCode)
	assert.Equal(t, "invalid_customer", gwErr.Code)
	assert.Equal(t, "Customer inválido", gwErr.Message)
}

func TestCreateCharge_ErrorWithoutBody(t *testing.T) {
	var calls int
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.CreateCharge(context.Background(), gateway.ChargeRequest{Amount: decimal.NewFromInt(10)})

	var gwErr *gateway.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusServiceUnavailable, gwErr.StatusCode)
	assert.Equal(t, 1, calls)
}

func TestCreateCharge_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := gateway.NewClient(srv.URL, "test-key")

	_, err := client.CreateCharge(context.Background(), gateway.ChargeRequest{Amount: decimal.NewFromInt(10)})

	var gwErr *gateway.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Zero(t, gwErr.StatusCode)
	assert.NotNil(t, errors.Unwrap(gwErr))
}

func TestGetRedeemablePayload(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/pay_1/pixQrCode", r.URL.Path)
		w.Write([]byte(`{"encodedImage":"iVBOR","payload":"00020126","expirationDate":"2026-10-20 23:59:59"}`))
	})

	payload, err := client.GetRedeemablePayload(context.Background(), "pay_1")

	require.NoError(t, err)
	assert.Equal(t, "iVBOR", payload.Image)
	assert.Equal(t, "00020126", payload.Payload)
}

func TestGetRedeemablePayload_Malformed(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.GetRedeemablePayload(context.Background(), "pay_1")

	var gwErr *gateway.GatewayError
	assert.ErrorAs(t, err, &gwErr)
}

func TestGetChargeStatus(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/pay_1/status", r.URL.Path)
		w.Write([]byte(`{"status":"RECEIVED"}`))
	})

	status, err := client.GetChargeStatus(context.Background(), "pay_1")

	require.NoError(t, err)
	assert.True(t, status.IsPaid())
}

func TestRateLimit_HonoursContext(t *testing.T) {
	client := gateway.NewClient("http://127.0.0.1:1", "k", gateway.WithRateLimit(0.001, 1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetChargeStatus(ctx, "pay_1")

	var gwErr *gateway.GatewayError
	assert.ErrorAs(t, err, &gwErr)
}

func TestGetChargeStatus_NonSuccessStatus(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	})

	_, err := client.GetChargeStatus(context.Background(), "pay_1")

	var gwErr *gateway.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusNotModified, gwErr.StatusCode)
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucaspalermo/defesapix/internal/gateway"
	"github.com/lucaspalermo/defesapix/internal/handlers"
	"github.com/lucaspalermo/defesapix/internal/handlers/mocks"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/lucaspalermo/defesapix/internal/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doJSON(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func incidentRouter(s handlers.IncidentService) *gin.Engine {
	r := gin.New()
	h := handlers.NewIncidentHandler(s)
	r.POST("/incidents/assessments", h.Assess)
	return r
}

func TestIncidentHandler_Assess(t *testing.T) {
	mockService := mocks.NewMockIncidentService(t)
	r := incidentRouter(mockService)

	mockService.EXPECT().
		Assess(mock.Anything, &dto.Incident{Description: "Fiz um pix para um golpista ontem", Amount: 250}).
		Return(&models.Classification{Category: models.CategoryPixTransfer, Confidence: 65}, nil).
		Once()

	w := doJSON(r, http.MethodPost, "/incidents/assessments", map[string]interface{}{
		"description": "Fiz um pix para um golpista ontem",
		"amount":      250,
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.Classification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.CategoryPixTransfer, got.Category)
}

func TestIncidentHandler_InvalidBody(t *testing.T) {
	mockService := mocks.NewMockIncidentService(t)
	r := incidentRouter(mockService)

	w := doJSON(r, http.MethodPost, "/incidents/assessments", `{"description":`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Assess", mock.Anything, mock.Anything)
}

func TestIncidentHandler_ValidationError(t *testing.T) {
	mockService := mocks.NewMockIncidentService(t)
	r := incidentRouter(mockService)

	mockService.EXPECT().
		Assess(mock.Anything, mock.Anything).
		Return(nil, &models.ValidationError{Field: "amount", Message: "must be greater than zero"}).
		Once()

	w := doJSON(r, http.MethodPost, "/incidents/assessments", map[string]interface{}{"description": "x", "amount": 0}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid amount: must be greater than zero","field":"amount"}`, w.Body.String())
}

func chargeRouter(s handlers.ChargeService) *gin.Engine {
	r := gin.New()
	h := handlers.NewChargeHandler(s)
	r.POST("/charges", h.CreateCharge)
	r.GET("/charges/:id", h.GetStatus)
	r.DELETE("/charges/:id/session", h.Abandon)
	return r
}

func TestChargeHandler_Create(t *testing.T) {
	mockService := mocks.NewMockChargeService(t)
	r := chargeRouter(mockService)

	mockService.EXPECT().
		CreateCharge(mock.Anything, mock.AnythingOfType("*dto.Charge")).
		Return(&models.PaymentCharge{ID: "pay_1", RedeemablePayload: "00020126"}, nil).
		Once()

	w := doJSON(r, http.MethodPost, "/charges", map[string]string{"product_code": "RECOVERY_KIT"}, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"pay_1"`)
}

func TestChargeHandler_CreateGatewayError(t *testing.T) {
	mockService := mocks.NewMockChargeService(t)
	r := chargeRouter(mockService)

	mockService.EXPECT().
		CreateCharge(mock.Anything, mock.Anything).
		Return(nil, &gateway.GatewayError{StatusCode: 400, Message: "CPF inválido"}).
		Once()

	w := doJSON(r, http.MethodPost, "/charges", map[string]string{"product_code": "RECOVERY_KIT"}, nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"CPF inválido"}`, w.Body.String())
}

func TestChargeHandler_CreateInternalError(t *testing.T) {
	mockService := mocks.NewMockChargeService(t)
	r := chargeRouter(mockService)

	mockService.EXPECT().
		CreateCharge(mock.Anything, mock.Anything).
		Return(nil, errors.New("database error")).
		Once()

	w := doJSON(r, http.MethodPost, "/charges", map[string]string{}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "database")
}

func TestChargeHandler_GetStatus(t *testing.T) {
	mockService := mocks.NewMockChargeService(t)
	r := chargeRouter(mockService)

	mockService.EXPECT().
		GetStatus(mock.Anything, "pay_1").
		Return(&models.ChargeStatusView{ID: "pay_1", Status: models.ChargeStatusPending, RemainingSeconds: 321, ExpiresAt: time.Now()}, nil).
		Once()

	w := doJSON(r, http.MethodGet, "/charges/pay_1", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"remaining_seconds":321`)
}

func TestChargeHandler_GetStatusNotFound(t *testing.T) {
	mockService := mocks.NewMockChargeService(t)
	r := chargeRouter(mockService)

	mockService.EXPECT().GetStatus(mock.Anything, "missing").Return(nil, models.ErrChargeNotFound).Once()

	w := doJSON(r, http.MethodGet, "/charges/missing", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChargeHandler_Abandon(t *testing.T) {
	mockService := mocks.NewMockChargeService(t)
	r := chargeRouter(mockService)

	mockService.EXPECT().Abandon(mock.Anything, "pay_1").Return(nil).Once()

	w := doJSON(r, http.MethodDelete, "/charges/pay_1/session", nil, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}


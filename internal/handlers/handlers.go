package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucaspalermo/defesapix/internal/gateway"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/lucaspalermo/defesapix/internal/models/dto"
	"github.com/sirupsen/logrus"
)

type IncidentService interface {
	Assess(ctx context.Context, incident *dto.Incident) (*models.Classification, error)
}

type ChargeService interface {
	CreateCharge(ctx context.Context, charge *dto.Charge) (*models.PaymentCharge, error)
	GetStatus(ctx context.Context, chargeID string) (*models.ChargeStatusView, error)
	Abandon(ctx context.Context, chargeID string) error
}

type PushApplier interface {
	ApplyPush(ctx context.Context, notification models.WebhookNotification) error
}

type Deduper interface {
	Claim(ctx context.Context, deliveryKey string) (bool, error)
	Release(ctx context.Context, deliveryKey string) error
}

type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

func writeError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var gatewayErr *gateway.GatewayError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.As(err, &gatewayErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": gatewayErr.Message})
	case errors.Is(err, models.ErrChargeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logrus.Errorf("request %s %s failed: %s", c.Request.Method, c.FullPath(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

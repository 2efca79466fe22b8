package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lucaspalermo/defesapix/internal/gateway"
	"github.com/lucaspalermo/defesapix/internal/metrics"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/lucaspalermo/defesapix/internal/models/dto"
	"github.com/sirupsen/logrus"
)

// ChargeService creates PIX charges and exposes their status.
type ChargeService struct {
	Repo      ChargeRepo
	Gateway   Gateway
	Sessions  SessionManager
	Expirer   Expirer
	Publisher Publisher
	Now       func() time.Time
}

func NewChargeService(repo ChargeRepo, gw Gateway, sessions SessionManager, expirer Expirer, publisher Publisher) *ChargeService {
	return &ChargeService{
		Repo:      repo,
		Gateway:   gw,
		Sessions:  sessions,
		Expirer:   expirer,
		Publisher: publisher,
		Now:       time.Now,
	}
}

// CreateCharge registers (or reuses) the payer, creates a charge due tomorrow
// and fetches its PIX payload. Gateway failures come back as
// *gateway.GatewayError and are never retried here.
func (s *ChargeService) CreateCharge(ctx context.Context, chargeDTO *dto.Charge) (*models.PaymentCharge, error) {
	chargeDTO.Sanitize()
	if err := chargeDTO.Validate(); err != nil {
		return nil, err
	}
	product, _ := models.LookupProduct(chargeDTO.ProductCode)

	payer, err := s.Gateway.FindOrCreatePayer(ctx, chargeDTO.PayerName, chargeDTO.PayerEmail, chargeDTO.PayerTaxID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	reference := uuid.NewString()
	charge, err := s.Gateway.CreateCharge(ctx, gateway.ChargeRequest{
		PayerID:           payer.ID,
		Amount:            product.Price,
		DueDate:           now.AddDate(0, 0, 1),
		Description:       product.Description,
		ExternalReference: reference,
	})
	if err != nil {
		return nil, err
	}

	payload, err := s.Gateway.GetRedeemablePayload(ctx, charge.ID)
	if err != nil {
		return nil, err
	}

	expiresAt := now.Add(models.ChargeWindow)
	record := &models.ChargeRecord{
		ID:                charge.ID,
		ProductCode:       product.Code,
		Amount:            product.Price,
		Status:            models.ChargeStatusPending,
		ExternalReference: reference,
		PayerEmail:        chargeDTO.PayerEmail,
		ExpiresAt:         expiresAt,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("error storing charge %s: %w", charge.ID, err)
	}

	s.Sessions.Start(charge.ID, expiresAt)
	metrics.ChargesCreatedTotal.WithLabelValues(product.Code).Inc()

	event := models.ChargeCreatedEvent{
		ChargeID:    charge.ID,
		ProductCode: product.Code,
		Amount:      product.Price.StringFixed(2),
		ExpiresAt:   expiresAt,
		TraceID:     reference,
	}
	if err := s.Publisher.Publish(ctx, models.ChargeCreatedTopic, event); err != nil {
		logrus.WithField("charge_id", charge.ID).Errorf("error publishing charge created: %s", err.Error())
	}

	return &models.PaymentCharge{
		ID:                charge.ID,
		AmountDue:         product.Price,
		ProductCode:       product.Code,
		RedeemablePayload: payload.Payload,
		RenderableImage:   payload.Image,
		ExpiresAt:         expiresAt,
	}, nil
}

// GetStatus reads the durable status. A PENDING charge past its window is
// expired on the way out.
func (s *ChargeService) GetStatus(ctx context.Context, chargeID string) (*models.ChargeStatusView, error) {
	record, err := s.Repo.GetByID(ctx, chargeID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	if record.Status == models.ChargeStatusPending && !now.Before(record.ExpiresAt) {
		status, _, err := s.Expirer.MarkExpired(ctx, chargeID, now)
		if err != nil {
			logrus.WithField("charge_id", chargeID).Errorf("error expiring charge: %s", err.Error())
		} else {
			record.Status = status
		}
	}

	view := &models.ChargeStatusView{
		ID:        record.ID,
		Status:    record.Status,
		ExpiresAt: record.ExpiresAt,
	}
	if record.Status == models.ChargeStatusPending {
		view.RemainingSeconds = models.RemainingSeconds(record.ExpiresAt, now)
	}
	return view, nil
}

// Abandon stops the local session only. The charge stays payable until it
// expires and a late push is still recorded.
func (s *ChargeService) Abandon(ctx context.Context, chargeID string) error {
	if s.Sessions.Stop(chargeID) {
		return nil
	}
	_, err := s.Repo.GetByID(ctx, chargeID)
	return err
}

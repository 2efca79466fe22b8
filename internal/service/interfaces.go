package service

import (
	"context"
	"time"

	"github.com/lucaspalermo/defesapix/internal/gateway"
	"github.com/lucaspalermo/defesapix/internal/models"
)

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// ChargeRepo is the read/create side of the charge store.
type ChargeRepo interface {
	Create(ctx context.Context, charge *models.ChargeRecord) error
	GetByID(ctx context.Context, id string) (*models.ChargeRecord, error)
}

// ChargeLedger is the compare-and-set side of the charge store.
type ChargeLedger interface {
	MarkPaid(ctx context.Context, id string, source models.ConfirmationSource, at time.Time) (models.MarkPaidResult, error)
	MarkExpired(ctx context.Context, id string, at time.Time) (models.ChargeStatus, bool, error)
	ListOverdue(ctx context.Context, now time.Time) ([]models.ChargeRecord, error)
}

type Gateway interface {
	FindOrCreatePayer(ctx context.Context, name, email, taxID string) (*gateway.Payer, error)
	CreateCharge(ctx context.Context, req gateway.ChargeRequest) (*gateway.Charge, error)
	GetRedeemablePayload(ctx context.Context, chargeID string) (*gateway.RedeemablePayload, error)
}

// SessionManager owns the local reconciliation loops.
type SessionManager interface {
	Start(chargeID string, expiresAt time.Time)
	Stop(chargeID string) bool
}

type SessionConfirmer interface {
	Confirm(ctx context.Context, chargeID string) bool
}

type Expirer interface {
	MarkExpired(ctx context.Context, id string, at time.Time) (models.ChargeStatus, bool, error)
}

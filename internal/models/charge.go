package models

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type ChargeStatus string
type GatewayStatus string
type ConfirmationSource string

const (
	ChargeStatusPending ChargeStatus = "PENDING"
	ChargeStatusPaid    ChargeStatus = "PAID"
	ChargeStatusExpired ChargeStatus = "EXPIRED"

	GatewayStatusPending   GatewayStatus = "PENDING"
	GatewayStatusReceived  GatewayStatus = "RECEIVED"
	GatewayStatusConfirmed GatewayStatus = "CONFIRMED"
	GatewayStatusOverdue   GatewayStatus = "OVERDUE"
	GatewayStatusRefunded  GatewayStatus = "REFUNDED"

	SourcePoll ConfirmationSource = "POLL"
	SourcePush ConfirmationSource = "PUSH"

	ChargeWindow = 10 * time.Minute
)

func (s ChargeStatus) IsTerminal() bool {
	return s == ChargeStatusPaid || s == ChargeStatusExpired
}

// RemainingSeconds rounds up so a charge shows 1 until it has actually expired.
func RemainingSeconds(expiresAt, now time.Time) int {
	left := expiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}

// IsPaid treats both RECEIVED and CONFIRMED as money in.
func (s GatewayStatus) IsPaid() bool {
	return s == GatewayStatusReceived || s == GatewayStatusConfirmed
}

// ChargeRecord is the durable state of a charge, keyed by the gateway id.
type ChargeRecord struct {
	ID                string             `gorm:"primaryKey" json:"id"`
	ProductCode       string             `gorm:"index" json:"product_code"`
	Amount            decimal.Decimal    `gorm:"type:numeric(12,2)" json:"amount"`
	Status            ChargeStatus       `gorm:"index;not null" json:"status"`
	ExternalReference string             `json:"external_reference"`
	PayerEmail        string             `json:"payer_email"`
	ConfirmedBy       ConfirmationSource `json:"confirmed_by,omitempty"`
	ExpiresAt         time.Time          `json:"expires_at"`
	PaidAt            *time.Time         `json:"paid_at,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

type PaymentCharge struct {
	ID                string          `json:"id"`
	AmountDue         decimal.Decimal `json:"amount_due"`
	ProductCode       string          `json:"product_code"`
	RedeemablePayload string          `json:"redeemable_payload"`
	RenderableImage   string          `json:"renderable_image"`
	ExpiresAt         time.Time       `json:"expires_at"`
}

type ChargeStatusView struct {
	ID               string       `json:"id"`
	Status           ChargeStatus `json:"status"`
	RemainingSeconds int          `json:"remaining_seconds"`
	ExpiresAt        time.Time    `json:"expires_at"`
}

// MarkPaidResult reports whether a paid write found the charge already
// terminal. AlreadyPaid is the expected outcome for the slower of two
// confirming signals.
type MarkPaidResult struct {
	AlreadyPaid bool         `json:"already_paid"`
	Status      ChargeStatus `json:"status"`
}

// WebhookNotification is a validated push delivery from the gateway.
type WebhookNotification struct {
	EventID           string        `json:"event_id"`
	EventType         string        `json:"event_type"`
	ChargeID          string        `json:"charge_id"`
	Status            GatewayStatus `json:"status"`
	Amount            float64       `json:"amount"`
	ExternalReference string        `json:"external_reference"`
}

// DeliveryKey identifies a delivery for de-duplication.
func (n WebhookNotification) DeliveryKey() string {
	if n.EventID != "" {
		return n.EventID
	}
	return n.ChargeID + ":" + n.EventType
}

func (n WebhookNotification) ConfirmsPayment() bool {
	switch n.EventType {
	case "PAYMENT_RECEIVED", "PAYMENT_CONFIRMED":
		return true
	}
	return n.Status.IsPaid()
}

package models

import "time"

const (
	IncidentClassifiedTopic = "incidents.classified"
	ChargeCreatedTopic      = "charges.created"
	ChargePaidTopic         = "charges.paid"
	ChargeExpiredTopic      = "charges.expired"
	WebhookRetryTopic       = "charges.webhook.retry"
	ChargesDLQTopic         = "charges.dlq"
)

type IncidentClassifiedEvent struct {
	Category            Category  `json:"category"`
	Confidence          int       `json:"confidence"`
	RecoveryProbability int       `json:"recovery_probability"`
	Amount              float64   `json:"amount"`
	Actions             int       `json:"actions"`
	TraceID             string    `json:"trace_id"`
	ClassifiedAt        time.Time `json:"classified_at"`
}

type ChargeCreatedEvent struct {
	ChargeID    string    `json:"charge_id"`
	ProductCode string    `json:"product_code"`
	Amount      string    `json:"amount"`
	ExpiresAt   time.Time `json:"expires_at"`
	TraceID     string    `json:"trace_id"`
}

func (e ChargeCreatedEvent) EventKey() string { return e.ChargeID }

type ChargePaidEvent struct {
	ChargeID string             `json:"charge_id"`
	Source   ConfirmationSource `json:"source"`
	PaidAt   time.Time          `json:"paid_at"`
}

func (e ChargePaidEvent) EventKey() string { return e.ChargeID }

type ChargeExpiredEvent struct {
	ChargeID  string    `json:"charge_id"`
	ExpiredAt time.Time `json:"expired_at"`
}

func (e ChargeExpiredEvent) EventKey() string { return e.ChargeID }

func (n WebhookNotification) EventKey() string { return n.ChargeID }

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}

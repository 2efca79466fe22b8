package service

import (
	"context"
	"time"

	"github.com/lucaspalermo/defesapix/internal/metrics"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/sirupsen/logrus"
)

// ConfirmationService is the single place where charges become terminal.
// Both the poll path (through the reconciler) and the push path end here;
// events are published only by the call whose write actually applied.
type ConfirmationService struct {
	Ledger    ChargeLedger
	Sessions  SessionConfirmer
	Publisher Publisher
	Now       func() time.Time
}

func NewConfirmationService(ledger ChargeLedger, publisher Publisher) *ConfirmationService {
	return &ConfirmationService{
		Ledger:    ledger,
		Publisher: publisher,
		Now:       time.Now,
	}
}

func (s *ConfirmationService) MarkPaid(ctx context.Context, chargeID string, source models.ConfirmationSource, at time.Time) (models.MarkPaidResult, error) {
	res, err := s.Ledger.MarkPaid(ctx, chargeID, source, at)
	if err != nil {
		return res, err
	}

	log := logrus.WithFields(logrus.Fields{"charge_id": chargeID, "source": source})
	switch {
	case res.AlreadyPaid:
		metrics.ReconciliationNoopsTotal.WithLabelValues(string(source)).Inc()
		log.Debug("charge already paid")
	case res.Status == models.ChargeStatusExpired:
		log.Warn("payment received for an expired charge, needs manual follow-up")
	case res.Status == models.ChargeStatusPaid:
		metrics.ChargeTransitionsTotal.WithLabelValues(string(models.ChargeStatusPaid), string(source)).Inc()
		event := models.ChargePaidEvent{ChargeID: chargeID, Source: source, PaidAt: at.UTC()}
		if err := s.Publisher.Publish(ctx, models.ChargePaidTopic, event); err != nil {
			log.Errorf("error publishing charge paid: %s", err.Error())
		}
	}
	return res, nil
}

func (s *ConfirmationService) MarkExpired(ctx context.Context, chargeID string, at time.Time) (models.ChargeStatus, bool, error) {
	status, applied, err := s.Ledger.MarkExpired(ctx, chargeID, at)
	if err != nil || !applied {
		return status, applied, err
	}

	metrics.ChargeTransitionsTotal.WithLabelValues(string(models.ChargeStatusExpired), "COUNTDOWN").Inc()
	event := models.ChargeExpiredEvent{ChargeID: chargeID, ExpiredAt: at.UTC()}
	if err := s.Publisher.Publish(ctx, models.ChargeExpiredTopic, event); err != nil {
		logrus.WithField("charge_id", chargeID).Errorf("error publishing charge expired: %s", err.Error())
	}
	return status, applied, nil
}

// ApplyPush records a push notification durably, then tells the local
// session, if there is one. Notifications that do not confirm a payment are
// ignored.
func (s *ConfirmationService) ApplyPush(ctx context.Context, notification models.WebhookNotification) error {
	if !notification.ConfirmsPayment() {
		logrus.WithFields(logrus.Fields{
			"charge_id": notification.ChargeID,
			"event":     notification.EventType,
		}).Debug("ignoring non-payment notification")
		return nil
	}

	res, err := s.MarkPaid(ctx, notification.ChargeID, models.SourcePush, s.Now())
	if err != nil {
		return err
	}
	if res.Status == models.ChargeStatusPaid && s.Sessions != nil {
		s.Sessions.Confirm(ctx, notification.ChargeID)
	}
	return nil
}

// ExpireOverdue expires PENDING charges whose window closed without a live
// session to do it, and returns how many it changed.
func (s *ConfirmationService) ExpireOverdue(ctx context.Context) (int, error) {
	now := s.Now()
	overdue, err := s.Ledger.ListOverdue(ctx, now)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, charge := range overdue {
		_, applied, err := s.MarkExpired(ctx, charge.ID, now)
		if err != nil {
			logrus.WithField("charge_id", charge.ID).Errorf("error expiring overdue charge: %s", err.Error())
			continue
		}
		if applied {
			expired++
		}
	}
	return expired, nil
}

package posgrest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lucaspalermo/defesapix/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChargeRepository stores charge records. Paid and expired writes are
// compare-and-set on status PENDING so a terminal record is never changed.
type ChargeRepository struct {
	*repository[models.ChargeRecord]
}

func NewChargeRepository(db *gorm.DB) *ChargeRepository {
	return &ChargeRepository{repository: New[models.ChargeRecord](db)}
}

func (r *ChargeRepository) GetByID(ctx context.Context, id string) (*models.ChargeRecord, error) {
	record, err := r.repository.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, models.ErrChargeNotFound
	}
	return record, err
}

// MarkPaid upserts the charge as PAID. A charge the store has never seen is
// inserted as PAID; a PENDING one is updated; a terminal one is left alone and
// reported back.
func (r *ChargeRepository) MarkPaid(ctx context.Context, id string, source models.ConfirmationSource, at time.Time) (models.MarkPaidResult, error) {
	record := models.ChargeRecord{
		ID:          id,
		Status:      models.ChargeStatusPaid,
		ConfirmedBy: source,
		PaidAt:      &at,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: clause.Column{Table: "charge_records", Name: "status"}, Value: models.ChargeStatusPending},
		}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":       models.ChargeStatusPaid,
			"confirmed_by": source,
			"paid_at":      at,
			"updated_at":   at,
		}),
	}).Create(&record)
	if result.Error != nil {
		return models.MarkPaidResult{}, fmt.Errorf("error marking charge %s paid: %w", id, result.Error)
	}
	if result.RowsAffected > 0 {
		return models.MarkPaidResult{Status: models.ChargeStatusPaid}, nil
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return models.MarkPaidResult{}, err
	}
	return models.MarkPaidResult{
		AlreadyPaid: current.Status == models.ChargeStatusPaid,
		Status:      current.Status,
	}, nil
}

// MarkExpired moves a PENDING charge to EXPIRED. It returns the resulting
// status and whether this call made the change.
func (r *ChargeRepository) MarkExpired(ctx context.Context, id string, at time.Time) (models.ChargeStatus, bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ChargeRecord{}).
		Where("id = ? AND status = ?", id, models.ChargeStatusPending).
		Updates(map[string]interface{}{
			"status":     models.ChargeStatusExpired,
			"updated_at": at,
		})
	if result.Error != nil {
		return "", false, fmt.Errorf("error marking charge %s expired: %w", id, result.Error)
	}
	if result.RowsAffected > 0 {
		return models.ChargeStatusExpired, true, nil
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return "", false, err
	}
	return current.Status, false, nil
}

// ListOverdue returns PENDING charges whose window closed at or before now.
func (r *ChargeRepository) ListOverdue(ctx context.Context, now time.Time) ([]models.ChargeRecord, error) {
	return r.Find(ctx, "status = ? AND expires_at <= ?", models.ChargeStatusPending, now)
}

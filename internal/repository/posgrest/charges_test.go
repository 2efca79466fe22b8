package posgrest_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/lucaspalermo/defesapix/internal/repository/posgrest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepo(t *testing.T) *posgrest.ChargeRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.ChargeRecord{}))
	return posgrest.NewChargeRepository(db)
}

func pendingCharge(id string, expiresAt time.Time) *models.ChargeRecord {
	return &models.ChargeRecord{
		ID:                id,
		ProductCode:       "RECOVERY_KIT",
		Amount:            decimal.RequireFromString("29.90"),
		Status:            models.ChargeStatusPending,
		ExternalReference: "ref-" + id,
		PayerEmail:        "ana@example.com",
		ExpiresAt:         expiresAt,
	}
}

func TestChargeRepository_CreateAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	expires := time.Now().UTC().Add(models.ChargeWindow)

	require.NoError(t, repo.Create(ctx, pendingCharge("pay_1", expires)))

	got, err := repo.GetByID(ctx, "pay_1")
	require.NoError(t, err)
	assert.Equal(t, models.ChargeStatusPending, got.Status)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("29.90")))
}

func TestChargeRepository_GetByID_NotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, models.ErrChargeNotFound)
}

func TestChargeRepository_MarkPaid_FirstWins(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, pendingCharge("pay_1", now.Add(models.ChargeWindow))))

	first, err := repo.MarkPaid(ctx, "pay_1", models.SourcePush, now)
	require.NoError(t, err)
	assert.False(t, first.AlreadyPaid)
	assert.Equal(t, models.ChargeStatusPaid, first.Status)

	afterFirst, err := repo.GetByID(ctx, "pay_1")
	require.NoError(t, err)

	second, err := repo.MarkPaid(ctx, "pay_1", models.SourcePoll, now.Add(time.Second))
	require.NoError(t, err)
	assert.True(t, second.AlreadyPaid)
	assert.Equal(t, models.ChargeStatusPaid, second.Status)

	got, err := repo.GetByID(ctx, "pay_1")
	require.NoError(t, err)
	assert.Equal(t, afterFirst, got)
	assert.Equal(t, models.SourcePush, got.ConfirmedBy)
	assert.Equal(t, "RECOVERY_KIT", got.ProductCode)
	require.NotNil(t, got.PaidAt)
}

func TestChargeRepository_MarkPaid_UnknownChargeIsRecorded(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	res, err := repo.MarkPaid(ctx, "pay_orphan", models.SourcePush, time.Now().UTC())

	require.NoError(t, err)
	assert.False(t, res.AlreadyPaid)
	got, err := repo.GetByID(ctx, "pay_orphan")
	require.NoError(t, err)
	assert.Equal(t, models.ChargeStatusPaid, got.Status)
}

func TestChargeRepository_MarkPaid_ExpiredStaysExpired(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, pendingCharge("pay_1", now)))

	status, applied, err := repo.MarkExpired(ctx, "pay_1", now)
	require.NoError(t, err)
	require.True(t, applied)
	assert.Equal(t, models.ChargeStatusExpired, status)

	res, err := repo.MarkPaid(ctx, "pay_1", models.SourcePush, now.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, res.AlreadyPaid)
	assert.Equal(t, models.ChargeStatusExpired, res.Status)

	got, err := repo.GetByID(ctx, "pay_1")
	require.NoError(t, err)
	assert.Equal(t, models.ChargeStatusExpired, got.Status)
	assert.Nil(t, got.PaidAt)
}

func TestChargeRepository_MarkExpired_AfterPaidIsNoop(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, pendingCharge("pay_1", now)))
	_, err := repo.MarkPaid(ctx, "pay_1", models.SourcePoll, now)
	require.NoError(t, err)

	status, applied, err := repo.MarkExpired(ctx, "pay_1", now.Add(time.Minute))

	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, models.ChargeStatusPaid, status)
}

func TestChargeRepository_MarkExpired_Missing(t *testing.T) {
	repo := newRepo(t)

	_, _, err := repo.MarkExpired(context.Background(), "missing", time.Now())

	assert.ErrorIs(t, err, models.ErrChargeNotFound)
}

func TestChargeRepository_MarkPaid_ConcurrentSignals(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, pendingCharge("pay_1", now.Add(models.ChargeWindow))))

	var wg sync.WaitGroup
	results := make([]models.MarkPaidResult, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			source := models.SourcePoll
			if i%2 == 0 {
				source = models.SourcePush
			}
			res, err := repo.MarkPaid(ctx, "pay_1", source, now)
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, r := range results {
		if !r.AlreadyPaid {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestChargeRepository_ListOverdue(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, pendingCharge("old", now.Add(-time.Minute))))
	require.NoError(t, repo.Create(ctx, pendingCharge("fresh", now.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, pendingCharge("paid", now.Add(-time.Minute))))
	_, err := repo.MarkPaid(ctx, "paid", models.SourcePush, now)
	require.NoError(t, err)

	overdue, err := repo.ListOverdue(ctx, now)

	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "old", overdue[0].ID)
}

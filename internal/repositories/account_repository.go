package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autopilot/internal/models/db_models"
)

type AccountRepository interface {
	InsertTx(account *db_models.Account, ctx context.Context) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	// ResetUsagePeriod persists a monthly reset performed by the quota ledger. The write only
	// lands while the stored period is still `previous`; applied is false when another request
	// started the new period first.
	ResetUsagePeriod(ctx context.Context, id uuid.UUID, previous *int64, startedAt int64) (applied bool, err error)
	// UpdateSubscription sets the tier and zeroes the generation count.
	UpdateSubscription(ctx context.Context, id uuid.UUID, tier db_models.SubscriptionTier) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) ResetUsagePeriod(ctx context.Context, id uuid.UUID, previous *int64, startedAt int64) (bool, error) {
	query := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id)
	if previous == nil || *previous <= 0 {
		query = query.Where("(last_reset_at IS NULL OR last_reset_at <= 0)")
	} else {
		query = query.Where("last_reset_at = ?", *previous)
	}

	res := query.Updates(map[string]interface{}{
		"generation_count": 0,
		"last_reset_at":    startedAt,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (a *accountRepository) UpdateSubscription(ctx context.Context, id uuid.UUID, tier db_models.SubscriptionTier) error {
	res := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"subscription_tier": tier,
			"generation_count":  0,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

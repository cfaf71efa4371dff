package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"autopilot/internal/models/db_models"
)

type ProfileRepository interface {
	// FindByAccountID returns (nil, nil) when the account never saved a profile.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.PreferenceProfile, error)
	Upsert(ctx context.Context, profile *db_models.PreferenceProfile) (created bool, err error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.PreferenceProfile, error) {
	var profile db_models.PreferenceProfile
	err := p.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

// Upsert creates the profile on first write and replaces every field afterwards.
func (p *profileRepository) Upsert(ctx context.Context, profile *db_models.PreferenceProfile) (bool, error) {
	created := false
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.PreferenceProfile
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&existing, "account_id = ?", profile.AccountID).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			return tx.Create(profile).Error
		case err != nil:
			return err
		}

		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		return tx.Select("*").Omit("created_at", "deleted_at").Updates(profile).Error
	})
	return created, err
}

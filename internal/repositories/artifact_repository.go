package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autopilot/internal/models/db_models"
)

// ErrQuotaNotReserved is returned by CommitGeneration when the conditional count
// increment matched no row, meaning a concurrent request used the last unit.
var ErrQuotaNotReserved = errors.New("quota not reserved")

type ArtifactRepository interface {
	// CommitGeneration stores the artifact and consumes one unit of quota atomically.
	// limit is ignored when unlimited is true.
	CommitGeneration(ctx context.Context, artifact *db_models.GeneratedArtifact, limit db_models.PlanLimit) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.GeneratedArtifact, int64, error)
}

type artifactRepository struct {
	db *gorm.DB
}

func NewArtifactRepository(db *gorm.DB) ArtifactRepository {
	return &artifactRepository{db: db}
}

func (r *artifactRepository) CommitGeneration(ctx context.Context, artifact *db_models.GeneratedArtifact, limit db_models.PlanLimit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&db_models.Account{}).Where("id = ?", artifact.AccountID)
		if !limit.Unlimited {
			q = q.Where("COALESCE(generation_count, 0) < ?", limit.Max)
		}

		res := q.UpdateColumn("generation_count", gorm.Expr("COALESCE(generation_count, 0) + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrQuotaNotReserved
		}

		return tx.Create(artifact).Error
	})
}

func (r *artifactRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.GeneratedArtifact, int64, error) {
	var (
		artifacts []db_models.GeneratedArtifact
		total     int64
	)

	base := r.db.WithContext(ctx).Model(&db_models.GeneratedArtifact{}).Where("account_id = ?", accountID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&artifacts).Error
	if err != nil {
		return nil, 0, err
	}

	return artifacts, total, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"autopilot/internal/models/response_models"
	"autopilot/internal/repositories"
	"autopilot/pkg/utils"
)

const MaxPageSize = 100

type WorkHistoryPage struct {
	Items    []response_models.ArtifactResponse `json:"items"`
	Page     int                                `json:"page"`
	PageSize int                                `json:"page_size"`
	Total    int64                              `json:"total"`
}

type WorkService interface {
	ListWork(ctx context.Context, accountID uuid.UUID, page, pageSize int) (*WorkHistoryPage, error)
}

type workService struct {
	artifactRepo repositories.ArtifactRepository
}

func NewWorkService(artifactRepo repositories.ArtifactRepository) WorkService {
	return &workService{artifactRepo: artifactRepo}
}

func (s *workService) ListWork(ctx context.Context, accountID uuid.UUID, page, pageSize int) (*WorkHistoryPage, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return nil, utils.ErrInvalidPageSize
	}

	artifacts, total, err := s.artifactRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	items := make([]response_models.ArtifactResponse, 0, len(artifacts))
	for _, a := range artifacts {
		items = append(items, response_models.ArtifactResponse{
			ID:          a.ID.String(),
			ContentKind: string(a.ContentKind),
			Prompt:      a.Prompt,
			Result:      a.Result,
			CreatedAt:   a.CreatedAt,
		})
	}

	return &WorkHistoryPage{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

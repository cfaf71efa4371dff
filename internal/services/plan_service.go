package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"autopilot/internal/models/db_models"
	"autopilot/internal/models/response_models"
	"autopilot/internal/repositories"
	"autopilot/pkg/utils"
)

type PlanServiceInterface interface {
	GetPlans() []response_models.PlanResponse
	GetUsage(ctx context.Context, accountID uuid.UUID) (*response_models.UsageResponse, error)
}

func NewPlanService(accountRepo repositories.AccountRepository, ledger *QuotaLedger) PlanServiceInterface {
	return &PlanService{
		accountRepo: accountRepo,
		ledger:      ledger,
	}
}

type PlanService struct {
	accountRepo repositories.AccountRepository
	ledger      *QuotaLedger
}

func (p *PlanService) GetPlans() []response_models.PlanResponse {
	plans := make([]response_models.PlanResponse, 0, len(db_models.PlanLimits))
	for _, pl := range db_models.PlanLimits {
		item := response_models.PlanResponse{
			Code:      string(pl.Tier),
			Unlimited: pl.Limit.Unlimited,
		}
		if !pl.Limit.Unlimited {
			max := pl.Limit.Max
			item.Limit = &max
		}
		plans = append(plans, item)
	}
	return plans
}

// GetUsage reports the current period without persisting a pending reset.
func (p *PlanService) GetUsage(ctx context.Context, accountID uuid.UUID) (*response_models.UsageResponse, error) {
	account, err := p.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	usage := p.ledger.Usage(*account)
	return &usage, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autopilot/internal/models/db_models"
	"autopilot/internal/models/response_models"
	"autopilot/internal/repositories"
	"autopilot/pkg/utils"
)

// BillingService applies the effect of a completed purchase. Checkout itself lives elsewhere.
type BillingService interface {
	ApplyUpgrade(ctx context.Context, accountID uuid.UUID, plan string) (*response_models.UsageResponse, error)
}

type billingService struct {
	accountRepo repositories.AccountRepository
	ledger      *QuotaLedger
	logger      *zap.Logger
}

func NewBillingService(accountRepo repositories.AccountRepository, ledger *QuotaLedger, logger *zap.Logger) BillingService {
	return &billingService{
		accountRepo: accountRepo,
		ledger:      ledger,
		logger:      logger.Named("billing"),
	}
}

func (s *billingService) ApplyUpgrade(ctx context.Context, accountID uuid.UUID, plan string) (*response_models.UsageResponse, error) {
	tier, ok := db_models.ParseTier(plan)
	if !ok {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidPlan, plan)
	}

	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	s.ledger.ApplyUpgrade(account, tier)
	if err := s.accountRepo.UpdateSubscription(ctx, account.ID, account.SubscriptionTier); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.logger.Info("subscription upgraded",
		zap.String("account_id", accountID.String()),
		zap.String("plan", string(tier)))

	usage := s.ledger.Usage(*account)
	return &usage, nil
}

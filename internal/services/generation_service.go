package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"autopilot/internal/models/db_models"
	"autopilot/internal/models/response_models"
	"autopilot/internal/repositories"
	"autopilot/pkg/utils"
)

type GenerationService interface {
	Generate(ctx context.Context, accountID uuid.UUID, brief ContentBrief) (*response_models.GenerationResponse, error)
}

type generationService struct {
	accountRepo  repositories.AccountRepository
	profileRepo  repositories.ProfileRepository
	artifactRepo repositories.ArtifactRepository
	client       utils.GenerationClientInterface
	ledger       *QuotaLedger
	logger       *zap.Logger
}

func NewGenerationService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	artifactRepo repositories.ArtifactRepository,
	client utils.GenerationClientInterface,
	ledger *QuotaLedger,
	logger *zap.Logger,
) GenerationService {
	return &generationService{
		accountRepo:  accountRepo,
		profileRepo:  profileRepo,
		artifactRepo: artifactRepo,
		client:       client,
		ledger:       ledger,
		logger:       logger.Named("generation"),
	}
}

func (s *generationService) Generate(ctx context.Context, accountID uuid.UUID, brief ContentBrief) (*response_models.GenerationResponse, error) {
	if err := brief.validate(); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: load account: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	account, err = s.startUsagePeriod(ctx, account)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Enforce(account); err != nil {
		s.logger.Info("quota exceeded",
			zap.String("account_id", account.ID.String()),
			zap.String("plan", string(account.SubscriptionTier)),
			zap.Int("used", account.GenerationCount))
		return nil, err
	}

	profile, err := s.profileRepo.FindByAccountID(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: load profile: %v", utils.ErrDatabaseError, err)
	}

	start := time.Now()
	output, err := s.client.Generate(ctx, utils.GenerationRequest{
		Messages:    brief.Messages(BuildDirectives(profile)),
		Temperature: TemperatureFor(profile),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", utils.ErrGenerationFailed, s.client.Provider(), err)
	}
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, fmt.Errorf("%w: %s returned empty output", utils.ErrGenerationFailed, s.client.Provider())
	}

	limit := s.ledger.LimitFor(account)
	artifact := &db_models.GeneratedArtifact{
		AccountID:   account.ID,
		ContentKind: brief.Kind,
		Prompt:      brief.StoredPrompt,
		Result:      output,
	}
	if err := s.artifactRepo.CommitGeneration(ctx, artifact, limit); err != nil {
		if errors.Is(err, repositories.ErrQuotaNotReserved) {
			return nil, fmt.Errorf("%w: concurrent request used the last generation", utils.ErrQuotaExceeded)
		}
		return nil, fmt.Errorf("%w: commit generation: %v", utils.ErrDatabaseError, err)
	}
	s.ledger.Consume(account)

	s.logger.Info("content generated",
		zap.String("account_id", account.ID.String()),
		zap.String("kind", string(brief.Kind)),
		zap.String("provider", s.client.Provider()),
		zap.Duration("took", time.Since(start)))

	resp := &response_models.GenerationResponse{
		Output: output,
		Used:   account.GenerationCount,
	}
	if !limit.Unlimited {
		max := limit.Max
		resp.Limit = &max
	}
	return resp, nil
}

// startUsagePeriod persists a monthly reset when the ledger starts one. When a concurrent
// request already started the period, the stored row is reloaded so its count is kept.
func (s *generationService) startUsagePeriod(ctx context.Context, account *db_models.Account) (*db_models.Account, error) {
	previous := account.LastResetAt
	if !s.ledger.CheckAndReset(account) {
		return account, nil
	}

	applied, err := s.accountRepo.ResetUsagePeriod(ctx, account.ID, previous, *account.LastResetAt)
	if err != nil {
		return nil, fmt.Errorf("%w: reset usage period: %v", utils.ErrDatabaseError, err)
	}
	if applied {
		s.logger.Debug("usage period reset", zap.String("account_id", account.ID.String()))
		return account, nil
	}

	current, err := s.accountRepo.FindById(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: reload account: %v", utils.ErrDatabaseError, err)
	}
	if current == nil {
		return nil, utils.ErrAccountNotFound
	}
	if s.ledger.CheckAndReset(current) {
		return nil, fmt.Errorf("%w: usage period changed concurrently", utils.ErrDatabaseError)
	}
	return current, nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"autopilot/internal/models/db_models"
	"autopilot/internal/models/request_models"
	"autopilot/internal/models/response_models"
	"autopilot/internal/repositories"
	"autopilot/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger.Named("account"),
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", utils.ErrDatabaseError, err)
	}

	newAccount := &db_models.Account{
		Name:             strings.TrimSpace(request.Name),
		Email:            email,
		PasswordHash:     hashedPassword,
		Role:             db_models.RoleUser,
		SubscriptionTier: db_models.TierFree,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	a.logger.Info("account created", zap.String("account_id", newAccount.ID.String()))
	return toAccountResponse(newAccount), nil
}

func (a *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return toAccountResponse(account), nil
}

func toAccountResponse(a *db_models.Account) *response_models.AccountResponse {
	tier, _ := db_models.ParseTier(string(a.SubscriptionTier))
	return &response_models.AccountResponse{
		ID:               a.ID.String(),
		Name:             a.Name,
		Email:            a.Email,
		Role:             a.Role,
		SubscriptionTier: string(tier),
	}
}

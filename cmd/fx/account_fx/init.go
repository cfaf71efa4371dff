package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autopilot/internal/repositories"
	"autopilot/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideQuotaLedger, providePlanService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, logger)
}

func provideQuotaLedger() *services.QuotaLedger {
	return services.NewQuotaLedger(nil)
}

func providePlanService(accountRepo repositories.AccountRepository, ledger *services.QuotaLedger) services.PlanServiceInterface {
	return services.NewPlanService(accountRepo, ledger)
}

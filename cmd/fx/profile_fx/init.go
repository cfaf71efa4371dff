package profile_fx

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autopilot/internal/repositories"
	"autopilot/internal/services"
)

var Module = fx.Provide(
	provideValidator, provideProfileRepo, provideProfileService)

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	validate *validator.Validate,
	logger *zap.Logger,
) services.ProfileService {
	return services.NewProfileService(accountRepo, profileRepo, validate, logger)
}

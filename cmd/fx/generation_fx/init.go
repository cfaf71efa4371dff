package generation_fx

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autopilot/internal/config"
	"autopilot/internal/repositories"
	"autopilot/internal/services"
	"autopilot/pkg/utils"
)

var Module = fx.Provide(
	provideGenerationClient, provideArtifactRepo, provideGenerationService)

func provideGenerationClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.GenerationClientInterface, error) {
	client, err := utils.NewGenerationClient(context.Background(), cfg.Generation.ClientConfig())
	if err != nil {
		return nil, err
	}
	logger.Info("generation client ready", zap.String("provider", client.Provider()))

	if closer, ok := client.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return client, nil
}

func provideArtifactRepo(db *gorm.DB) repositories.ArtifactRepository {
	return repositories.NewArtifactRepository(db)
}

func provideGenerationService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	artifactRepo repositories.ArtifactRepository,
	client utils.GenerationClientInterface,
	ledger *services.QuotaLedger,
	logger *zap.Logger,
) services.GenerationService {
	return services.NewGenerationService(accountRepo, profileRepo, artifactRepo, client, ledger, logger)
}

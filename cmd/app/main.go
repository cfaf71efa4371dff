package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autopilot/cmd/fx/account_fx"
	"autopilot/cmd/fx/billing_fx"
	"autopilot/cmd/fx/config_fx"
	"autopilot/cmd/fx/controllers_fx"
	"autopilot/cmd/fx/dashboard_fx"
	"autopilot/cmd/fx/db_fx"
	"autopilot/cmd/fx/generation_fx"
	"autopilot/cmd/fx/logger_fx"
	"autopilot/cmd/fx/profile_fx"
	"autopilot/cmd/fx/work_fx"
	"autopilot/internal/config"
	"autopilot/internal/infra"
)

var autoMigrate bool

var rootCmd = &cobra.Command{
	Use:   "autopilot",
	Short: "Marketing copy generation API",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := fx.New(
			config_fx.Module,
			logger_fx.Module,
			db_fx.Module,
			account_fx.Module,
			profile_fx.Module,
			generation_fx.Module,
			work_fx.Module,
			billing_fx.Module,
			dashboard_fx.Module,
			controllers_fx.Module,

			fx.Provide(ProvideRouter),
			fx.Invoke(RunMigrations),
			fx.Invoke(StartServer),
		)
		if err := app.Err(); err != nil {
			return err
		}
		app.Run()
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger, err := infra.NewLogger(cfg.Log, cfg.Environment)
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := infra.InitPostgresql(cfg.Database, logger)
		if err != nil {
			return err
		}
		defer infra.ClosePostgresql(db, logger)

		if err := infra.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("schema migrated")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "run schema migration before serving")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	if !autoMigrate {
		return nil
	}
	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("schema migrated")
	return nil
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

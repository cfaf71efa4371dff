package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autopilot/internal/api/controllers"
	"autopilot/internal/config"
	"autopilot/internal/models/db_models"
	"autopilot/pkg/middleware"
)

type Controllers struct {
	Account    *controllers.AccountController
	Generation *controllers.GenerationController
	Profile    *controllers.ProfileController
	Usage      *controllers.UsageController
	Work       *controllers.WorkController
	Billing    *controllers.BillingController
	Dashboard  *controllers.DashboardController
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	account *controllers.AccountController,
	generation *controllers.GenerationController,
	profile *controllers.ProfileController,
	usage *controllers.UsageController,
	work *controllers.WorkController,
	billing *controllers.BillingController,
	dashboard *controllers.DashboardController) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	RegisterRoutes(r, []byte(cfg.Auth.JWTSecret), Controllers{
		Account:    account,
		Generation: generation,
		Profile:    profile,
		Usage:      usage,
		Work:       work,
		Billing:    billing,
		Dashboard:  dashboard,
	})

	return r
}

func RegisterRoutes(r *gin.Engine, secret []byte, c Controllers) {
	r.GET("/healthz", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })

	api := r.Group("/api")
	api.POST("/accounts/register", c.Account.Register)
	api.GET("/plans", c.Usage.ListPlans)

	authed := api.Group("", middleware.JWTAuthMiddleware(secret))
	authed.GET("/accounts/me", c.Account.Me)

	authed.POST("/ads/generate", c.Generation.GenerateAds)
	authed.POST("/content/generate", c.Generation.GenerateContent)
	authed.POST("/email/generate", c.Generation.GenerateEmail)

	authed.GET("/profile/me", c.Profile.GetMyProfile)
	authed.PUT("/profile/update", c.Profile.UpdateMyProfile)
	authed.POST("/profile/update", c.Profile.UpdateMyProfile)

	authed.GET("/usage", c.Usage.GetUsage)
	authed.GET("/work", c.Work.ListWork)

	admin := authed.Group("/admin", middleware.RoleMiddleware(db_models.RoleAdmin))
	admin.POST("/billing/upgrade", c.Billing.UpgradePlan)
	admin.GET("/dashboard", c.Dashboard.GetDashboard)
}

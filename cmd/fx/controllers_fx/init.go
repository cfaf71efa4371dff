package controllers_fx

import (
	"go.uber.org/fx"

	"autopilot/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewGenerationController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewUsageController),
	fx.Provide(controllers.NewWorkController),
	fx.Provide(controllers.NewBillingController),
	fx.Provide(controllers.NewDashboardController))

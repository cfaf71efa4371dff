package billing_fx

import (
	"go.uber.org/fx"

	"autopilot/internal/services"
)

var Module = fx.Provide(services.NewBillingService)

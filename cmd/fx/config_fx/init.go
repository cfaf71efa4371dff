package config_fx

import (
	"go.uber.org/fx"

	"autopilot/internal/config"
)

var Module = fx.Provide(config.Load)

package plotdata

import (
	"go.uber.org/fx"

	"kelvin/internal/app/timerange"
	"kelvin/internal/config"
	"kelvin/internal/config/logger"
)

// Module provides the plot data window for dependency injection
var Module = fx.Module("plotdata",
	fx.Provide(func(cfg *config.Config, ranges *timerange.Controller, log logger.Logger) *Window {
		return New(ranges, cfg.Plot.RollInterval, log.WithComponent("PLOT"))
	}),
)

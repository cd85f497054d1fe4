package timerange

import (
	"go.uber.org/fx"

	"kelvin/internal/app/bus"
	"kelvin/internal/config/logger"
)

// Module provides the time range controller for dependency injection
var Module = fx.Module("timerange",
	fx.Provide(func(events bus.Bus, log logger.Logger) *Controller {
		return New(events, log.WithComponent("RANGE"))
	}),
)

package watcher

import (
	"go.uber.org/fx"

	"kelvin/internal/app/bus"
	"kelvin/internal/config"
	"kelvin/internal/config/logger"
)

// Module provides the watcher for dependency injection
var Module = fx.Module("watcher",
	fx.Provide(func(cfg *config.Config, events bus.Bus, log logger.Logger) (Watcher, error) {
		return NewWatcher(cfg, events, log.WithComponent("WATCHER"))
	}),
)

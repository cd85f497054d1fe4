package session

import (
	"go.uber.org/fx"

	"kelvin/internal/app/bus"
	"kelvin/internal/app/plotdata"
	"kelvin/internal/config"
	"kelvin/internal/config/logger"
)

// Module provides the session and its listener for dependency injection
var Module = fx.Module("session",
	fx.Provide(func(cfg *config.Config, events bus.Bus, window *plotdata.Window, log logger.Logger) *Session {
		return NewSession(cfg, events, window, log.WithComponent("SESSION"))
	}),
	fx.Provide(func(s *Session, b bus.Bus, log logger.Logger) Listener {
		return NewListener(s, b, log.WithComponent("SESSION"))
	}),
)

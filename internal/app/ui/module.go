package ui

import "go.uber.org/fx"

// Module provides the UI factory for dependency injection
var Module = fx.Options(
	fx.Provide(NewUI),
)

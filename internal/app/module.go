package app

import (
	"go.uber.org/fx"

	"kelvin/internal/app/bus"
	"kelvin/internal/app/cli"
	"kelvin/internal/app/monitor"
	"kelvin/internal/app/plotdata"
	"kelvin/internal/app/session"
	"kelvin/internal/app/timerange"
	"kelvin/internal/app/ui"
	"kelvin/internal/app/watcher"
)

// Module aggregates every viewer module and provides the application
var Module = fx.Options(
	bus.Module,
	timerange.Module,
	plotdata.Module,
	session.Module,
	watcher.Module,
	monitor.Module,
	ui.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)

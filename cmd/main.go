package main

import (
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"kelvin/internal/app"
	"kelvin/internal/config"
	"kelvin/internal/config/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("kelvin: " + err.Error() + "\n")
		os.Exit(1)
	}

	createApp(cfg, hasNoUIFlag(os.Args[1:])).Run()
}

// hasNoUIFlag peeks at the raw arguments before cobra parses them; the log
// destination has to be settled while the container is assembled, not when
// the CLI runs
func hasNoUIFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--no-ui" {
			return true
		}
	}

	return false
}

// createApp assembles the fx container. With the TUI active, console logs
// would corrupt the alternate screen, so they are discarded.
func createApp(cfg *config.Config, noUI bool) *fx.App {
	var logOutput io.Writer
	if !noUI {
		logOutput = io.Discard
	}

	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		fx.Provide(func() logger.Logger {
			return logger.NewLoggerWithOutput(cfg, logOutput)
		}),
		app.Module,
	)
}

// createFxLogger keeps fx's own event log quiet unless debug logging is on
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level != logger.DebugLevel {
			return fxevent.NopLogger
		}

		return &fxevent.ConsoleLogger{W: os.Stdout}
	}
}

// Package app wires the viewer together and runs it under fx.
package app

import (
	"context"
	"os"

	"go.uber.org/fx"

	"kelvin/internal/app/cli"
)

// App runs the command line interface and carries its exit code back to the
// process
type App struct {
	cli  cli.CLI
	done chan struct{}
}

// NewApp creates the application around its CLI
func NewApp(cli cli.CLI) *App {
	return &App{
		cli:  cli,
		done: make(chan struct{}),
	}
}

// Run executes the CLI and exits the process with its code
func (a *App) Run() {
	code := a.execute()
	close(a.done)

	os.Exit(code)
}

// execute is split from Run so tests can observe the exit code
func (a *App) execute() int {
	if err := a.cli.Run(os.Args[1:]); err != nil {
		os.Stderr.WriteString("kelvin: " + err.Error() + "\n")

		return 1
	}

	return 0
}

// Register hooks the app into the fx lifecycle: start launches the CLI in
// its own goroutine, stop waits for it to finish
func Register(lc fx.Lifecycle, app *App) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go app.Run()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

// Package cli parses the command line and decides between the TUI and the
// headless summary.
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/x/term"

	"kelvin/internal/app/errors"
	"kelvin/internal/app/plotdata"
	"kelvin/internal/app/session"
	"kelvin/internal/app/ui"
	"kelvin/internal/app/viewport"
	"kelvin/internal/app/watcher"
	"kelvin/internal/config"
	"kelvin/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Run(args []string) error
}

// cli represents the command-line interface for the application
type cli struct {
	cfg      *config.Config
	ui       ui.UI
	session  *session.Session
	listener session.Listener
	watcher  watcher.Watcher
	window   *plotdata.Window
	log      logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	cfg *config.Config,
	uiFactory ui.UI,
	sess *session.Session,
	listener session.Listener,
	w watcher.Watcher,
	window *plotdata.Window,
	log logger.Logger,
) CLI {
	return &cli{
		cfg:      cfg,
		ui:       uiFactory,
		session:  sess,
		listener: listener,
		watcher:  w,
		window:   window,
		log:      log,
	}
}

// Run processes command-line arguments and executes the viewer
func (c *cli) Run(args []string) error {
	opts, err := Parse(args)
	if err != nil {
		return err
	}

	if opts.Version {
		printVersion()

		return nil
	}

	if opts.Path == "" {
		return errors.ErrLogPathRequired
	}

	if opts.Scale != "" {
		c.session.SetMode(viewport.ParseScaleMode(opts.Scale))
	}

	if len(opts.Columns) > 0 {
		c.session.SetColumns(opts.Columns)
	}

	if opts.NoUI || !term.IsTerminal(os.Stdout.Fd()) {
		return c.runHeadless(opts.Path)
	}

	return c.runTUI(opts.Path)
}

// runTUI starts the watcher and hands control to the Bubble Tea program
func (c *cli) runTUI(path string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.listener.Start(ctx)

	if err := c.watcher.Watch(ctx, path); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("file watching unavailable")
	}

	defer c.watcher.Close()

	p := c.ui(ctx, path)
	_, err := p.Run()

	return err
}

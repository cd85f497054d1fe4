package session

import (
	"context"

	"kelvin/internal/app/bus"
	"kelvin/internal/config/logger"
)

// Listener reacts to file change events by reloading the session's data
type Listener interface {
	Start(ctx context.Context)
}

type listener struct {
	session *Session
	bus     bus.Bus
	log     logger.Logger
}

// NewListener creates a new session event listener
func NewListener(session *Session, b bus.Bus, log logger.Logger) Listener {
	return &listener{
		session: session,
		bus:     b,
		log:     log,
	}
}

// Start begins listening for bus events
func (l *listener) Start(ctx context.Context) {
	msgCh := l.bus.Subscribe(ctx)

	go func() {
		for msg := range msgCh {
			l.handleEvent(ctx, msg)
		}
	}()
}

func (l *listener) handleEvent(ctx context.Context, msg bus.Message) {
	if msg.Type != bus.EventFileChanged {
		return
	}

	data, ok := msg.Data.(bus.FileChanged)
	if !ok || data.Path != l.session.Path() {
		return
	}

	// the window only rolls while the user follows live data; a plain
	// reload keeps the current view
	if err := l.session.Reload(ctx, l.session.Following()); err != nil {
		l.log.Warn().Err(err).Str("path", data.Path).Msg("reload after file change failed")
	}
}

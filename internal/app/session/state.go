package session

import (
	"context"

	"github.com/looplab/fsm"

	"kelvin/internal/config/logger"
)

// FSM states
const (
	Idle      = "idle"
	Loading   = "loading"
	Ready     = "ready"
	Following = "following"
	Failed    = "failed"
)

// FSM events
const (
	Open     = "open"
	Loaded   = "loaded"
	Fail     = "fail"
	Follow   = "follow"
	Unfollow = "unfollow"
)

// newSessionFSM creates a state machine for the viewer lifecycle. A reload
// of the same file goes through loading again; following survives reloads
// because Reload never fires an event.
func newSessionFSM(log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: Open, Src: []string{Idle, Ready, Following, Failed}, Dst: Loading},
			{Name: Loaded, Src: []string{Loading}, Dst: Ready},
			{Name: Fail, Src: []string{Loading}, Dst: Failed},
			{Name: Follow, Src: []string{Ready}, Dst: Following},
			{Name: Unfollow, Src: []string{Following}, Dst: Ready},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("STATE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}

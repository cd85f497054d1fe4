// Package bus carries the application's internal events: file lifecycle,
// range settles and session phase changes. Everything that reacts to an
// edit or a reload subscribes here instead of holding references into the
// component that produced it.
package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kelvin/internal/config"
	"kelvin/internal/config/logger"
)

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventPhaseChanged   MessageType = "phase_changed"
	EventFileLoaded     MessageType = "file_loaded"
	EventFileLoadFailed MessageType = "file_load_failed"
	EventFileChanged    MessageType = "file_changed"
	EventRangeChanged   MessageType = "range_changed"
	EventSeriesReplaced MessageType = "series_replaced"
	EventFollowToggled  MessageType = "follow_toggled"
)

// Phase represents the session phase
type Phase string

// Session phases
const (
	PhaseIdle      Phase = "idle"
	PhaseLoading   Phase = "loading"
	PhaseReady     Phase = "ready"
	PhaseFollowing Phase = "following"
	PhaseFailed    Phase = "failed"
)

// UpdateSource tags which input surface drove a range settle, so the
// originating surface can skip re-applying its own edit
type UpdateSource string

// Update sources
const (
	SourceStart    UpdateSource = "start"
	SourceEnd      UpdateSource = "end"
	SourceSpan     UpdateSource = "span"
	SourceExternal UpdateSource = "external"
)

// Message represents a bus message
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// PhaseChanged indicates a session phase transition
type PhaseChanged struct {
	Phase Phase
}

// FileLoaded indicates a log file was decoded into the data model
type FileLoaded struct {
	Path     string
	Channels int
	Rows     int
}

// FileLoadFailed indicates the decoder rejected the file
type FileLoadFailed struct {
	Path  string
	Error error
}

// FileChanged indicates the watched log file was modified on disk
type FileChanged struct {
	Path string
}

// RangeChanged carries a settled time window, published exactly once per
// settle cycle
type RangeChanged struct {
	Start  float64
	End    float64
	Span   float64
	Source UpdateSource
}

// SeriesReplaced indicates series data was rebuilt or updated in place
type SeriesReplaced struct {
	Rolled bool
}

// FollowToggled indicates the live-follow mode flipped
type FollowToggled struct {
	Following bool
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	cfg         *config.Config
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(cfg *config.Config, log logger.Logger) Bus {
	return &bus{
		cfg:         cfg,
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.cfg.Bus.Buffer)
	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }()

					c <- m
				}(ch, msg)
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case PhaseChanged:
		return fmt.Sprintf("{phase: %s}", d.Phase)
	case FileLoaded:
		return fmt.Sprintf("{path: %s, channels: %d, rows: %d}", d.Path, d.Channels, d.Rows)
	case FileLoadFailed:
		return fmt.Sprintf("{path: %s, error: %v}", d.Path, d.Error)
	case FileChanged:
		return fmt.Sprintf("{path: %s}", d.Path)
	case RangeChanged:
		return fmt.Sprintf("{start: %.3f, end: %.3f, span: %.3f, source: %s}", d.Start, d.End, d.Span, d.Source)
	case SeriesReplaced:
		return fmt.Sprintf("{rolled: %t}", d.Rolled)
	case FollowToggled:
		return fmt.Sprintf("{following: %t}", d.Following)
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}

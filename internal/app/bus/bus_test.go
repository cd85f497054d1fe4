package bus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kelvin/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Bus.Buffer = 10

	return cfg
}

func Test_New(t *testing.T) {
	b := New(testConfig(), nil)

	assert.NotNil(t, b)
}

func Test_Bus_PublishSubscribe(t *testing.T) {
	b := New(testConfig(), nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	b.Publish(Message{
		Type: EventFileLoaded,
		Data: FileLoaded{Path: "run.vcl", Channels: 12, Rows: 4096},
	})

	select {
	case msg := <-ch:
		assert.Equal(t, EventFileLoaded, msg.Type)
		data, ok := msg.Data.(FileLoaded)
		assert.True(t, ok)
		assert.Equal(t, "run.vcl", data.Path)
		assert.Equal(t, 12, data.Channels)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Expected message")
	}
}

func Test_Bus_MultipleSubscribers(t *testing.T) {
	b := New(testConfig(), nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch1 := b.Subscribe(ctx)
	ch2 := b.Subscribe(ctx)

	b.Publish(Message{Type: EventPhaseChanged, Data: PhaseChanged{Phase: PhaseReady}})

	for _, ch := range []<-chan Message{ch1, ch2} {
		select {
		case msg := <-ch:
			assert.Equal(t, EventPhaseChanged, msg.Type)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("Expected message on subscriber")
		}
	}
}

func Test_Bus_RangeChanged(t *testing.T) {
	b := New(testConfig(), nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	b.Publish(Message{
		Type: EventRangeChanged,
		Data: RangeChanged{Start: 10, End: 70, Span: 60, Source: SourceSpan},
	})

	select {
	case msg := <-ch:
		data, ok := msg.Data.(RangeChanged)
		assert.True(t, ok)
		assert.Equal(t, SourceSpan, data.Source)
		assert.Equal(t, 60.0, data.Span)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Expected range message")
	}
}

func Test_Bus_Unsubscribe_OnContextCancel(t *testing.T) {
	b := New(testConfig(), nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)

	cancel()
	time.Sleep(10 * time.Millisecond)

	_, ok := <-ch
	assert.False(t, ok, "Channel should be closed after context cancel")
}

func Test_Bus_Close(t *testing.T) {
	b := New(testConfig(), nil)

	ctx := context.Background()
	ch := b.Subscribe(ctx)

	b.Close()

	_, ok := <-ch
	assert.False(t, ok, "Channel should be closed")

	b.Publish(Message{Type: EventPhaseChanged})
}

func Test_Bus_CriticalMessage_BlockingSubscriber(t *testing.T) {
	cfg := &config.Config{}
	cfg.Bus.Buffer = 1

	b := New(cfg, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	b.Publish(Message{Type: EventPhaseChanged, Critical: false})

	b.Publish(Message{Type: EventFileLoadFailed, Critical: true})

	received := 0
	timeout := time.After(100 * time.Millisecond)

loop:
	for {
		select {
		case <-ch:
			received++
			if received >= 2 {
				break loop
			}
		case <-timeout:
			break loop
		}
	}

	assert.GreaterOrEqual(t, received, 1)
}

func Test_NoOp(t *testing.T) {
	b := NoOp()

	assert.NotNil(t, b)

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)

	b.Publish(Message{Type: EventPhaseChanged})

	select {
	case <-ch:
		t.Fatal("NoOp should not deliver messages")
	case <-time.After(10 * time.Millisecond):
	}

	cancel()
	time.Sleep(10 * time.Millisecond)

	_, ok := <-ch
	assert.False(t, ok)

	b.Close()
}

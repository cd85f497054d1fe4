package timerange

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kelvin/internal/app/bus"
	"kelvin/internal/config"
)

func testBus(t *testing.T) (bus.Bus, <-chan bus.Message) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Bus.Buffer = 32

	b := bus.New(cfg, nil)
	t.Cleanup(b.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return b, b.Subscribe(ctx)
}

func drainRanges(t *testing.T, ch <-chan bus.Message, wait time.Duration) []bus.RangeChanged {
	t.Helper()

	var out []bus.RangeChanged

	timeout := time.After(wait)

	for {
		select {
		case msg := <-ch:
			if msg.Type != bus.EventRangeChanged {
				continue
			}

			data, ok := msg.Data.(bus.RangeChanged)
			require.True(t, ok)
			out = append(out, data)
		case <-timeout:
			return out
		}
	}
}

func Test_Controller_Reset(t *testing.T) {
	b, ch := testBus(t)
	c := New(b, nil)

	c.Reset(100, 700)

	start, end := c.Window()
	assert.Equal(t, 100.0, start)
	assert.Equal(t, 700.0, end)
	assert.Equal(t, 600.0, c.Span())

	ranges := drainRanges(t, ch, 50*time.Millisecond)
	require.Len(t, ranges, 1)
	assert.Equal(t, bus.SourceExternal, ranges[0].Source)
}

func Test_Controller_SetStart_Unclamped(t *testing.T) {
	c := New(nil, nil)
	c.Reset(100, 700)

	c.SetStart(50)

	start, end := c.Window()
	assert.Equal(t, 50.0, start, "start edge takes the value as given")
	assert.Equal(t, 700.0, end)
	assert.Equal(t, 650.0, c.Span())
}

func Test_Controller_SetEnd_PreservesSpan(t *testing.T) {
	c := New(nil, nil)
	c.Reset(100, 700)
	c.SetSpan(60)

	c.SetEnd(800)

	start, end := c.Window()
	assert.Equal(t, 800.0, end)
	assert.InDelta(t, 740.0, start, 1e-9)
	assert.InDelta(t, 60.0, c.Span(), 1e-9)
}

func Test_Controller_SetEnd_ClampsStartToLowerBound(t *testing.T) {
	c := New(nil, nil)
	c.Reset(100, 700)

	c.SetEnd(150)

	start, end := c.Window()
	assert.Equal(t, 100.0, start, "start clamps to the lower bound")
	assert.Equal(t, 150.0, end)
	assert.Equal(t, 50.0, c.Span(), "span shrinks to fit the clamp")
}

func Test_Controller_SetSpan_KeepsEnd(t *testing.T) {
	c := New(nil, nil)
	c.Reset(100, 700)

	c.SetSpan(200)

	start, end := c.Window()
	assert.Equal(t, 500.0, start)
	assert.Equal(t, 700.0, end)
}

func Test_Controller_SetSpan_ClampsStartToLowerBound(t *testing.T) {
	c := New(nil, nil)
	c.Reset(100, 700)

	c.SetSpan(100000)

	start, _ := c.Window()
	assert.Equal(t, 100.0, start)
	assert.Equal(t, 600.0, c.Span())
}

func Test_Controller_SetExternalRange_Unclamped(t *testing.T) {
	c := New(nil, nil)
	c.Reset(100, 700)

	c.SetExternalRange(-50, 900)

	start, end := c.Window()
	assert.Equal(t, -50.0, start, "external ranges bypass the lower bound")
	assert.Equal(t, 900.0, end)
}

func Test_Controller_SpanInvariant_AfterEditSequence(t *testing.T) {
	c := New(nil, nil)
	c.Reset(0, 1000)

	c.SetSpan(120)
	c.SetEnd(500)
	c.SetStart(350)
	c.SetEnd(600)

	assert.InDelta(t, 150.0, c.Span(), 1e-3)

	start, _ := c.Window()
	assert.GreaterOrEqual(t, start, 0.0)
}

func Test_Controller_OneEventPerSettle(t *testing.T) {
	b, ch := testBus(t)
	c := New(b, nil)

	c.Reset(0, 100)
	c.SetSpan(50)
	c.SetEnd(80)

	ranges := drainRanges(t, ch, 50*time.Millisecond)
	require.Len(t, ranges, 3)

	assert.Equal(t, bus.SourceExternal, ranges[0].Source)
	assert.Equal(t, bus.SourceSpan, ranges[1].Source)
	assert.Equal(t, bus.SourceEnd, ranges[2].Source)

	last := ranges[2]
	assert.Equal(t, 30.0, last.Start)
	assert.Equal(t, 80.0, last.End)
	assert.Equal(t, 50.0, last.Span)
}

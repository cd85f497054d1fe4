package plot

import (
	"context"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kelvin/internal/app/bus"
	"kelvin/internal/app/monitor"
	"kelvin/internal/app/plotdata"
	"kelvin/internal/app/session"
	"kelvin/internal/app/timerange"
	"kelvin/internal/config"
	"kelvin/internal/config/logger"
)

const (
	titleOffset  = 0x1800 + 32
	titleSize    = 32
	recordOffset = 0x3000
	cellSize     = 8
)

// writeLogFile builds a synthetic log file with the given titles and rows
func writeLogFile(t *testing.T, path string, titles []string, rows [][]float64) {
	t.Helper()

	buf := make([]byte, recordOffset)

	for i, title := range titles {
		copy(buf[titleOffset+i*titleSize:], title)
	}

	for _, row := range rows {
		record := make([]byte, (1+len(row))*cellSize)
		binary.LittleEndian.PutUint64(record, math.Float64bits(float64(len(record))))

		for i, v := range row {
			binary.LittleEndian.PutUint64(record[(1+i)*cellSize:], math.Float64bits(v))
		}

		buf = append(buf, record...)
	}

	require.NoError(t, os.WriteFile(path, buf, 0o644))
}

type testEnv struct {
	model   Model
	bus     bus.Bus
	session *session.Session
	window  *plotdata.Window
	ranges  *timerange.Controller
	path    string
}

// testModel builds a model over an opened two-channel log file
func testModel(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.DefaultConfig()

	b := bus.New(cfg, nil)
	t.Cleanup(b.Close)

	log := logger.NewLoggerWithOutput(cfg, io.Discard)

	ranges := timerange.New(b, nil)
	window := plotdata.New(ranges, time.Second, nil)
	sess := session.NewSession(cfg, b, window, log)

	path := filepath.Join(t.TempDir(), "run.vcl")
	writeLogFile(t, path,
		[]string{"Time(secs)", "T1(K)", "P1(Bar)"},
		[][]float64{{0, 4.2, 1.0}, {50, 4.1, 1.1}, {100, 4.3, 1.2}},
	)

	require.NoError(t, sess.Open(context.Background(), path))

	m := NewModel(context.Background(), path, b, sess, window, ranges, monitor.NewMonitor(), log)

	return &testEnv{
		model:   m,
		bus:     b,
		session: sess,
		window:  window,
		ranges:  ranges,
		path:    path,
	}
}

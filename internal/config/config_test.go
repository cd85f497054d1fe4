package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withWorkDir runs a test inside a scratch working directory
func withWorkDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})

	return dir
}

func Test_Load_NoFile_Defaults(t *testing.T) {
	withWorkDir(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, ScaleLinear, cfg.Plot.Scale)
	assert.Equal(t, DefaultPollInterval, cfg.Watch.Poll)
	assert.Empty(t, cfg.ChannelOrder)
}

func Test_Load_File(t *testing.T) {
	withWorkDir(t)

	yaml := `
logging:
  level: debug
plot:
  scale: log
  rollInterval: 2s
watch:
  poll: 500ms
channels:
  T1(K):
    color: "#ff0000"
  P1(Bar):
    hidden: true
  T2(K): {}
`
	require.NoError(t, os.WriteFile("kelvin.yaml", []byte(yaml), 0o644))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ScaleLog, cfg.Plot.Scale)
	assert.Equal(t, 2*time.Second, cfg.Plot.RollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Poll)
	assert.Equal(t, []string{"T1(K)", "P1(Bar)", "T2(K)"}, cfg.ChannelOrder)
	assert.Equal(t, "#ff0000", cfg.ChannelColor("T1(K)", 0))
	assert.False(t, cfg.ChannelVisible("P1(Bar)"))
	assert.True(t, cfg.ChannelVisible("T2(K)"))
}

func Test_Load_BrokenFile(t *testing.T) {
	withWorkDir(t)

	require.NoError(t, os.WriteFile("kelvin.yaml", []byte("channels: [broken"), 0o644))

	_, err := Load()

	assert.Error(t, err)
}

func Test_Load_InvalidScale(t *testing.T) {
	withWorkDir(t)

	require.NoError(t, os.WriteFile("kelvin.yaml", []byte("plot:\n  scale: cubic\n"), 0o644))

	_, err := Load()

	assert.Error(t, err)
}

func Test_Load_EnvOverride(t *testing.T) {
	withWorkDir(t)
	t.Setenv("KELVIN_LOG_LEVEL", "trace")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Logging.Level)
}

func Test_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Watch.Poll = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Bus.Buffer = 0
	assert.Error(t, cfg.Validate())
}

func Test_ChannelColor_PaletteCycle(t *testing.T) {
	cfg := DefaultConfig()

	first := cfg.ChannelColor("T1(K)", 0)
	wrapped := cfg.ChannelColor("T1(K)", len(DefaultPalette))

	assert.Equal(t, first, wrapped)
}

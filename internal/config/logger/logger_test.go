package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kelvin/internal/config"
)

func Test_NewLogger(t *testing.T) {
	cfg := config.DefaultConfig()

	log := NewLogger(cfg)

	assert.NotNil(t, log)
}

func Test_Logger_WritesJSON(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = DebugLevel

	var buf bytes.Buffer

	log := NewLoggerWithOutput(cfg, &buf)
	log.Info().Str("path", "log.vcl").Msg("file loaded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "file loaded", entry["message"])
	assert.Equal(t, "log.vcl", entry["path"])
	assert.Equal(t, config.Version, entry["version"])
}

func Test_Logger_LevelFiltersOutput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = ErrorLevel

	var buf bytes.Buffer

	log := NewLoggerWithOutput(cfg, &buf)
	log.Debug().Msg("not written")
	log.Info().Msg("not written either")

	assert.Zero(t, buf.Len())
}

func Test_Logger_WithComponent(t *testing.T) {
	cfg := config.DefaultConfig()

	var buf bytes.Buffer

	log := NewLoggerWithOutput(cfg, &buf).WithComponent("SESSION")
	log.Info().Msg("ready")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "SESSION", entry["component"])
}

func Test_GetLogLevel_UnknownDefaultsToInfo(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "chatty"

	var buf bytes.Buffer

	log := NewLoggerWithOutput(cfg, &buf)
	log.Debug().Msg("filtered")

	assert.Zero(t, buf.Len())
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxevent"

	"kelvin/internal/config"
)

func Test_HasNoUIFlag(t *testing.T) {
	assert.True(t, hasNoUIFlag([]string{"run.vcl", "--no-ui"}))
	assert.False(t, hasNoUIFlag([]string{"run.vcl"}))
	assert.False(t, hasNoUIFlag(nil))
}

func Test_CreateFxLogger(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, fxevent.NopLogger, createFxLogger(cfg)())

	cfg.Logging.Level = "debug"
	assert.IsType(t, &fxevent.ConsoleLogger{}, createFxLogger(cfg)())
}

func Test_CreateApp(t *testing.T) {
	cfg := config.DefaultConfig()

	app := createApp(cfg, true)
	require.NotNil(t, app)
}

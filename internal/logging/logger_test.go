package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New(DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("default config works")
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "verbose"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestForLevel(t *testing.T) {
	log := ForLevel("debug", true)
	require.NotNil(t, log)
	log.Debug("development mode")

	// Invalid levels fall back to a usable no-op logger.
	log = ForLevel("nope", false)
	require.NotNil(t, log)
	log.Info("still usable")
}

func TestParseLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		_, err := parseLevel(level)
		assert.NoError(t, err, level)
	}
	_, err := parseLevel("loud")
	assert.Error(t, err)
}

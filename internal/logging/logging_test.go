package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := Setup("warn", &buf)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Contains(t, buf.String(), `"time"`)
}

func TestSetupEmptyLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := Setup("", &buf)
	require.NoError(t, err)

	log.Debug().Msg("debug")
	log.Info().Msg("info")
	assert.NotContains(t, buf.String(), `"debug"`)
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	_, err := Setup("loud", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log, err := Setup("debug", &buf)
	require.NoError(t, err)

	rec := Component(log, "recorder")
	rec.Debug().Msg("x")
	assert.Contains(t, buf.String(), `"component":"recorder"`)
}

package cmd

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("json at configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := newLogger(&buf, zerolog.WarnLevel, true)
		require.NoError(t, err)

		logger.Info().Msg("hidden")
		logger.Warn().Msg("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"message":"shown"`)
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		logLevel = "debug"
		t.Cleanup(func() { logLevel = "" })

		var buf bytes.Buffer
		logger, err := newLogger(&buf, zerolog.ErrorLevel, true)
		require.NoError(t, err)
		logger.Debug().Msg("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("bad flag", func(t *testing.T) {
		logLevel = "shout"
		t.Cleanup(func() { logLevel = "" })

		_, err := newLogger(&bytes.Buffer{}, zerolog.InfoLevel, false)
		assert.Error(t, err)
	})
}

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["render"])
	assert.True(t, names["archive"])
}

package config

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ResumeBot/model"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, k := range []string{EnvToken, EnvLogLevel, EnvLogFormat, EnvFirebaseKey, EnvFirebaseURL} {
		t.Setenv(k, env[k])
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setEnv(t, map[string]string{EnvToken: " 123:abc "})

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "123:abc", cfg.Token)
		assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
		assert.False(t, cfg.LogJSON)
		assert.Nil(t, cfg.Firebase)
	})

	t.Run("missing token", func(t *testing.T) {
		setEnv(t, nil)

		_, err := Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrMissingToken))
	})

	t.Run("logging options", func(t *testing.T) {
		setEnv(t, map[string]string{EnvToken: "t", EnvLogLevel: "DEBUG", EnvLogFormat: "json"})

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
		assert.True(t, cfg.LogJSON)
	})

	t.Run("bad log level", func(t *testing.T) {
		setEnv(t, map[string]string{EnvToken: "t", EnvLogLevel: "loud"})

		_, err := Load()
		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("bad log format", func(t *testing.T) {
		setEnv(t, map[string]string{EnvToken: "t", EnvLogFormat: "xml"})

		_, err := Load()
		assert.ErrorContains(t, err, EnvLogFormat)
	})

	t.Run("firebase pair", func(t *testing.T) {
		setEnv(t, map[string]string{
			EnvToken:       "t",
			EnvFirebaseKey: "/secrets/key.json",
			EnvFirebaseURL: "https://resumes.firebaseio.com",
		})

		cfg, err := Load()
		require.NoError(t, err)
		require.NotNil(t, cfg.Firebase)
		assert.Equal(t, Firebase{
			ServiceAccountKeyPath: "/secrets/key.json",
			DatabaseURL:           "https://resumes.firebaseio.com",
		}, *cfg.Firebase)
	})

	t.Run("firebase half configured", func(t *testing.T) {
		setEnv(t, map[string]string{EnvToken: "t", EnvFirebaseKey: "/secrets/key.json"})
		_, err := Load()
		assert.ErrorContains(t, err, EnvFirebaseURL)

		setEnv(t, map[string]string{EnvToken: "t", EnvFirebaseURL: "https://x.firebaseio.com"})
		_, err = Load()
		assert.ErrorContains(t, err, EnvFirebaseKey)
	})
}

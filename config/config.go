package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"ResumeBot/model"
)

const (
	EnvToken        = "TELEGRAM_TOKEN"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
	EnvFirebaseKey  = "FIREBASE_SERVICE_ACCOUNT_KEY_PATH"
	EnvFirebaseURL  = "FIREBASE_DATABASE_URL"
	defaultLogLevel = "info"
)

// Config holds everything the bot reads from the environment.
type Config struct {
	Token    string
	LogLevel zerolog.Level
	// LogJSON selects JSON lines instead of the console writer.
	LogJSON bool
	// Firebase is nil when the résumé archive is disabled.
	Firebase *Firebase
}

type Firebase struct {
	ServiceAccountKeyPath string
	DatabaseURL           string
}

// Load reads the configuration. The token is mandatory; the Firebase pair is
// optional but must be set together.
func Load() (Config, error) {
	var cfg Config

	cfg.Token = strings.TrimSpace(os.Getenv(EnvToken))
	if cfg.Token == "" {
		return Config{}, fmt.Errorf("%w: %s environment variable not set", model.ErrMissingToken, EnvToken)
	}

	level, err := ParseLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	switch format := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogFormat))); format {
	case "", "console":
	case "json":
		cfg.LogJSON = true
	default:
		return Config{}, fmt.Errorf("%s must be console or json, got %q", EnvLogFormat, format)
	}

	fb, err := LoadFirebase()
	if err != nil {
		return Config{}, err
	}
	cfg.Firebase = fb

	return cfg, nil
}

// LoadFirebase returns nil when neither Firebase variable is set.
func LoadFirebase() (*Firebase, error) {
	keyPath := os.Getenv(EnvFirebaseKey)
	dbURL := os.Getenv(EnvFirebaseURL)
	switch {
	case keyPath == "" && dbURL == "":
		return nil, nil
	case keyPath == "":
		return nil, fmt.Errorf("%s environment variable not set", EnvFirebaseKey)
	case dbURL == "":
		return nil, fmt.Errorf("%s environment variable not set", EnvFirebaseURL)
	}
	return &Firebase{ServiceAccountKeyPath: keyPath, DatabaseURL: dbURL}, nil
}

// ParseLevel accepts zerolog level names; empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = defaultLogLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

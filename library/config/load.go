// Package config loads runtime settings into the shared go-config store.
package config

import (
	"os"
	"path/filepath"
	"strings"

	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"github.com/joho/godotenv"

	"github.com/Laisky/video-search/library/log"
)

const (
	// DefaultAPIBaseURL is the compiled-in origin of the question-answering API.
	DefaultAPIBaseURL = "http://localhost:8000"

	// KeyAPIBaseURL is the settings key holding the API origin.
	KeyAPIBaseURL = "settings.api.base_url"
	// KeyAPITimeout is the settings key holding the optional per-request deadline.
	KeyAPITimeout = "settings.api.timeout"

	// EnvAPIBaseURL overrides the configured API origin.
	EnvAPIBaseURL = "VIDEO_SEARCH_API_BASE_URL"
	// EnvAPITimeout overrides the configured per-request deadline.
	EnvAPITimeout = "VIDEO_SEARCH_API_TIMEOUT"
)

// LoadFromFile loads cfgPath into the shared settings.
//
// A missing file is not an error, the compiled-in defaults are used instead.
func LoadFromFile(cfgPath string) error {
	if cfgPath == "" {
		log.Logger.Debug("no configuration file given, use defaults")
		return nil
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Logger.Debug("configuration file not found, use defaults",
			zap.String("config", cfgPath))
		return nil
	}

	gconfig.Shared.Set("cfg_dir", filepath.Dir(cfgPath))
	if err := gconfig.Shared.LoadFromFile(cfgPath); err != nil {
		return err
	}

	log.Logger.Info("load configuration",
		zap.String("config", cfgPath))
	return nil
}

// LoadEnv reads an optional .env file and applies environment overrides.
func LoadEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Logger.Debug("no .env file loaded", zap.Error(err))
	}

	if v := strings.TrimSpace(os.Getenv(EnvAPIBaseURL)); v != "" {
		gconfig.Shared.Set(KeyAPIBaseURL, v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvAPITimeout)); v != "" {
		gconfig.Shared.Set(KeyAPITimeout, v)
	}
}

// SetDefaults fills the settings that neither the file nor the environment provided.
func SetDefaults() {
	if strings.TrimSpace(gconfig.Shared.GetString(KeyAPIBaseURL)) == "" {
		gconfig.Shared.Set(KeyAPIBaseURL, DefaultAPIBaseURL)
	}
}

// APIBaseURL returns the configured API origin without a trailing slash.
func APIBaseURL() string {
	return strings.TrimRight(strings.TrimSpace(gconfig.Shared.GetString(KeyAPIBaseURL)), "/")
}

// APITimeout returns the raw per-request deadline setting, empty when unset.
func APITimeout() string {
	return strings.TrimSpace(gconfig.Shared.GetString(KeyAPITimeout))
}

package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appNameVar   = "APP_NAME"
	apiURLVar    = "GREENOS_API_URL"
	configDirVar = "GREENOS_CONFIG_DIR"
	logLevelVar  = "GREENOS_LOG_LEVEL"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "GreenOS")
}

// GetAPIBaseURL returns the backend origin without the /api/v1 prefix (e.g. "http://localhost:8000").
func (EnvVars) GetAPIBaseURL() string {
	return strings.TrimRight(GetEnv(apiURLVar, "http://localhost:8000"), "/")
}

// GetConfigDir returns the directory holding the per-origin credential files.
func (EnvVars) GetConfigDir() string {
	if dir := os.Getenv(configDirVar); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ".greenos"
	}
	return filepath.Join(base, "greenos")
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelVar, "info")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

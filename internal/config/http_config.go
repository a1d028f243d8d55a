package config

import (
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	timeoutVar         = "GREENOS_TIMEOUT"
	coalesceRefreshVar = "GREENOS_COALESCE_REFRESH"

	defaultRequestTimeout = 30 * time.Second
)

type HTTPConfig interface {
	GetRequestTimeout() time.Duration
	GetCoalesceRefresh() bool
}

type HTTP struct{}

var _ HTTPConfig = HTTP{}

func (HTTP) GetRequestTimeout() time.Duration {
	value := GetEnv(timeoutVar, "")
	if value == "" {
		return defaultRequestTimeout
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Warn().Str("value", value).Msg("Invalid request timeout, using default")
		return defaultRequestTimeout
	}
	return d
}

// GetCoalesceRefresh reports whether concurrent 401s share one refresh call.
// Off by default: every request refreshes on its own.
func (HTTP) GetCoalesceRefresh() bool {
	value := GetEnv(coalesceRefreshVar, "false")
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn().Str("value", value).Msg("Invalid coalesce refresh flag, using default")
		return false
	}
	return enabled
}

package config

import (
	"os"
	"strconv"
	"time"
)

const (
	EnvAPIBaseURL            = "SKYDESK_API_URL"
	EnvRequestTimeout        = "SKYDESK_REQUEST_TIMEOUT"
	EnvPollInterval          = "SKYDESK_POLL_INTERVAL"
	EnvMaintenanceFee        = "SKYDESK_MAINTENANCE_FEE"
	EnvTaxRate               = "SKYDESK_TAX_RATE"
	EnvSessionFile           = "SKYDESK_SESSION_FILE"
	EnvLogLevel              = "SKYDESK_LOG_LEVEL"
	EnvLogFormat             = "SKYDESK_LOG_FORMAT"
	EnvMaxConcurrentBookings = "SKYDESK_MAX_CONCURRENT_BOOKINGS"
)

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"skydesk/pkg/logger"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	PollInterval   time.Duration

	MaintenanceFee int
	TaxRate        float64

	SessionFile string

	MaxConcurrentBookings int

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	// Missing .env is fine, env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:     strings.TrimRight(getEnvStr(EnvAPIBaseURL, DefaultAPIBaseURL), "/"),
		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		PollInterval:   getEnvDuration(EnvPollInterval, DefaultPollInterval),

		MaintenanceFee: getEnvNum(EnvMaintenanceFee, DefaultMaintenanceFee),
		TaxRate:        getEnvFloat(EnvTaxRate, DefaultTaxRate),

		SessionFile: getEnvStr(EnvSessionFile, defaultSessionFile()),

		MaxConcurrentBookings: getEnvNum(EnvMaxConcurrentBookings, DefaultMaxConcurrentBookings),

		Log: logger.New(logger.Config{
			Level:   getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:  getEnvStr(EnvLogFormat, DefaultLogFormat),
			Service: serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	return cfg
}

func (cfg *Config) Validate() error {
	var problems []string

	if cfg.APIBaseURL == "" {
		problems = append(problems, "APIBaseURL cannot be empty")
	} else if parsed, err := url.Parse(cfg.APIBaseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		problems = append(problems, fmt.Sprintf("APIBaseURL must be an absolute URL, got: %s", cfg.APIBaseURL))
	}

	if cfg.RequestTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.PollInterval <= 0 {
		problems = append(problems, fmt.Sprintf("PollInterval must be positive, got: %s", cfg.PollInterval))
	}

	if cfg.MaintenanceFee < 0 {
		problems = append(problems, fmt.Sprintf("MaintenanceFee cannot be negative, got: %d", cfg.MaintenanceFee))
	}
	if cfg.TaxRate < 0 || cfg.TaxRate >= 1 {
		problems = append(problems, fmt.Sprintf("TaxRate must be in [0, 1), got: %g", cfg.TaxRate))
	}

	if cfg.SessionFile == "" {
		problems = append(problems, "SessionFile cannot be empty")
	}

	if cfg.MaxConcurrentBookings <= 0 {
		problems = append(problems, fmt.Sprintf("MaxConcurrentBookings must be positive, got: %d", cfg.MaxConcurrentBookings))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded",
		"api_base_url", cfg.APIBaseURL,
		"request_timeout", cfg.RequestTimeout,
		"poll_interval", cfg.PollInterval,
		"maintenance_fee", cfg.MaintenanceFee,
		"tax_rate", cfg.TaxRate,
		"session_file", cfg.SessionFile,
		"max_concurrent_bookings", cfg.MaxConcurrentBookings,
	)
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "skydesk", "session.json")
}

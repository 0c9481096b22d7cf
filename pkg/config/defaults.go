package config

import "time"

const (
	DefaultAPIBaseURL     = "http://localhost:8000"
	DefaultRequestTimeout = 10 * time.Second
	DefaultPollInterval   = 30 * time.Second

	// Flat per-transaction fee, waived when nothing is selected.
	DefaultMaintenanceFee = 199
	// GST applied on the subtotal only.
	DefaultTaxRate = 0.18

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultMaxConcurrentBookings = 8
)

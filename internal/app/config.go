package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	// Server
	Addr string

	// Upstream wiki
	BaseURL         string
	UserAgent       string
	FetchTimeout    time.Duration
	RedirectMaxHops int

	// Behavior
	Verbose bool
}

// Defaults applied by the CLI before any other layer.
const (
	DefaultAddr            = ":8080"
	DefaultRedirectMaxHops = 5
)

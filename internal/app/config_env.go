package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Addr == "" {
		// SCP_ADDR wins over the platform-style PORT
		if v := strings.TrimSpace(os.Getenv("SCP_ADDR")); v != "" {
			cfg.Addr = v
		} else if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
			cfg.Addr = ":" + p
		}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = strings.TrimSpace(os.Getenv("SCP_BASE_URL"))
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("SCP_USER_AGENT")
	}

	if cfg.FetchTimeout == 0 {
		if s := strings.TrimSpace(os.Getenv("SCP_FETCH_TIMEOUT")); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.FetchTimeout = d
			}
		}
	}
	if cfg.RedirectMaxHops == 0 {
		if s := strings.TrimSpace(os.Getenv("SCP_REDIRECT_MAX_HOPS")); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				cfg.RedirectMaxHops = n
			}
		}
	}

	if !cfg.Verbose {
		switch strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))) {
		case "1", "true", "yes", "on":
			cfg.Verbose = true
		}
	}
}

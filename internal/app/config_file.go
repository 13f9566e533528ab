package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/scpinfo/internal/scp"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Server struct {
		Addr string `yaml:"addr" json:"addr"`
	} `yaml:"server" json:"server"`

	Wiki struct {
		BaseURL         string   `yaml:"baseURL" json:"baseURL"`
		UserAgent       string   `yaml:"userAgent" json:"userAgent"`
		Timeout         Duration `yaml:"timeout" json:"timeout"`
		RedirectMaxHops int      `yaml:"redirectMaxHops" json:"redirectMaxHops"`
	} `yaml:"wiki" json:"wiki"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// Duration accepts Go duration strings ("15s") in YAML and JSON.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.parse(node.Value)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset. Flags and env should already have been applied.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.Addr == "" && fc.Server.Addr != "" {
		cfg.Addr = fc.Server.Addr
	}
	if cfg.BaseURL == "" && fc.Wiki.BaseURL != "" {
		cfg.BaseURL = fc.Wiki.BaseURL
	}
	if cfg.UserAgent == "" && fc.Wiki.UserAgent != "" {
		cfg.UserAgent = fc.Wiki.UserAgent
	}
	if cfg.FetchTimeout == 0 && fc.Wiki.Timeout > 0 {
		cfg.FetchTimeout = time.Duration(fc.Wiki.Timeout)
	}
	if cfg.RedirectMaxHops == 0 && fc.Wiki.RedirectMaxHops > 0 {
		cfg.RedirectMaxHops = fc.Wiki.RedirectMaxHops
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ApplyDefaults fills whatever no layer has set.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = scp.DefaultBaseURL
	}
	if cfg.RedirectMaxHops == 0 {
		cfg.RedirectMaxHops = DefaultRedirectMaxHops
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return errors.New("config: wiki base URL is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("config: wiki base URL: %w", err)
	}
	if s := strings.ToLower(u.Scheme); (s != "http" && s != "https") || u.Host == "" {
		return fmt.Errorf("config: wiki base URL must be an absolute http(s) URL, got %q", cfg.BaseURL)
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return errors.New("config: listen address is required")
	}
	if cfg.FetchTimeout < 0 || cfg.RedirectMaxHops < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	return nil
}

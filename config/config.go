package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/cloudywalnut/ai-production-scheduler/core/metrics"
	"github.com/cloudywalnut/ai-production-scheduler/core/scheduler"
	"github.com/cloudywalnut/ai-production-scheduler/infra/extract"
	"github.com/cloudywalnut/ai-production-scheduler/infra/splitter"
)

type Config struct {
	Extractor extract.Config   `json:"extractor"`
	Splitter  splitter.Config  `json:"splitter"`
	Scheduler scheduler.Config `json:"scheduler"`
	Server    ServerConfig     `json:"server"`
	Metrics   metrics.Config   `json:"metrics"`
	Logging   LoggingConfig    `json:"logging"`
}

// Load reads the configuration file, applies PS_ environment overrides
// and validates each section. Scheduler defaults are applied before the
// file is parsed so an explicit zero budget is rejected rather than
// silently replaced.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("PS_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ps_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	cfg := Config{Scheduler: scheduler.DefaultConfig()}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Extractor.SetDefaults()
	cfg.Splitter.SetDefaults()
	cfg.Server.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Scheduler.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Splitter.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ServerConfig defines the API server settings.
type ServerConfig struct {
	// Address is the listen address of the HTTP API.
	Address string `json:"address"`
	// MaxBodyMB caps the accepted document upload size in megabytes.
	MaxBodyMB int `json:"max_body_mb"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.MaxBodyMB <= 0 {
		c.MaxBodyMB = 32
	}
}

// Package config holds the service configuration: file paths for the
// template and tool scripts, server settings, and the tunable keyword
// and template-pool tables. Configuration is TOML; every field has a
// built-in default so an empty file (or no file) yields a runnable setup.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"deckglow/classify"
	"deckglow/model"
	"deckglow/template"
)

// Config is the full service configuration.
type Config struct {
	Server   Server              `toml:"server"`
	Paths    Paths               `toml:"paths"`
	Tools    ToolSettings        `toml:"tools"`
	Keywords map[string][]string `toml:"keywords"`
	Pools    map[string][]int    `toml:"pools"`
}

// Server holds the HTTP listener settings.
type Server struct {
	Addr string `toml:"addr"`
}

// Paths locates the template document, the scripts directory, and the
// working directory for per-request scratch space.
type Paths struct {
	Template string `toml:"template"`
	Scripts  string `toml:"scripts"`
	Temp     string `toml:"temp"`
}

// ToolSettings controls how the external scripts are invoked.
type ToolSettings struct {
	Python         string `toml:"python"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{Addr: ":8001"},
		Paths: Paths{
			Template: "assets/template.pptx",
			Scripts:  "scripts",
			Temp:     os.TempDir(),
		},
		Tools: ToolSettings{
			Python:         "python",
			TimeoutSeconds: 60,
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field-level constraints. Path existence is checked at
// pipeline construction, not here, so a config can be written before its
// assets.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Tools.TimeoutSeconds <= 0 {
		return fmt.Errorf("tools.timeout_seconds must be positive, got %d", c.Tools.TimeoutSeconds)
	}
	if c.Paths.Template == "" {
		return fmt.Errorf("paths.template must not be empty")
	}
	if c.Paths.Scripts == "" {
		return fmt.Errorf("paths.scripts must not be empty")
	}
	for label, pool := range c.Pools {
		if !model.SlideType(label).Valid() {
			return fmt.Errorf("pools: unknown slide type %q", label)
		}
		if len(pool) == 0 {
			return fmt.Errorf("pools.%s must not be empty", label)
		}
		for _, idx := range pool {
			if idx < 0 {
				return fmt.Errorf("pools.%s: negative template index %d", label, idx)
			}
		}
	}
	return nil
}

// ToolTimeout returns the per-invocation timeout as a duration.
func (c *Config) ToolTimeout() time.Duration {
	return time.Duration(c.Tools.TimeoutSeconds) * time.Second
}

// ClassifierKeywords converts the configured keyword tables. Concepts
// not present fall back to the defaults when merged by the classifier.
func (c *Config) ClassifierKeywords() classify.Keywords {
	if len(c.Keywords) == 0 {
		return nil
	}
	k := make(classify.Keywords, len(c.Keywords))
	for concept, words := range c.Keywords {
		k[classify.Concept(concept)] = words
	}
	return k
}

// SelectorPools converts the configured pools, overlaying them on the
// default catalog. Labels not configured keep their defaults.
func (c *Config) SelectorPools() template.Pools {
	pools := template.DefaultPools()
	for label, pool := range c.Pools {
		pools[model.SlideType(label)] = pool
	}
	return pools
}

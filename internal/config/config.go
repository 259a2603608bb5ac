// Package config loads the pokerhint HCL configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is where the CLI looks for configuration.
const DefaultPath = "pokerhint.hcl"

// Model names understood by the prediction context.
const (
	ModelHinted   = "hinted"
	ModelUnhinted = "unhinted"
)

// Config represents the complete configuration
type Config struct {
	Server *ServerSettings `hcl:"server,block"`
	Batch  *BatchSettings  `hcl:"batch,block"`
	Models []ModelConfig   `hcl:"model,block"`
}

// ServerSettings configures the evaluation service and logging.
type ServerSettings struct {
	Address     string `hcl:"address,optional"`
	Port        int    `hcl:"port,optional"`
	IdleTimeout *int   `hcl:"idle_timeout,optional"` // seconds, 0 disables
	LogLevel    string `hcl:"log_level,optional"`
}

// BatchSettings configures concurrent classification.
type BatchSettings struct {
	Workers int `hcl:"workers,optional"`
}

// ModelConfig points at a fitted model coefficient file.
type ModelConfig struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Server.Address == "" {
		c.Server.Address = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8088
	}
	if c.Server.IdleTimeout == nil {
		idle := 120
		c.Server.IdleTimeout = &idle
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}

	if c.Batch == nil {
		c.Batch = &BatchSettings{}
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = 8
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if *c.Server.IdleTimeout < 0 {
		return fmt.Errorf("idle timeout must not be negative")
	}
	if _, err := log.ParseLevel(c.Server.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.Server.LogLevel)
	}
	if c.Batch.Workers < 1 || c.Batch.Workers > 256 {
		return fmt.Errorf("batch workers must be between 1 and 256")
	}

	seen := map[string]bool{}
	for _, m := range c.Models {
		if m.Name != ModelHinted && m.Name != ModelUnhinted {
			return fmt.Errorf("model %s: name must be %q or %q", m.Name, ModelHinted, ModelUnhinted)
		}
		if seen[m.Name] {
			return fmt.Errorf("model %s: declared twice", m.Name)
		}
		seen[m.Name] = true
		if m.Path == "" {
			return fmt.Errorf("model %s: path is required", m.Name)
		}
	}
	return nil
}

// ServerAddress returns the listen address
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// IdleTimeout returns the idle connection timeout. Zero means connections
// are never closed for inactivity.
func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(*c.Server.IdleTimeout) * time.Second
}

// Model returns the named model configuration, or nil.
func (c *Config) Model(name string) *ModelConfig {
	for i := range c.Models {
		if c.Models[i].Name == name {
			return &c.Models[i]
		}
	}
	return nil
}

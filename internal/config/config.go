package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/restlight-dev/restlight/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "restlight.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"
)

// Config represents the complete restlight.json configuration.
type Config struct {
	// Name is the service name, used in logs.
	Name string `json:"name,omitempty"`

	// Host is the listen host.
	Host string `json:"host,omitempty"`

	// Port is the listen port.
	Port int `json:"port,omitempty"`

	// Pretty enables pretty-printed response bodies.
	Pretty bool `json:"pretty,omitempty"`

	// Metrics contains Prometheus exposition configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// path is where the config was loaded from.
	path string
}

// MetricsConfig configures Prometheus exposition.
type MetricsConfig struct {
	// Enabled turns the /metrics endpoint on.
	Enabled bool `json:"enabled,omitempty"`

	// Path is the exposition path (default "/metrics").
	Path string `json:"path,omitempty"`
}

// New creates a config with defaults applied.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads restlight.json from the given directory. A missing file
// is not an error; defaults are returned.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a config from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E001").Wrap(err)
	}

	c := &Config{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, errors.New("E002").Wrap(err)
	}

	c.path = path
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes the config back to the path it was loaded from.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.Newf(errors.CategoryConfig, "config has no path; use SaveTo")
	}
	return c.SaveTo(c.path)
}

// SaveTo writes the config as indented JSON to the given path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	c.path = path
	return nil
}

// Path returns where the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// Address returns the host:port listen address.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks the config for out-of-range values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("E003").WithDetail(fmt.Sprintf("port %d is out of range", c.Port))
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "restlight"
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

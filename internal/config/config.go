// Package config loads the live settings file and environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. Its absence is not an error.
const DefaultPath = "live.yaml"

// Environment overrides, applied after the file.
const (
	EnvVerbosity     = "LIVE_VERBOSITY"
	EnvFailurePolicy = "LIVE_FAILURE_POLICY"
	EnvColor         = "LIVE_COLOR"
	EnvDumpDocEnv    = "LIVE_DUMP_DOC_ENV"
)

// Diagnostic controls the post-failure configuration dump.
type Diagnostic struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	EnvVar   string `yaml:"env_var" json:"env_var"`
	Markdown bool   `yaml:"markdown" json:"markdown"`
}

// Redis configures the tail source.
type Redis struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
	Key      string `yaml:"key" json:"key"`
}

// Serve configures the ingestion server.
type Serve struct {
	Port string `yaml:"port" json:"port"`
}

// Config is the merged result of file, environment and flags.
type Config struct {
	Verbosity      int               `yaml:"verbosity" json:"verbosity"`
	FailurePolicy  string            `yaml:"failure_policy" json:"failure_policy"`
	Color          string            `yaml:"color" json:"color"`
	InternalPrefix string            `yaml:"internal_prefix" json:"internal_prefix"`
	RedactKeys     []string          `yaml:"redact_keys" json:"redact_keys"`
	LogLevel       string            `yaml:"log_level" json:"log_level"`
	Palette        map[string]string `yaml:"palette" json:"palette"`
	Diagnostic     Diagnostic        `yaml:"diagnostic" json:"diagnostic"`
	Redis          Redis             `yaml:"redis" json:"redis"`
	Serve          Serve             `yaml:"serve" json:"serve"`
}

// Default returns the settings used when nothing is configured. The failure
// policy stays empty; callback.New rejects that until one is chosen.
func Default() *Config {
	return &Config{
		Color:    "auto",
		LogLevel: "warn",
		Diagnostic: Diagnostic{
			Enabled: true,
		},
		Redis: Redis{
			Addr: "localhost:6379",
		},
		Serve: Serve{
			Port: "8080",
		},
	}
}

// Load reads path from fs on top of Default. An empty path means DefaultPath,
// which may be missing; an explicit path must exist.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// ApplyEnv overlays the LIVE_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvVerbosity); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvVerbosity, v, err)
		}
		c.Verbosity = n
	}
	if v, ok := lookup(EnvFailurePolicy); ok && v != "" {
		c.FailurePolicy = v
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		c.Color = v
	}
	if v, ok := lookup(EnvDumpDocEnv); ok && v != "" {
		c.Diagnostic.EnvVar = v
	}
	return nil
}

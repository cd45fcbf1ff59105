// Package config loads the planner configuration from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"financial_planner/pkg/core/agent"
	"financial_planner/pkg/core/store"

	"gopkg.in/yaml.v2"
)

// DefaultPath is where the binaries look for the config file.
const DefaultPath = "config/planner.yaml"

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      store.Config     `yaml:"store"`
	Validation ValidationConfig `yaml:"validation"`
	Agents     agent.Config     `yaml:"agents"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type ValidationConfig struct {
	// Strict rejects assumption sets that fail validation (HTTP 422).
	Strict bool `yaml:"strict"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
		Store: store.Config{
			Driver:     store.DriverSQLite,
			SQLitePath: ".data/planner.db",
			FileDir:    ".data/inputs",
			ListLimit:  store.DefaultListLimit,
		},
		Agents: agent.Config{ActiveProvider: agent.ProviderGemini},
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		c.Server.CORSOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.Server.CORSOrigins = append(c.Server.CORSOrigins, o)
			}
		}
	}
	if v := os.Getenv("STORE_DRIVER"); v != "" {
		c.Store.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Store.DatabaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.Store.SQLitePath = v
	}
	if v := os.Getenv("FILE_STORE_DIR"); v != "" {
		c.Store.FileDir = v
	}
	if v := os.Getenv("STRICT_VALIDATION"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid STRICT_VALIDATION %q: %w", v, err)
		}
		c.Validation.Strict = strict
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.Agents.ActiveProvider = v
	}
	return nil
}

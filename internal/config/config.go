// Package config loads service configuration from an optional TOML file
// overlaid with environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/alexanderramin/eventflow/internal/llm"
)

// DefaultPath is probed when no --config flag is given; a missing file
// there is not an error.
const DefaultPath = "eventflow.toml"

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Config is the full service configuration. Provider settings follow the
// same precedence as the rest: defaults, then file, then environment.
type Config struct {
	Server   ServerConfig
	Provider llm.Config
}

// fileConfig is the TOML file shape.
type fileConfig struct {
	Server ServerConfig     `toml:"server"`
	Gemini geminiFileConfig `toml:"gemini"`
}

type geminiFileConfig struct {
	Endpoint  string `toml:"endpoint"`
	Model     string `toml:"model"`
	TimeoutMs int    `toml:"timeout-ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: "127.0.0.1:8000"},
		Provider: llm.DefaultConfig(),
	}
}

// Load builds the configuration. path selects an explicit TOML file; when
// empty, DefaultPath is probed and silently skipped if absent. Environment
// variables win over file values. The provider API key is env-only — it
// never lives in a config file.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("loading config %s: %w", path, err)
		}
		if explicit {
			return Config{}, fmt.Errorf("loading config %s: %w", path, err)
		}
	} else {
		applyFile(&cfg, fc)
	}

	cfg.Provider = llm.ApplyEnv(cfg.Provider)
	if v := os.Getenv("EVENTFLOW_ADDR"); v != "" {
		cfg.Server.Addr = v
	}

	return cfg, nil
}

func applyFile(cfg *Config, fc fileConfig) {
	if fc.Server.Addr != "" {
		cfg.Server.Addr = fc.Server.Addr
	}
	if fc.Gemini.Endpoint != "" {
		cfg.Provider.Endpoint = fc.Gemini.Endpoint
	}
	if fc.Gemini.Model != "" {
		cfg.Provider.Model = fc.Gemini.Model
	}
	if fc.Gemini.TimeoutMs > 0 {
		cfg.Provider.TimeoutMs = fc.Gemini.TimeoutMs
	}
}

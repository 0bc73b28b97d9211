// Package config loads the web server configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"arithmo/sequence"
)

// Config is the top-level server configuration.
type Config struct {
	Addr string     `yaml:"addr"`
	Form FormConfig `yaml:"form"`
}

// FormConfig holds the values the input form is pre-filled with.
type FormConfig struct {
	FirstTerm        float64 `yaml:"first_term"`
	CommonDifference float64 `yaml:"common_difference"`
	NumTerms         int     `yaml:"num_terms"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr: ":8080",
		Form: FormConfig{FirstTerm: 1, CommonDifference: 1, NumTerms: 10},
	}
}

// Load reads a YAML file and returns a Config. Environment variables
// referenced as ${VAR} or $VAR are expanded before parsing. Fields absent
// from the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration before the server starts. The form
// defaults must themselves be a generatable request.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: addr is required")
	}
	if err := sequence.Validate(sequence.Request{NumTerms: c.Form.NumTerms}); err != nil {
		return fmt.Errorf("config: form.num_terms: %w", err)
	}
	return nil
}

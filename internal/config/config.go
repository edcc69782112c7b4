// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/mia-platform/pagelog/internal/pagelog"
)

var (
	// ErrEnvVariablesNotValid reports environment variables that cannot be parsed or are out of range.
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
	// ErrParsing reports failures that occur while decoding a configuration file.
	ErrParsing = errors.New("error parsing")
	// ErrNotValid reports a configuration with inconsistent values.
	ErrNotValid = errors.New("configuration not valid")
)

// Config holds the sink configuration of a pagelog Logger and of its display element.
type Config struct {
	TargetID        string `env:"PAGELOG_TARGET_ID"`
	ConsoleEnabled  bool   `env:"PAGELOG_CONSOLE_ENABLED" envDefault:"true"`
	TextareaEnabled bool   `env:"PAGELOG_TEXTAREA_ENABLED" envDefault:"true"`

	Bootstrap  bool   `env:"PAGELOG_BOOTSTRAP" envDefault:"false"`
	Rows       int    `env:"PAGELOG_ROWS" envDefault:"20"`
	Cols       int    `env:"PAGELOG_COLS" envDefault:"80"`
	Attributes string `env:"PAGELOG_ATTRIBUTES"`
}

// fileConfig mirrors Config for YAML files; nil fields leave the current value untouched.
type fileConfig struct {
	TargetID        *string `yaml:"targetId"`
	ConsoleEnabled  *bool   `yaml:"console"`
	TextareaEnabled *bool   `yaml:"textarea"`
	Bootstrap       *bool   `yaml:"bootstrap"`
	Rows            *int    `yaml:"rows"`
	Cols            *int    `yaml:"cols"`
	Attributes      *string `yaml:"attributes"`
}

// Load reads the configuration from the environment only.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile reads the configuration from the environment and then applies the
// values found in the YAML file at path. An empty path skips the file.
func LoadWithFile(path string) (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
		defer file.Close()

		if err := cfg.Merge(file); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Merge overrides c with every field set in the YAML document read from r.
func (c *Config) Merge(r io.Reader) error {
	var file fileConfig
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrParsing, err.Error())
	}

	if file.TargetID != nil {
		c.TargetID = *file.TargetID
	}
	if file.ConsoleEnabled != nil {
		c.ConsoleEnabled = *file.ConsoleEnabled
	}
	if file.TextareaEnabled != nil {
		c.TextareaEnabled = *file.TextareaEnabled
	}
	if file.Bootstrap != nil {
		c.Bootstrap = *file.Bootstrap
	}
	if file.Rows != nil {
		c.Rows = *file.Rows
	}
	if file.Cols != nil {
		c.Cols = *file.Cols
	}
	if file.Attributes != nil {
		c.Attributes = *file.Attributes
	}

	return nil
}

// Validate reports the inconsistent values of c.
func (c *Config) Validate() error {
	configErrors := make([]string, 0)

	if c.Bootstrap {
		if c.Rows < 1 {
			configErrors = append(configErrors, "rows must be at least 1")
		}
		if c.Cols < 1 {
			configErrors = append(configErrors, "cols must be at least 1")
		}
	}

	if len(configErrors) > 0 {
		return fmt.Errorf("%w: %s", ErrNotValid, strings.Join(configErrors, ", "))
	}
	return nil
}

// ElementID returns the id of the display element, falling back to the default one
// when bootstrapping without an explicit id.
func (c *Config) ElementID() string {
	if c.TargetID == "" && c.Bootstrap {
		return pagelog.DefaultElementID
	}
	return c.TargetID
}

// NewLogger builds a Logger from c, bootstrapping its display element when requested.
func (c *Config) NewLogger(document pagelog.Document, console pagelog.Console) *pagelog.Logger {
	log := pagelog.New(document, console,
		pagelog.WithTargetElementID(c.TargetID),
		pagelog.WithConsoleEnabled(c.ConsoleEnabled),
		pagelog.WithTextRegionEnabled(c.TextareaEnabled),
	)

	if c.Bootstrap {
		log.BootstrapDisplayElement(c.ElementID(), c.Rows, c.Cols, c.Attributes)
	}

	return log
}

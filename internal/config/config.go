// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config implements loading jyututil configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv is the environment variable holding the configuration file path.
const PathEnv = "JYUT_CONFIG"

// ErrInvalid indicates an invalid configuration value.
var ErrInvalid = errors.New("invalid configuration")

// Config is the jyututil configuration.
type Config struct {
	// DataDirs are searched for packed files when no explicit path is given.
	DataDirs []string `yaml:"data_dirs" env:"JYUT_DATA_DIR"`

	// PronMap is the path to the packed pronunciation table.
	PronMap string `yaml:"pron_map" env:"JYUT_PRON_MAP"`

	// Dict is the path to the packed character dictionary.
	Dict string `yaml:"dict" env:"JYUT_DICT"`

	// Encoding is the text encoding of the packed files.
	Encoding string `yaml:"encoding" env:"JYUT_ENCODING"`

	// Strict rejects malformed packed files.
	Strict bool `yaml:"strict" env:"JYUT_STRICT" env-default:"false"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" env:"JYUT_LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from a YAML file and environment variables.
// Environment variables take priority over the file. The file path is path
// if not empty and the value of PathEnv otherwise. Without a file only the
// environment and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv(PathEnv)
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if _, err := cfg.Level(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Level returns the configured log level. An empty level is info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return level, nil
}

// SPDX-License-Identifier: MIT
// File: loader.go
// Role: Layered loading: defaults, then YAML file, then MGRAPH_* environment.
//       Flags are applied by the caller before Validate.

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MGRAPH_"

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty or the file does not exist) and the environment. The result
// is not validated; call Validate after applying flags.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile overlays the YAML document onto cfg; absent keys keep defaults.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(ErrInvalid, "parse config %s: %v", path, err)
	}

	return nil
}

// applyEnv overlays MGRAPH_* variables.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"LOG_LEVEL":   &cfg.Log.Level,
		"LOG_FORMAT":  &cfg.Log.Format,
		"LOG_FILE":    &cfg.Log.File,
		"PROMPT":      &cfg.Shell.Prompt,
		"GLOBAL_NAME": &cfg.Shell.GlobalName,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup(EnvPrefix + "PLAIN"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%sPLAIN=%q", EnvPrefix, v)
		}
		cfg.Shell.Plain = b
	}
	if v, ok := lookup(EnvPrefix + "MAX_PATHS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%sMAX_PATHS=%q", EnvPrefix, v)
		}
		cfg.Shell.MaxPaths = n
	}

	return nil
}

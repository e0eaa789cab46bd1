// SPDX-License-Identifier: MIT
// File: config.go
// Role: Configuration schema and defaults for the mgraph binary.

package config

// Config is the root configuration.
type Config struct {
	Log   LogConfig   `yaml:"log" validate:"required"`
	Shell ShellConfig `yaml:"shell" validate:"required"`
}

// LogConfig drives internal/logging.New.
type LogConfig struct {
	// Level is debug, info, warn, error or off.
	Level string `yaml:"level" validate:"oneof=debug info warn error off"`

	// Format is json (production encoder) or console (development encoder).
	Format string `yaml:"format" validate:"oneof=json console"`

	// File receives log output; empty means stderr.
	File string `yaml:"file"`
}

// ShellConfig drives the command shell.
type ShellConfig struct {
	// Prompt is the REPL prompt prefix; the current view is appended.
	Prompt string `yaml:"prompt" validate:"required"`

	// Plain disables styled output.
	Plain bool `yaml:"plain"`

	// MaxPaths caps the paths listed by allp; 0 lists all.
	MaxPaths int `yaml:"max_paths" validate:"min=0"`

	// GlobalName is the reserved name of the global graph.
	GlobalName string `yaml:"global_name" validate:"required,token"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "off",
			Format: "console",
		},
		Shell: ShellConfig{
			Prompt:     "mgraph",
			MaxPaths:   0,
			GlobalName: "_all_",
		},
	}
}

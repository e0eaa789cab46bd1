// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the shell and the CLI.
// The engine packages never log.
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/mgraph/internal/config"
)

// LevelOff disables logging entirely.
const LevelOff = "off"

// New returns a logger for cfg: the production (JSON) or development
// (console) preset at cfg.Level, writing to cfg.File or stderr. Level "off"
// yields zap.NewNop().
func New(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.Level == LevelOff {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", cfg.Level)
	}

	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil
	zc.DisableStacktrace = true
	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	return logger.Named("mgraph"), nil
}

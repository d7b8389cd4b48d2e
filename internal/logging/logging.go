// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zap logger used by the CLI.
package logging

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/biogenerator/pkg/types"
)

// New returns a SugaredLogger for cfg. JSON output uses the zap
// production encoder; otherwise a console encoder writes to stderr.
func New(cfg types.LogConfig) (*zap.SugaredLogger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if cfg.JSON {
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		zc.OutputPaths = []string{"stderr"}
		logger, err := zc.Build()
		if err != nil {
			return nil, errors.Wrap(err, "building JSON logger")
		}
		return logger.Sugar(), nil
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(os.Stderr), level)
	return zap.New(core).Sugar(), nil
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, errors.WithHint(
			errors.Newf("unknown log level %q", name),
			"use debug, info, warn or error")
	}
	return level, nil
}

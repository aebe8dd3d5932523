// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chartlog holds the logger shared by chartcore packages.
//
// chartcore only logs at debug and trace level: recomputed ranges,
// rebuilt color tables, loaded configuration. Nothing is logged for
// expected numeric states such as NaN data. The logger is configured
// from the environment on first use:
//
//	CHARTCORE_LOG_LEVEL=trace|debug|info|warn|error (default warn)
//	CHARTCORE_LOG_FORMAT=text|json (default text)
package chartlog

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Options controls logger initialization.
type Options struct {
	Level  string
	Format string
	Out    io.Writer
}

// FromEnv returns Options read from the environment.
func FromEnv() Options {
	return Options{
		Level:  os.Getenv("CHARTCORE_LOG_LEVEL"),
		Format: os.Getenv("CHARTCORE_LOG_FORMAT"),
	}
}

var (
	mu     sync.Mutex
	logger *logrus.Logger
)

// New returns a logger configured by opts.
func New(opts Options) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if opts.Out != nil {
		l.SetOutput(opts.Out)
	}
	lvl, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		lvl = logrus.WarnLevel
	}
	l.SetLevel(lvl)
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return l
}

// L returns the shared logger, initializing it from the environment
// if Set has not been called.
func L() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = New(FromEnv())
	}
	return logger
}

// Set replaces the shared logger. Passing nil restores the
// environment-configured default on the next call to L.
func Set(l *logrus.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// For returns an entry tagged with the emitting component.
func For(component string) *logrus.Entry {
	return L().WithField("component", component)
}

// Enabled reports whether the package logger emits entries at level.
// Hot paths check it before building fields.
func Enabled(level logrus.Level) bool {
	return L().IsLevelEnabled(level)
}

package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment and diagnostics.
type Environment struct {
	Now     func() time.Time
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Environ map[string]string // Process environment, read for FONEMA_* overrides
	Logger  *slog.Logger      // Debug diagnostics, discarded unless --verbose
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: env.ToMap(os.Environ()),
		Logger:  newLogger(os.Stderr, false),
	}
}

// logger returns the environment logger, discarding when unset.
func (e *Environment) logger() *slog.Logger {
	if e.Logger == nil {
		return newLogger(nil, false)
	}
	return e.Logger
}

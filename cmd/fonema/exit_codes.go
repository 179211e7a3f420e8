package main

import (
	"errors"
	"os"

	fonema "github.com/alnah/go-fonema"
	"github.com/alnah/go-fonema/internal/config"
)

// Exit codes for the fonema CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // All inputs cleaned
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, arguments or config
	ExitIO       = 3 // File not found, permission denied, write failure
	ExitCleaning = 4 // A text was rejected by the cleaning pipeline
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Cleaning errors (exit 4)
	var tce *fonema.TextCleaningError
	if errors.As(err, &tce) {
		return ExitCleaning
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEnvParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidNumber) {
		return ExitUsage
	}

	return ExitGeneral
}

package main

// Notes:
// - exitCodeFor: we test every sentinel the CLI and config packages return,
//   plus wrapped errors to verify the errors.Is/errors.As chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	fonema "github.com/alnah/go-fonema"
	"github.com/alnah/go-fonema/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	cleaningErr := &fonema.TextCleaningError{
		Message: "date conversion failed: boom",
		Code:    fonema.CodeDateConversion,
		Stage:   fonema.StageNormalization,
	}

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Cleaning errors (exit 4)
		{"cleaning error", cleaningErr, ExitCleaning},
		{"cleaning sentinel", fonema.ErrNumberConversion, ExitCleaning},
		{"wrapped cleaning error", fmt.Errorf("1 of 3 file(s) failed: %w", cleaningErr), ExitCleaning},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"create output dir", ErrCreateOutputDir, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"no files", ErrNoFiles, ExitIO},
		{"wrapped file not exist", fmt.Errorf("discovering files: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"env parse", config.ErrEnvParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"usage", ErrUsage, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid worker count", ErrInvalidWorkerCount, ExitUsage},
		{"invalid number", ErrInvalidNumber, ExitUsage},
		{"wrapped config error", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("something else"), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	codes := map[string]int{"ExitIO": ExitIO, "ExitCleaning": ExitCleaning}
	seen := map[int]bool{ExitSuccess: true, ExitGeneral: true, ExitUsage: true}
	for name, code := range codes {
		if code >= 126 {
			t.Errorf("%s = %d, want < 126", name, code)
		}
		if seen[code] {
			t.Errorf("%s = %d duplicates another exit code", name, code)
		}
		seen[code] = true
	}
}

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alnah/go-fonema/internal/config"
)

// envConfigPath names the config file when --config is absent.
const envConfigPath = config.EnvPrefix + "CONFIG"

// knownEnvVars lists valid FONEMA_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfigPath: true,
	// I/O
	"FONEMA_INPUT_DIR":     true,
	"FONEMA_OUTPUT_DIR":    true,
	"FONEMA_OUTPUT_FORMAT": true,
	// Cleaning
	"FONEMA_CLEANING_EMOJI":         true,
	"FONEMA_CLEANING_ANNOUNCE_CODE": true,
	// Segmentation
	"FONEMA_SECTIONS_ENABLED":   true,
	"FONEMA_SECTIONS_MAX_DEPTH": true,
	"FONEMA_CHUNKING_ENABLED":   true,
	"FONEMA_CHUNKING_MAX_BYTES": true,
	// Batch
	"FONEMA_WORKERS": true,
}

// warnUnknownEnvVars logs warnings for unrecognized FONEMA_* variables.
// Helps catch typos like FONEMA_WORKER instead of FONEMA_WORKERS.
func warnUnknownEnvVars(w io.Writer, environ map[string]string) {
	names := make([]string, 0, len(environ))
	for name := range environ {
		if strings.HasPrefix(name, config.EnvPrefix) && !knownEnvVars[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	userDir := string(filepath.Separator) + "fonema" + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, userDir) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForEnvironment returns a hint for malformed FONEMA_* variables.
func ForEnvironment() string {
	return format("FONEMA_* numbers must be integers and switches true or false")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsupportedInput lists the extensions the clean command accepts.
func ForUnsupportedInput(extensions []string) string {
	if len(extensions) == 0 {
		return ""
	}
	return format("supported: " + strings.Join(extensions, ", ") + ", or - for stdin")
}

// ForCleaning returns a hint for texts rejected by the cleaning pipeline.
func ForCleaning(stage string) string {
	if stage == "" {
		return ""
	}
	return format("the " + strings.ToLower(stage) + " stage rejected this text; do not synthesize it")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

package main

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch, output and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		stdin        string
		wantCode     int
		wantStdout   string // exact, when set
		wantNoStdout bool
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage and exits with ExitUsage",
			args:         []string{"fonema"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: fonema"},
		},
		{
			name:         "version command exits 0",
			args:         []string{"fonema", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"fonema dev"},
		},
		{
			name:         "help command lists commands",
			args:         []string{"fonema", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: fonema", "Commands:", "clean", "number", "abbrev"},
		},
		{
			name:         "help clean shows clean help",
			args:         []string{"fonema", "help", "clean"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: fonema clean", "--chunk-bytes", "FONEMA_WORKERS"},
		},
		{
			name:         "help for unknown command exits with ExitUsage",
			args:         []string{"fonema", "help", "speak"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Unknown command: speak"},
		},
		{
			name:         "unknown command exits with ExitUsage",
			args:         []string{"fonema", "unknown"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: unknown"},
		},
		{
			name:       "number spells each argument",
			args:       []string{"fonema", "number", "1500", "21", "-5"},
			wantCode:   ExitSuccess,
			wantStdout: "mil quinientos\nveintiuno\nmenos cinco\n",
		},
		{
			name:         "number rejects non integers before printing",
			args:         []string{"fonema", "number", "7", "siete"},
			wantCode:     ExitUsage,
			wantNoStdout: true,
			wantInStderr: []string{"not an integer", `"siete"`},
		},
		{
			name:         "number without arguments",
			args:         []string{"fonema", "number"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid usage"},
		},
		{
			name:       "abbrev expands known and keeps unknown",
			args:       []string{"fonema", "abbrev", "Dr.", "Xyz."},
			wantCode:   ExitSuccess,
			wantStdout: "Doctor\nXyz.\n",
		},
		{
			name:         "abbrev without tokens lists the table",
			args:         []string{"fonema", "abbrev"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Dr.    Doctor", "C/     Calle"},
		},
		{
			name:       "clean from stdin writes to stdout",
			args:       []string{"fonema", "clean", "-"},
			stdin:      "El Dr. Pérez llegó el 15/03/2024.",
			wantCode:   ExitSuccess,
			wantStdout: "El Doctor Pérez llegó el quince de marzo de dos mil veinticuatro.\n",
		},
		{
			name:         "clean help flag prints usage",
			args:         []string{"fonema", "clean", "--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: fonema clean"},
		},
		{
			name:         "clean unknown flag exits with ExitUsage",
			args:         []string{"fonema", "clean", "--voice", "lucia", "-"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid usage"},
		},
		{
			name:         "clean without input exits with ExitIO",
			args:         []string{"fonema", "clean"},
			wantCode:     ExitIO,
			wantInStderr: []string{"no input specified"},
		},
		{
			name:         "clean missing file exits with ExitIO",
			args:         []string{"fonema", "clean", "missing.md"},
			wantCode:     ExitIO,
			wantInStderr: []string{"error: discovering files"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv(tt.stdin)

			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantNoStdout && stdout.Len() > 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

func TestRunMain_UnsupportedExtensionHint(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slides.pdf")
	writeFile(t, path, "%PDF")

	env, _, stderr := newTestEnv("")
	code := runMain([]string{"fonema", "clean", path}, env)

	if code != ExitUsage {
		t.Errorf("runMain() = %d, want %d", code, ExitUsage)
	}
	for _, want := range []string{"unsupported input extension", "hint: supported: .md, .markdown, .txt"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr should contain %q, got %q", want, stderr.String())
		}
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"clean", "-v", "docs"}, true},
		{[]string{"clean", "--verbose"}, true},
		{[]string{"clean", "docs"}, false},
		{[]string{"clean", "--", "-v"}, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

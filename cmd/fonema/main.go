package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	fonema "github.com/alnah/go-fonema"
	"github.com/alnah/go-fonema/internal/config"
	"github.com/alnah/go-fonema/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS before any worker count is resolved.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		env.Logger = newLogger(env.Stderr, true)
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			env.Logger.Debug(fmt.Sprintf(format, args...))
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	var err error

	switch cmd {
	case "clean":
		err = runCleanCommand(ctx, rest, env)
	case "number":
		err = runNumber(rest, env)
	case "abbrev":
		err = runAbbrev(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "fonema %s\n", Version)
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// hintFor picks an actionable hint for errors that did not carry one.
func hintFor(err error) string {
	var tce *fonema.TextCleaningError
	switch {
	case errors.As(err, &tce):
		return hints.ForCleaning(string(tce.Stage))
	case errors.Is(err, config.ErrEnvParse):
		return hints.ForEnvironment()
	case errors.Is(err, ErrInvalidExtension):
		return hints.ForUnsupportedInput(supportedExtensions)
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}

// hasVerboseFlag scans raw arguments for -v/--verbose before flags are parsed.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// newLogger returns a debug text logger on w, or a discarding logger.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

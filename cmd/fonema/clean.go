package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-fonema/internal/config"
	"github.com/alnah/go-fonema/internal/fileutil"
	"github.com/alnah/go-fonema/internal/hints"
)

// stdinArg selects stdin as input and stdout as default output.
const stdinArg = "-"

// runCleanCommand parses flags and runs the clean command.
func runCleanCommand(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseCleanFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printCleanUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}
	return runClean(ctx, positional, flags, env)
}

// runClean resolves configuration, then cleans stdin or discovered files.
func runClean(ctx context.Context, positionalArgs []string, flags *cleanFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(positionalArgs) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(positionalArgs))
	}

	logger := env.logger()
	if flags.common.verbose {
		logger = newLogger(env.Stderr, true)
	}

	environ := env.Environ
	if environ == nil {
		environ = map[string]string{}
	}
	warnUnknownEnvVars(env.Stderr, environ)

	cfg, err := resolveConfig(flags, environ)
	if err != nil {
		return err
	}
	r := newRenderer(cfg)
	logger.Debug("pipeline", "stages", strings.Join(r.stages, ", "))

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	if inputPath == stdinArg {
		return cleanStream(env, r, flags)
	}

	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir, r.outputExtension())
	if err != nil {
		if errors.Is(err, ErrInvalidExtension) {
			return err
		}
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoFiles, inputPath)
	}

	workers := resolveWorkers(cfg.Workers, len(files))
	logger.Debug("starting batch", "files", len(files), "workers", workers, "format", r.outputExtension())

	results := cleanBatch(ctx, r, files, workers, logger)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d of %d file(s) failed: %w", failedCount, len(results), firstError(results))
	}

	return nil
}

// resolveConfig layers defaults, config file, FONEMA_* variables and flags.
func resolveConfig(flags *cleanFlags, environ map[string]string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	name := flags.common.config
	if name == "" {
		name = environ[envConfigPath]
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(environ); err != nil {
		return nil, err
	}

	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveInputPath picks the positional input or the configured default.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir prefers the flag over the configured default.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// cleanStream cleans stdin into stdout, or into --output when given.
func cleanStream(env *Environment, r *renderer, flags *cleanFlags) error {
	if env.Stdin == nil {
		return ErrNoInput
	}

	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	out, _, err := r.render("", string(content))
	if err != nil {
		return err
	}

	if flags.output == "" {
		if _, err := env.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(flags.output), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}
	if err := fileutil.WriteFileAtomic(flags.output, out, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-fonema/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrNoFiles         = errors.New("no supported files found")
	ErrReadInput       = errors.New("failed to read input")
	ErrWriteOutput     = errors.New("failed to write output")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// CleanResult holds the outcome of a single file.
type CleanResult struct {
	InputPath  string
	OutputPath string
	Segments   int
	Err        error
	Duration   time.Duration
}

// cleanBatch processes files concurrently with at most workers in flight.
// A failing file never stops the others; once ctx is canceled the
// remaining files are reported with the context error.
func cleanBatch(ctx context.Context, r *renderer, files []FileToClean, workers int, logger *slog.Logger) []CleanResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]CleanResult, len(files))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = CleanResult{InputPath: f.InputPath, Err: err}
				return nil
			}
			results[i] = cleanFile(r, f)
			logger.Debug("cleaned file",
				"input", f.InputPath,
				"segments", results[i].Segments,
				"duration", results[i].Duration,
				"error", results[i].Err)
			return nil
		})
	}

	_ = g.Wait() // Workers report through results and never return errors.
	return results
}

// cleanFile processes a single file and returns the result.
func cleanFile(r *renderer, f FileToClean) CleanResult {
	start := time.Now()
	result := CleanResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) CleanResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadInput, err))
	}

	out, n, err := r.render(filepath.Base(f.InputPath), string(content))
	if err != nil {
		return fail(err)
	}
	result.Segments = n

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrCreateOutputDir, err))
	}

	// #nosec G306 -- transcripts are meant to be readable
	if err := fileutil.WriteFileAtomic(f.OutputPath, out, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed files.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed files.
func countResults(results []CleanResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the first failure in input order.
func firstError(results []CleanResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResultsWithWriter outputs results and returns the failure count.
func printResultsWithWriter(results []CleanResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d segments, %v)\n",
				r.InputPath, r.OutputPath, r.Segments, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

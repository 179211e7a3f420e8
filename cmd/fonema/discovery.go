package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-fonema/internal/config"
	"github.com/alnah/go-fonema/internal/fileutil"
)

// supportedExtensions lists the input files the clean command reads.
var supportedExtensions = []string{".md", ".markdown", ".txt"}

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("unsupported input extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToClean represents a single file to process.
type FileToClean struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all supported files under inputPath. The output
// directory is skipped when it lies inside a walked input directory.
func discoverFiles(inputPath, outputDir, outExt string) ([]FileToClean, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateInputExtension(inputPath); err != nil {
			return nil, err
		}
		outPath, err := resolveOutputPath(inputPath, outputDir, "", outExt)
		if err != nil {
			return nil, err
		}
		return []FileToClean{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	skipDir := ""
	if outputDir != "" {
		skipDir = filepath.Clean(outputDir)
	}

	var files []FileToClean
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if skipDir != "" && path != inputPath && filepath.Clean(path) == skipDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !isSupported(path) || isGeneratedOutput(path) {
			return nil
		}
		outPath, err := resolveOutputPath(path, outputDir, inputPath, outExt)
		if err != nil {
			return err
		}
		files = append(files, FileToClean{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the output path for an input file. An output
// that would overwrite its own input gets a ".clean" infix.
func resolveOutputPath(inputPath, outputDir, baseInputDir, outExt string) (string, error) {
	name, err := fileutil.ReplaceExtension(filepath.Base(inputPath), outExt)
	if err != nil {
		return "", err
	}

	var out string
	switch {
	case outputDir == "":
		out = filepath.Join(filepath.Dir(inputPath), name)
	case baseInputDir == "" && strings.EqualFold(filepath.Ext(outputDir), "."+outExt):
		out = outputDir
	case baseInputDir != "":
		relPath, relErr := filepath.Rel(baseInputDir, inputPath)
		if relErr == nil {
			out = filepath.Join(outputDir, filepath.Dir(relPath), name)
		} else {
			out = filepath.Join(outputDir, name)
		}
	default:
		out = filepath.Join(outputDir, name)
	}

	if filepath.Clean(out) == filepath.Clean(inputPath) {
		out = strings.TrimSuffix(out, "."+outExt) + ".clean." + outExt
	}
	return out, nil
}

// isSupported reports whether path has a supported extension (case-insensitive).
func isSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range supportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// isGeneratedOutput reports whether path looks like an earlier ".clean" output.
func isGeneratedOutput(path string) bool {
	return strings.HasSuffix(strings.TrimSuffix(path, filepath.Ext(path)), ".clean")
}

// validateInputExtension checks that a single input file is supported.
func validateInputExtension(path string) error {
	if !isSupported(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers turns 0 into GOMAXPROCS and never exceeds the file count.
func resolveWorkers(n, files int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > config.MaxWorkers {
		n = config.MaxWorkers
	}
	if files > 0 && n > files {
		n = files
	}
	if n < 1 {
		n = 1
	}
	return n
}

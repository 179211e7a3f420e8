package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-fonema/internal/config"
)

// ErrUsage marks malformed command lines.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// cleaningFlags toggles optional pipeline stages.
type cleaningFlags struct {
	emoji        bool
	announceCode bool
}

// segmentFlags controls how cleaned output is split.
type segmentFlags struct {
	sections     bool
	sectionDepth int
	chunkBytes   int
}

// cleanFlags holds all flags for the clean command.
type cleanFlags struct {
	common   commonFlags
	output   string
	workers  int
	format   string
	cleaning cleaningFlags
	segments segmentFlags

	fs *flag.FlagSet // Retained to tell explicit flags from defaults
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addCleaningFlags adds pipeline option flags to a FlagSet.
func addCleaningFlags(fs *flag.FlagSet, f *cleaningFlags) {
	fs.BoolVar(&f.emoji, "emoji", false, "describe emoji in Spanish")
	fs.BoolVar(&f.announceCode, "announce-code", false, "replace code blocks with a spoken marker")
}

// addSegmentFlags adds section and chunk flags to a FlagSet.
func addSegmentFlags(fs *flag.FlagSet, f *segmentFlags) {
	fs.BoolVar(&f.sections, "sections", false, "split output at headings")
	fs.IntVar(&f.sectionDepth, "section-depth", 0, "deepest heading level that starts a section (1-6, default: 2)")
	fs.IntVar(&f.chunkBytes, "chunk-bytes", 0, "split output into chunks of at most this many bytes")
}

// parseCleanFlags parses clean command arguments without printing anything.
// Returns flag.ErrHelp unchanged when -h/--help was requested.
func parseCleanFlags(args []string) (*cleanFlags, []string, error) {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cleanFlags{fs: fs}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.format, "format", "", "output format: text, yaml")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addCleaningFlags(fs, &f.cleaning)
	addSegmentFlags(fs, &f.segments)

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return f, fs.Args(), nil
}

// mergeFlags copies explicitly set flags into cfg (CLI wins over file and env).
func mergeFlags(f *cleanFlags, cfg *config.Config) {
	changed := f.fs.Changed

	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("emoji") {
		cfg.Cleaning.Emoji = f.cleaning.emoji
	}
	if changed("announce-code") {
		cfg.Cleaning.AnnounceCode = f.cleaning.announceCode
	}
	if changed("sections") {
		cfg.Sections.Enabled = f.segments.sections
	}
	if changed("section-depth") {
		cfg.Sections.MaxDepth = f.segments.sectionDepth
		cfg.Sections.Enabled = true
	}
	if changed("chunk-bytes") {
		cfg.Chunking.MaxBytes = f.segments.chunkBytes
		cfg.Chunking.Enabled = f.segments.chunkBytes > 0
	}
}

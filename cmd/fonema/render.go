package main

import (
	"fmt"
	"strings"

	fonema "github.com/alnah/go-fonema"
	"github.com/alnah/go-fonema/internal/config"
	"github.com/alnah/go-fonema/internal/yamlutil"
)

// segment is one piece of speakable output.
type segment struct {
	Section string `yaml:"section,omitempty"`
	Level   int    `yaml:"level,omitempty"`
	Bytes   int    `yaml:"bytes"`
	Text    string `yaml:"text"`

	opensSection bool
}

// transcript is the YAML output document.
type transcript struct {
	Source   string    `yaml:"source,omitempty"`
	Segments []segment `yaml:"segments"`
}

// renderer turns one source document into output bytes. It is safe for
// concurrent use: the cleaner is shared and the rest is read-only.
type renderer struct {
	cleaner      fonema.TextCleaner
	stages       []string
	sections     bool
	sectionDepth int
	chunkBytes   int // 0 = no chunking
	format       string
}

// newRenderer builds a renderer from a validated config.
func newRenderer(cfg *config.Config) *renderer {
	var opts []fonema.Option
	if cfg.Cleaning.Emoji {
		opts = append(opts, fonema.WithEmoji())
	}
	if cfg.Cleaning.AnnounceCode {
		opts = append(opts, fonema.WithCodeAnnouncements())
	}

	cleaner := fonema.NewCleaner(opts...)
	r := &renderer{
		cleaner:      cleaner,
		stages:       cleaner.Stages(),
		sections:     cfg.Sections.Enabled,
		sectionDepth: cfg.Sections.MaxDepth,
		format:       strings.ToLower(cfg.Output.Format),
	}
	if cfg.Chunking.Enabled {
		r.chunkBytes = cfg.Chunking.MaxBytes
		if r.chunkBytes == 0 {
			r.chunkBytes = fonema.DefaultChunkBytes
		}
	}
	return r
}

// outputExtension returns the file extension for the configured format.
func (r *renderer) outputExtension() string {
	if r.format == config.FormatYAML {
		return "yaml"
	}
	return "txt"
}

// segments cleans source into output segments. Section titles are cleaned
// like body text so they are speakable too.
func (r *renderer) segments(source string) ([]segment, error) {
	parts := []fonema.Section{{Body: source}}
	if r.sections {
		parts = fonema.Sections(source, r.sectionDepth)
	}

	segs := make([]segment, 0, len(parts))
	for _, part := range parts {
		title, err := r.cleaner.Clean(part.Title)
		if err != nil {
			return nil, fmt.Errorf("cleaning title %q: %w", part.Title, err)
		}
		body, err := r.cleaner.Clean(part.Body)
		if err != nil {
			if part.Title == "" {
				return nil, err
			}
			return nil, fmt.Errorf("cleaning section %q: %w", part.Title, err)
		}

		pieces := []string{body}
		if r.chunkBytes > 0 {
			pieces = fonema.SplitChunks(body, r.chunkBytes)
		} else if body == "" {
			pieces = nil
		}
		if len(pieces) == 0 {
			if title != "" {
				segs = append(segs, segment{Section: title, Level: part.Level, opensSection: true})
			}
			continue
		}

		for i, p := range pieces {
			segs = append(segs, segment{
				Section:      title,
				Level:        part.Level,
				Bytes:        len(p),
				Text:         p,
				opensSection: i == 0,
			})
		}
	}
	return segs, nil
}

// render returns the encoded output for source. name is recorded as the
// YAML source and may be empty.
func (r *renderer) render(name, source string) ([]byte, int, error) {
	segs, err := r.segments(source)
	if err != nil {
		return nil, 0, err
	}

	if r.format == config.FormatYAML {
		out, err := yamlutil.Marshal(transcript{Source: name, Segments: segs})
		if err != nil {
			return nil, 0, fmt.Errorf("encoding output: %w", err)
		}
		return out, len(segs), nil
	}
	return renderText(segs), len(segs), nil
}

// renderText writes each section title on its own line and separates
// blocks with a blank line.
func renderText(segs []segment) []byte {
	blocks := make([]string, 0, len(segs))
	for _, s := range segs {
		if s.opensSection && s.Section != "" {
			blocks = append(blocks, s.Section)
		}
		if s.Text != "" {
			blocks = append(blocks, s.Text)
		}
	}
	if len(blocks) == 0 {
		return nil
	}
	return []byte(strings.Join(blocks, "\n\n") + "\n")
}

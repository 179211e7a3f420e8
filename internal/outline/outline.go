// Package outline splits a Markdown document into sections at its headings.
package outline

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// DefaultMaxLevel is used when the requested level is outside 1-6.
const DefaultMaxLevel = 2

// Section is a heading and the Markdown that follows it up to the next
// boundary heading. Level 0 marks the preamble before the first heading.
type Section struct {
	Title string
	Level int
	Body  string
}

// headingSpan locates a boundary heading in the source.
type headingSpan struct {
	level int
	title string
	start int // first byte of the heading line
	end   int // first byte after the heading (and its setext underline)
}

// Splitter parses Markdown with GFM and footnotes so that headings inside
// code blocks, tables or footnotes are never mistaken for boundaries.
type Splitter struct {
	md goldmark.Markdown
}

// NewSplitter returns a Splitter.
func NewSplitter() *Splitter {
	return &Splitter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
			),
		),
	}
}

// Split returns the sections of source. Only top-level headings with a level
// up to maxLevel start a new section; deeper headings stay in the body.
func (s *Splitter) Split(source string, maxLevel int) []Section {
	if maxLevel < 1 || maxLevel > 6 {
		maxLevel = DefaultMaxLevel
	}

	src := []byte(source)
	spans := s.headings(src, maxLevel)

	var sections []Section
	prefaceEnd := len(src)
	if len(spans) > 0 {
		prefaceEnd = spans[0].start
	}
	if preface := strings.TrimSpace(string(src[:prefaceEnd])); preface != "" {
		sections = append(sections, Section{Body: preface})
	}

	for i, h := range spans {
		bodyEnd := len(src)
		if i+1 < len(spans) {
			bodyEnd = spans[i+1].start
		}
		sections = append(sections, Section{
			Title: h.title,
			Level: h.level,
			Body:  strings.TrimSpace(string(src[h.end:bodyEnd])),
		})
	}
	return sections
}

func (s *Splitter) headings(src []byte, maxLevel int) []headingSpan {
	doc := s.md.Parser().Parse(text.NewReader(src))

	var spans []headingSpan
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > maxLevel {
			continue
		}
		lines := h.Lines()
		if lines.Len() == 0 {
			// Empty ATX heading ("#"); nothing to locate it by.
			continue
		}

		start := lineStart(src, lines.At(0).Start)
		end := lineEnd(src, lines.At(lines.Len()-1).Stop)
		if !isATX(src[start:]) {
			end = lineEnd(src, end) // setext underline
		}
		spans = append(spans, headingSpan{
			level: h.Level,
			title: plainText(h, src),
			start: start,
			end:   end,
		})
	}
	return spans
}

// isATX reports whether the line opens with a '#' marker.
func isATX(line []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(line, " "), []byte("#"))
}

func lineStart(src []byte, pos int) int {
	return bytes.LastIndexByte(src[:pos], '\n') + 1
}

// lineEnd returns the offset just past the newline ending the line that
// contains pos. A pos already at a line start is returned unchanged.
func lineEnd(src []byte, pos int) int {
	if pos >= len(src) {
		return len(src)
	}
	if pos > 0 && src[pos-1] == '\n' {
		return pos
	}
	if i := bytes.IndexByte(src[pos:], '\n'); i >= 0 {
		return pos + i + 1
	}
	return len(src)
}

// plainText concatenates the inline text of n without markup.
func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

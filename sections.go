package fonema

import "github.com/alnah/go-fonema/internal/outline"

// Section is a heading and the Markdown under it. Level 0 is the text
// before the first heading.
type Section = outline.Section

var sectionSplitter = outline.NewSplitter()

// Sections splits a Markdown article at top-level headings of level 1 to
// maxLevel. A maxLevel outside 1-6 uses 2. Headings inside code blocks are
// ignored. Each Body is raw Markdown, ready for Clean.
func Sections(markdown string, maxLevel int) []Section {
	return sectionSplitter.Split(markdown, maxLevel)
}

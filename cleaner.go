package fonema

import (
	"github.com/alnah/go-fonema/internal/numword"
	"github.com/alnah/go-fonema/internal/pipeline"
)

// TextCleaner turns formatted text into speakable text.
type TextCleaner interface {
	Clean(text string) (string, error)
}

var _ TextCleaner = (*Cleaner)(nil)

// Cleaner runs the cleaning stages. Create with NewCleaner.
type Cleaner struct {
	pipeline *pipeline.Pipeline
}

// Option configures a Cleaner.
type Option func(*pipeline.Options)

// WithEmoji describes emoji in Spanish instead of leaving them for the
// synthesizer. The stage runs right after digital content removal.
func WithEmoji() Option {
	return func(o *pipeline.Options) {
		o.Emoji = true
	}
}

// WithCodeAnnouncements replaces each fenced code block with a spoken
// marker, naming the language when it can be detected.
func WithCodeAnnouncements() Option {
	return func(o *pipeline.Options) {
		o.AnnounceCode = true
	}
}

// NewCleaner returns a Cleaner. Without options it runs exactly the seven
// default stages.
func NewCleaner(opts ...Option) *Cleaner {
	var o pipeline.Options
	for _, opt := range opts {
		opt(&o)
	}
	return &Cleaner{pipeline: pipeline.Default(o)}
}

// Clean returns the fully cleaned text, or the first failing stage's
// *TextCleaningError and an empty string.
func (c *Cleaner) Clean(text string) (string, error) {
	return c.pipeline.Run(text)
}

// Stages lists stage names in execution order.
func (c *Cleaner) Stages() []string {
	return c.pipeline.Names()
}

var defaultCleaner = NewCleaner()

// Clean cleans text with the default stages.
func Clean(text string) (string, error) {
	return defaultCleaner.Clean(text)
}

// NumberToWords spells n in Spanish. Magnitudes of a million or more are
// returned as digits.
func NumberToWords(n int) string {
	return numword.Cardinal(n)
}

// ExpandAbbreviation returns the expansion of a known abbreviation such as
// "Dr.", or token unchanged.
func ExpandAbbreviation(token string) string {
	return pipeline.ExpandAbbreviation(token)
}

// Abbreviations lists the known abbreviations in application order.
func Abbreviations() []string {
	return pipeline.Abbreviations()
}

// DescribeEmoji returns "emoji de <descripción>" for a known emoji and
// "emoji" otherwise.
func DescribeEmoji(e string) string {
	return pipeline.DescribeEmoji(e)
}

package pipeline

import (
	"regexp"
	"strings"
)

var (
	straightQuotes = regexp.MustCompile(`"([^"]+)"`)
	ellipsisDots   = regexp.MustCompile(`\.{3,}`)

	// Runs of sentence punctuation with the spaces around them
	punctuationRun = regexp.MustCompile(`[\s\p{Zs}]*([.,;:!?]+)[\s\p{Zs}]*`)

	doubleHyphen   = regexp.MustCompile(`-{2,}`)
	spacedEmDash   = regexp.MustCompile(`[\s\p{Zs}]*—[\s\p{Zs}]*`)
	closingBracket = regexp.MustCompile(` ([»)\]])`)
)

// PunctuationNormalizer tidies quotes, ellipses, dashes and spacing.
func PunctuationNormalizer() Step {
	return Step{
		Name:  "punctuation normalization",
		Code:  CodePunctuationNormalization,
		Stage: StagePostProcessing,
		Apply: normalizePunctuation,
	}
}

// The ellipsis runs before spacing so "..." is still contiguous.
func normalizePunctuation(text string) string {
	text = straightQuotes.ReplaceAllString(text, "«$1»")
	text = ellipsisDots.ReplaceAllString(text, "…")
	text = punctuationRun.ReplaceAllString(text, "$1 ")
	text = doubleHyphen.ReplaceAllString(text, "—")
	text = spacedEmDash.ReplaceAllString(text, " — ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = closingBracket.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

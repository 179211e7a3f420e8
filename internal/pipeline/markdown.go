package pipeline

import "regexp"

// Block-level patterns run before inline patterns.
var (
	// [label]: destination, including footnote definitions
	referenceDefinition = regexp.MustCompile(`(?m)^ {0,3}\[[^\]\n]+\]:[ \t]*.*$`)

	// > quote, nested markers too
	blockquoteMarker = regexp.MustCompile(`(?m)^ {0,3}(?:>[ \t]?)+`)

	// ---, ***, ___ and spaced variants
	horizontalRule = regexp.MustCompile(`(?m)^ {0,3}(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)

	// Setext heading underline (===)
	setextUnderline = regexp.MustCompile(`(?m)^ {0,3}=+[ \t]*$`)

	// | --- | :---: | delimiter rows
	tableDelimiterRow = regexp.MustCompile(`(?m)^[ \t]*\|?(?:[ \t]*:?-+:?[ \t]*\|)+(?:[ \t]*:?-+:?[ \t]*)?$`)

	// ## Title ##, group 1 is the title
	atxHeader = regexp.MustCompile(`(?m)^ {0,3}#{1,6}[ \t]+(.*?)(?:[ \t]+#+)?[ \t]*$`)

	// Header markers after whitespace mid-text
	inlineHeader = regexp.MustCompile(`(\s)#{1,6}[ \t]+`)

	// - item, * item, + item, 1. item, 1) item
	unorderedListMarker = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	orderedListMarker   = regexp.MustCompile(`(?m)^[ \t]*\d+[.)][ \t]+`)

	// [ ] and [x] after a list marker was removed
	taskBox = regexp.MustCompile(`(?m)^\[[ xX]\][ \t]+`)
)

// Inline patterns.
var (
	inlineImage    = regexp.MustCompile(`!\[[^\]]*\](?:\([^)]*\)|\[[^\]]*\])`)
	inlineLink     = regexp.MustCompile(`\[([^\]]+)\](?:\([^)]*\)|\[[^\]]*\])`)
	footnoteRef    = regexp.MustCompile(`\[\^[^\]]+\]`)
	htmlComment    = regexp.MustCompile(`(?s)<!--.*?-->`)
	htmlTag        = regexp.MustCompile(`</?[A-Za-z][^<>]*>`)
	boldAsterisks  = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	boldUnderscore = regexp.MustCompile(`__([^_\n]+)__`)
	strikethrough  = regexp.MustCompile(`~~([^~\n]+)~~`)
	italicAsterisk = regexp.MustCompile(`\*([^*\n]+)\*`)

	// _text_ only when not inside a word, so snake_case is not emphasis
	italicUnderscore = regexp.MustCompile(`(^|[^\p{L}\p{N}_])_([^_\n]+)_($|[^\p{L}\p{N}_])`)

	leftoverUnderscores = regexp.MustCompile(`_+`)
	tablePipe           = regexp.MustCompile(`\|`)
)

// MarkdownStripper removes Markdown syntax and keeps the readable text.
func MarkdownStripper() Step {
	return Step{
		Name:  "markdown cleaning",
		Code:  CodeMarkdownCleaning,
		Stage: StagePreProcessing,
		Apply: stripMarkdown,
	}
}

func stripMarkdown(text string) string {
	text = referenceDefinition.ReplaceAllString(text, "")
	text = blockquoteMarker.ReplaceAllString(text, "")
	text = horizontalRule.ReplaceAllString(text, "")
	text = setextUnderline.ReplaceAllString(text, "")
	text = tableDelimiterRow.ReplaceAllString(text, "")
	text = atxHeader.ReplaceAllString(text, "$1")
	text = inlineHeader.ReplaceAllString(text, "$1")
	text = unorderedListMarker.ReplaceAllString(text, "")
	text = orderedListMarker.ReplaceAllString(text, "")
	text = taskBox.ReplaceAllString(text, "")

	// Images first: their syntax contains a link.
	text = inlineImage.ReplaceAllString(text, "")
	text = footnoteRef.ReplaceAllString(text, "")
	text = inlineLink.ReplaceAllString(text, "$1")
	text = htmlComment.ReplaceAllString(text, "")
	text = htmlTag.ReplaceAllString(text, "")

	text = boldAsterisks.ReplaceAllString(text, "$1")
	text = boldUnderscore.ReplaceAllString(text, "$1")
	text = strikethrough.ReplaceAllString(text, "$1")
	text = italicAsterisk.ReplaceAllString(text, "$1")
	text = replaceUntilStable(italicUnderscore, text, "$1$2$3")

	text = leftoverUnderscores.ReplaceAllString(text, " ")
	return tablePipe.ReplaceAllString(text, " ")
}

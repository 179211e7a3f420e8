package pipeline

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"golang.org/x/text/unicode/norm"
)

var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Fenced blocks; group 1 is the info string, group 2 the body.
	backtickFence = regexp.MustCompile("(?s)```([^\n`]*)\n?(.*?)```")
	tildeFence    = regexp.MustCompile(`(?s)~~~([^\n~]*)\n?(.*?)~~~`)

	// Lines indented by four spaces or a tab
	indentedCode = regexp.MustCompile(`(?m)^(?: {4,}|\t).*$`)

	// Inline `code`
	inlineCode = regexp.MustCompile("`([^`]+)`")
)

// CodeStripper removes code blocks and unwraps inline code. With announce set,
// each fenced block is replaced by a spoken marker naming its language.
func CodeStripper(announce bool) Step {
	return Step{
		Name:  "code cleaning",
		Code:  CodeCodeCleaning,
		Stage: StagePreProcessing,
		Apply: func(text string) string { return stripCode(text, announce) },
	}
}

func stripCode(text string, announce bool) string {
	text = normalizeInput(text)

	fence := func([]string) string { return "" }
	if announce {
		fence = func(groups []string) string { return announceFence(groups[1], groups[2]) }
	}
	text = replaceSubmatchFunc(backtickFence, text, fence)
	text = replaceSubmatchFunc(tildeFence, text, fence)

	text = indentedCode.ReplaceAllString(text, "")
	return inlineCode.ReplaceAllString(text, "$1")
}

// normalizeInput converts line endings to \n and composes Unicode so that
// later patterns see "é" as one rune.
func normalizeInput(text string) string {
	return norm.NFC.String(crlfOrCR.ReplaceAllString(text, "\n"))
}

func announceFence(info, body string) string {
	if name := codeLanguage(info, body); name != "" {
		return " (bloque de código en " + name + " omitido) "
	}
	return " (bloque de código omitido) "
}

// codeLanguage resolves a display name from the fence info string, falling
// back to content analysis. It returns "" when nothing matches.
func codeLanguage(info, body string) string {
	var lexer chroma.Lexer
	if fields := strings.Fields(info); len(fields) > 0 {
		lexer = lexers.Get(fields[0])
	}
	if lexer == nil && strings.TrimSpace(body) != "" {
		lexer = lexers.Analyse(body)
	}
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

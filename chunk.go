package fonema

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultChunkBytes is the byte budget used when SplitChunks gets a
// non-positive limit. It matches a common synthesis request limit.
const DefaultChunkBytes = 5000

// A run of sentence terminators and the spaces after it
var sentenceEnd = regexp.MustCompile(`[.!?…]+[\s\p{Zs}]*`)

// SplitChunks packs the sentences of text into trimmed chunks of at most
// maxBytes bytes. A sentence longer than the budget is cut at its last space
// inside the budget, or at a rune boundary when it has none. Blank input
// returns nil.
func SplitChunks(text string, maxBytes int) []string {
	if maxBytes <= 0 {
		maxBytes = DefaultChunkBytes
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var (
		chunks []string
		cur    strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			chunks = append(chunks, s)
		}
		cur.Reset()
	}

	for _, s := range sentences(text) {
		if cur.Len() > 0 && cur.Len()+len(s) > maxBytes {
			flush()
		}
		for len(s) > maxBytes {
			cut := cutPoint(s, maxBytes)
			cur.WriteString(s[:cut])
			flush()
			s = s[cut:]
		}
		cur.WriteString(s)
	}
	flush()
	return chunks
}

// sentences splits text after each terminator run. Trailing text without a
// terminator is kept as the last sentence.
func sentences(text string) []string {
	var out []string
	last := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		out = append(out, text[last:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, text[last:])
	}
	return out
}

// cutPoint returns where to cut s (len(s) > maxBytes) so the head fits.
func cutPoint(s string, maxBytes int) int {
	if i := strings.LastIndexByte(s[:maxBytes+1], ' '); i > 0 {
		return i
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		// Budget smaller than the first rune.
		_, size := utf8.DecodeRuneInString(s)
		return size
	}
	return cut
}

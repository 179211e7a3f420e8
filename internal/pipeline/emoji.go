package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Variation selector, zero width joiner and skin tone modifiers
	emojiModifiers = strings.NewReplacer(
		"\uFE0F", "",
		"\u200D", "",
		"\U0001F3FB", "",
		"\U0001F3FC", "",
		"\U0001F3FD", "",
		"\U0001F3FE", "",
		"\U0001F3FF", "",
	)

	// Pictographs left after the table lookup
	pictograph = regexp.MustCompile(`[\x{1F300}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2600}-\x{27BF}\x{1F900}-\x{1FAFF}]`)

	whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)

	emojiReplacer, emojiIndex = buildEmojiTable()
)

func buildEmojiTable() (*strings.Replacer, map[string]string) {
	index := make(map[string]string, len(emojiDescriptions))
	pairs := make([]string, 0, 2*len(emojiDescriptions))
	for _, e := range emojiDescriptions {
		if _, dup := index[e.emoji]; dup {
			continue
		}
		index[e.emoji] = e.description
		pairs = append(pairs, e.emoji, " emoji de "+e.description+" ")
	}
	return strings.NewReplacer(pairs...), index
}

// EmojiDescriber replaces emoji with a spoken Spanish description.
func EmojiDescriber() Step {
	return Step{
		Name:  "emoji conversion",
		Code:  CodeEmojiConversion,
		Stage: StageNormalization,
		Apply: describeEmoji,
	}
}

func describeEmoji(text string) string {
	text = emojiModifiers.Replace(text)
	text = emojiReplacer.Replace(text)
	text = pictograph.ReplaceAllString(text, " emoji ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// DescribeEmoji returns "emoji de <descripción>" for a known emoji and
// "emoji" otherwise.
func DescribeEmoji(e string) string {
	if d, ok := emojiIndex[emojiModifiers.Replace(e)]; ok {
		return "emoji de " + d
	}
	return "emoji"
}

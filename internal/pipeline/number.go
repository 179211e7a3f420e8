package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-fonema/internal/numword"
)

var (
	// 1,234 and 1,234,567
	groupedInteger = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})+\b`)

	// Percentages and ordinals are matched as whole tokens so their digits
	// are skipped; group 1 is set only for a bare integer.
	bareInteger = regexp.MustCompile(`\b(?:\d+(?:\.\d+)?%|\d+[ºª]|(\d+)\b)`)

	ordinalNumber = regexp.MustCompile(`\b(\d+)[ºª]`)

	// Group 1 is the integer part; the fraction is discarded.
	percentage = regexp.MustCompile(`\b(\d+)(?:\.\d+)?%`)
)

// NumberConverter spells integers, ordinals and percentages as words.
func NumberConverter() Step {
	return Step{
		Name:  "number conversion",
		Code:  CodeNumberConversion,
		Stage: StageNormalization,
		Apply: convertNumbers,
	}
}

func convertNumbers(text string) string {
	text = groupedInteger.ReplaceAllStringFunc(text, func(m string) string {
		return spellDigits(strings.ReplaceAll(m, ",", ""), m, numword.Cardinal)
	})
	text = replaceSubmatchFunc(bareInteger, text, func(g []string) string {
		if g[1] == "" {
			return g[0]
		}
		return spellDigits(g[1], g[0], numword.Cardinal)
	})
	text = replaceSubmatchFunc(ordinalNumber, text, func(g []string) string {
		return spellDigits(g[1], g[0], numword.Ordinal)
	})
	return replaceSubmatchFunc(percentage, text, func(g []string) string {
		return spellDigits(g[1], g[0], func(n int) string {
			return numword.Cardinal(n) + " por ciento"
		})
	})
}

// spellDigits parses digits and spells them with fn. Values that overflow
// int return fallback unchanged.
func spellDigits(digits, fallback string, fn func(int) string) string {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return fallback
	}
	return fn(n)
}

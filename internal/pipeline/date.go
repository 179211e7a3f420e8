package pipeline

import (
	"regexp"

	"github.com/alnah/go-fonema/internal/dateutil"
)

// D/M/YYYY, one or two digits for day and month
var numericDate = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)

// DateConverter spells numeric dates as "<día> de <mes> de <año>".
func DateConverter() Step {
	return Step{
		Name:  "date conversion",
		Code:  CodeDateConversion,
		Stage: StageNormalization,
		Apply: convertDates,
	}
}

// convertDates leaves a match untouched when its month does not exist.
func convertDates(text string) string {
	return replaceSubmatchFunc(numericDate, text, func(g []string) string {
		spoken, err := dateutil.SpokenNumeric(g[1], g[2], g[3])
		if err != nil {
			return g[0]
		}
		return spoken
	})
}

package pipeline

import "regexp"

// abbreviation is a dictionary entry matched at a left word boundary.
type abbreviation struct {
	short   string
	long    string
	pattern *regexp.Regexp
}

// abbreviations are applied in this order.
var abbreviations = compileAbbreviations([][2]string{
	{"Dr.", "Doctor"},
	{"Dra.", "Doctora"},
	{"Sr.", "Señor"},
	{"Sra.", "Señora"},
	{"Srta.", "Señorita"},
	{"Prof.", "Profesor"},
	{"Profa.", "Profesora"},
	{"Ing.", "Ingeniero"},
	{"Lic.", "Licenciado"},
	{"etc.", "etcétera"},
	{"S.A.", "Sociedad Anónima"},
	{"Ltda.", "Limitada"},
	{"Cía.", "Compañía"},
	{"Av.", "Avenida"},
	{"C/", "Calle"},
	{"Pza.", "Plaza"},
	{"Dpto.", "Departamento"},
})

var abbreviationIndex = func() map[string]string {
	m := make(map[string]string, len(abbreviations))
	for _, a := range abbreviations {
		m[a.short] = a.long
	}
	return m
}()

func compileAbbreviations(entries [][2]string) []abbreviation {
	out := make([]abbreviation, len(entries))
	for i, e := range entries {
		out[i] = abbreviation{
			short:   e[0],
			long:    e[1],
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(e[0])),
		}
	}
	return out
}

// AbbreviationExpander expands dictionary abbreviations in a single pass.
func AbbreviationExpander() Step {
	return Step{
		Name:  "abbreviation expansion",
		Code:  CodeAbbreviationExpansion,
		Stage: StageNormalization,
		Apply: expandAbbreviations,
	}
}

func expandAbbreviations(text string) string {
	for _, a := range abbreviations {
		text = a.pattern.ReplaceAllLiteralString(text, a.long)
	}
	return text
}

// ExpandAbbreviation returns the expansion of an exact dictionary token, or
// the token unchanged.
func ExpandAbbreviation(token string) string {
	if long, ok := abbreviationIndex[token]; ok {
		return long
	}
	return token
}

// Abbreviations lists dictionary tokens in application order.
func Abbreviations() []string {
	out := make([]string, len(abbreviations))
	for i, a := range abbreviations {
		out[i] = a.short
	}
	return out
}

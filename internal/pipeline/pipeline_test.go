package pipeline

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

// fields collapses whitespace so tests can ignore spacing left by removals.
func fields(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestStep_RunRecoversPanic(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	step := Step{
		Name:  "date conversion",
		Code:  CodeDateConversion,
		Stage: StageNormalization,
		Apply: func(string) string { panic(boom) },
	}

	got, err := step.Run("texto")
	if got != "" {
		t.Errorf("Run() output = %q, want empty on failure", got)
	}

	var tce *TextCleaningError
	if !errors.As(err, &tce) {
		t.Fatalf("Run() error = %v, want *TextCleaningError", err)
	}
	if tce.Code != CodeDateConversion {
		t.Errorf("Code = %q, want %q", tce.Code, CodeDateConversion)
	}
	if tce.Stage != StageNormalization {
		t.Errorf("Stage = %q, want %q", tce.Stage, StageNormalization)
	}
	if !errors.Is(err, boom) {
		t.Errorf("errors.Is(err, boom) = false, want cause to be wrapped")
	}
	if !strings.Contains(tce.Message, "date conversion failed") {
		t.Errorf("Message = %q, want step name", tce.Message)
	}
}

func TestStep_RunRecoversNonErrorPanic(t *testing.T) {
	t.Parallel()

	step := Step{
		Name:  "markdown cleaning",
		Code:  CodeMarkdownCleaning,
		Stage: StagePreProcessing,
		Apply: func(string) string { panic("bad state") },
	}

	_, err := step.Run("x")
	if err == nil {
		t.Fatal("Run() expected error")
	}
	if !strings.Contains(err.Error(), "bad state") {
		t.Errorf("Error() = %q, want recovered value", err.Error())
	}
}

func TestTextCleaningError_IsMatchesCode(t *testing.T) {
	t.Parallel()

	err := error(&TextCleaningError{Message: "x", Code: CodeNumberConversion, Stage: StageNormalization})

	if !errors.Is(err, &TextCleaningError{Code: CodeNumberConversion}) {
		t.Error("errors.Is() with same code = false, want true")
	}
	if errors.Is(err, &TextCleaningError{Code: CodeDateConversion}) {
		t.Error("errors.Is() with other code = true, want false")
	}
}

func TestPipeline_RunShortCircuits(t *testing.T) {
	t.Parallel()

	var calls []string
	record := func(name string) func(string) string {
		return func(s string) string {
			calls = append(calls, name)
			return s + name
		}
	}

	p := New(
		Step{Name: "a", Apply: record("a")},
		Step{Name: "b", Code: CodeMarkdownCleaning, Stage: StagePreProcessing, Apply: func(string) string { panic("stop") }},
		Step{Name: "c", Apply: record("c")},
	)

	got, err := p.Run("x")
	if err == nil {
		t.Fatal("Run() expected error")
	}
	if got != "" {
		t.Errorf("Run() output = %q, want no partial output", got)
	}
	if !slices.Equal(calls, []string{"a"}) {
		t.Errorf("steps run = %v, want [a]", calls)
	}
	if !errors.Is(err, &TextCleaningError{Code: CodeMarkdownCleaning}) {
		t.Errorf("error = %v, want markdown cleaning failure", err)
	}
}

func TestPipeline_RunChainsOutput(t *testing.T) {
	t.Parallel()

	p := New(
		Step{Name: "upper", Apply: strings.ToUpper},
		Step{Name: "trim", Apply: strings.TrimSpace},
	)

	got, err := p.Run("  hola ")
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if got != "HOLA" {
		t.Errorf("Run() = %q, want %q", got, "HOLA")
	}
}

func TestDefault_StageOrder(t *testing.T) {
	t.Parallel()

	base := []string{
		"code cleaning",
		"markdown cleaning",
		"digital content removal",
		"abbreviation expansion",
		"date conversion",
		"number conversion",
		"punctuation normalization",
	}

	if got := Default(Options{}).Names(); !slices.Equal(got, base) {
		t.Errorf("Default().Names() = %v, want %v", got, base)
	}

	withEmoji := slices.Insert(slices.Clone(base), 3, "emoji conversion")
	if got := Default(Options{Emoji: true}).Names(); !slices.Equal(got, withEmoji) {
		t.Errorf("Default(Emoji).Names() = %v, want %v", got, withEmoji)
	}
}

func TestDefault_StageCodesAndPhases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		step  Step
		code  Code
		stage Stage
	}{
		{CodeStripper(false), CodeCodeCleaning, StagePreProcessing},
		{MarkdownStripper(), CodeMarkdownCleaning, StagePreProcessing},
		{DigitalContentRemover(), CodeDigitalContentRemoval, StagePreProcessing},
		{EmojiDescriber(), CodeEmojiConversion, StageNormalization},
		{AbbreviationExpander(), CodeAbbreviationExpansion, StageNormalization},
		{DateConverter(), CodeDateConversion, StageNormalization},
		{NumberConverter(), CodeNumberConversion, StageNormalization},
		{PunctuationNormalizer(), CodePunctuationNormalization, StagePostProcessing},
	}

	for _, tt := range tests {
		if tt.step.Code != tt.code || tt.step.Stage != tt.stage {
			t.Errorf("%s: (%s, %s), want (%s, %s)", tt.step.Name, tt.step.Code, tt.step.Stage, tt.code, tt.stage)
		}
	}
}

func TestReplaceSubmatchFunc(t *testing.T) {
	t.Parallel()

	got := replaceSubmatchFunc(numericDate, "a 1/2/2000 b 3/4/2001", func(g []string) string {
		return g[3]
	})
	if want := "a 2000 b 2001"; got != want {
		t.Errorf("replaceSubmatchFunc() = %q, want %q", got, want)
	}

	if got := replaceSubmatchFunc(numericDate, "sin fechas", nil); got != "sin fechas" {
		t.Errorf("replaceSubmatchFunc() without match = %q, want input", got)
	}
}

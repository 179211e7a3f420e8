package fonema

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestClean_EndToEnd(t *testing.T) {
	t.Parallel()

	input := "# Informe\n\n" +
		"El Dr. Pérez vendió 1,500 unidades el 15/03/2024.\n" +
		"Fue el 1º en lograr un 95% de éxito. Contacto: ana@correo.es o https://ejemplo.com.\n\n" +
		"```go\nfmt.Println(42)\n```\n\n" +
		"Usa `make build` para compilar."

	got, err := Clean(input)
	if err != nil {
		t.Fatalf("Clean() unexpected error: %v", err)
	}

	want := "Informe El Doctor Pérez vendió mil quinientos unidades el quince de marzo de dos mil veinticuatro. " +
		"Fue el primero en lograr un noventa y cinco por ciento de éxito. Contacto: o Usa make build para compilar."
	if got != want {
		t.Errorf("Clean() =\n%q\nwant\n%q", got, want)
	}

	for _, banned := range []string{"```", "@", "http", "Println", "Dr.", "%", "º"} {
		if strings.Contains(got, banned) {
			t.Errorf("Clean() output contains %q: %q", banned, got)
		}
	}
	if strings.ContainsAny(got, "0123456789") {
		t.Errorf("Clean() output contains digits: %q", got)
	}
}

func TestClean_Properties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"abbreviation", "Dr. Juan", "Doctor Juan"},
		{"unknown abbreviation", "Xyz.", "Xyz."},
		{"date", "15/03/2024", "quince de marzo de dos mil veinticuatro"},
		{"percentage", "95%", "noventa y cinco por ciento"},
		{"grouped integer", "1,500", "mil quinientos"},
		{"ordinal", "1º", "primero"},
		{"inline code", "usa `go test` ya", "usa go test ya"},
		{"url and email", "ver https://a.es y b@c.es hoy", "ver y hoy"},
		{"whitespace", "  uno \n\n dos  ", "uno dos"},
		{"empty", "", ""},
		{"image before link", "![foto](a.png) [texto](b.html)", "texto"},
		{"list with emphasis", "* uno *\n* dos *", "uno * dos *"},
		{"ellipsis survives spacing", "Bueno... vale", "Bueno… vale"},
		{"sentence spacing kept", "Hola.adiós", "Hola. adiós"},
		{"emoji untouched by default", "hola 😀", "hola 😀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Clean(tt.input)
			if err != nil {
				t.Fatalf("Clean(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewCleaner_Options(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []Option
		input    string
		expected string
	}{
		{
			name:     "emoji described",
			opts:     []Option{WithEmoji()},
			input:    "¡Genial 😀!",
			expected: "¡Genial emoji de cara sonriente!",
		},
		{
			name:     "code announced",
			opts:     []Option{WithCodeAnnouncements()},
			input:    "```go\nx := 1\n```",
			expected: "(bloque de código en Go omitido)",
		},
		{
			name:     "code dropped by default",
			input:    "Antes\n```go\nx := 1\n```\nDespués",
			expected: "Antes Después",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewCleaner(tt.opts...).Clean(tt.input)
			if err != nil {
				t.Fatalf("Clean() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleaner_Stages(t *testing.T) {
	t.Parallel()

	if got := len(NewCleaner().Stages()); got != 7 {
		t.Errorf("len(Stages()) = %d, want 7", got)
	}

	stages := NewCleaner(WithEmoji()).Stages()
	if len(stages) != 8 || stages[3] != "emoji conversion" {
		t.Errorf("Stages() with emoji = %v, want emoji conversion fourth", stages)
	}
}

func TestCleaner_ConcurrentUse(t *testing.T) {
	t.Parallel()

	c := NewCleaner(WithEmoji())
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Clean(fmt.Sprintf("Sr. %d", i))
			if err != nil {
				errs <- err
				return
			}
			if !strings.HasPrefix(got, "Señor ") {
				errs <- fmt.Errorf("Clean() = %q", got)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sentinel *TextCleaningError
		code     ErrorCode
		stage    ErrorStage
	}{
		{ErrCodeCleaning, CodeCodeCleaning, StagePreProcessing},
		{ErrMarkdownCleaning, CodeMarkdownCleaning, StagePreProcessing},
		{ErrDigitalContentRemoval, CodeDigitalContentRemoval, StagePreProcessing},
		{ErrEmojiConversion, CodeEmojiConversion, StageNormalization},
		{ErrAbbreviationExpansion, CodeAbbreviationExpansion, StageNormalization},
		{ErrDateConversion, CodeDateConversion, StageNormalization},
		{ErrNumberConversion, CodeNumberConversion, StageNormalization},
		{ErrPunctuationNormalization, CodePunctuationNormalization, StagePostProcessing},
	}

	for _, tt := range tests {
		if tt.sentinel.Code != tt.code || tt.sentinel.Stage != tt.stage {
			t.Errorf("sentinel %q = (%s, %s), want (%s, %s)", tt.sentinel.Message, tt.sentinel.Code, tt.sentinel.Stage, tt.code, tt.stage)
		}

		err := fmt.Errorf("article 7: %w", &TextCleaningError{Message: "x", Code: tt.code, Stage: tt.stage})
		if !errors.Is(err, tt.sentinel) {
			t.Errorf("errors.Is(wrapped %s, sentinel) = false, want true", tt.code)
		}
	}

	if errors.Is(ErrDateConversion, ErrNumberConversion) {
		t.Error("errors.Is() across codes = true, want false")
	}
}

func TestNumberToWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{0, "cero"},
		{15, "quince"},
		{21, "veintiuno"},
		{100, "cien"},
		{1000, "mil"},
		{2024, "dos mil veinticuatro"},
		{-7, "menos siete"},
		{1000000, "1000000"},
	}

	for _, tt := range tests {
		if got := NumberToWords(tt.n); got != tt.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestExpandAbbreviation(t *testing.T) {
	t.Parallel()

	if got := ExpandAbbreviation("Srta."); got != "Señorita" {
		t.Errorf("ExpandAbbreviation(Srta.) = %q, want Señorita", got)
	}
	if got := ExpandAbbreviation("Xyz."); got != "Xyz." {
		t.Errorf("ExpandAbbreviation(Xyz.) = %q, want input unchanged", got)
	}
	if got := len(Abbreviations()); got != 17 {
		t.Errorf("len(Abbreviations()) = %d, want 17", got)
	}
}

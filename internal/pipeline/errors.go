package pipeline

import "fmt"

// Stage is the coarse phase of the pipeline a failure belongs to.
type Stage string

// Pipeline phases.
const (
	StagePreProcessing  Stage = "PRE_PROCESSING"
	StageNormalization  Stage = "NORMALIZATION"
	StagePostProcessing Stage = "POST_PROCESSING"
)

// Code identifies the step that failed.
type Code string

// Failure codes, one per step.
const (
	CodeCodeCleaning             Code = "CODE_CLEANING_FAILED"
	CodeMarkdownCleaning         Code = "MARKDOWN_CLEANING_FAILED"
	CodeDigitalContentRemoval    Code = "DIGITAL_CONTENT_REMOVAL_FAILED"
	CodeEmojiConversion          Code = "EMOJI_CONVERSION_FAILED"
	CodeAbbreviationExpansion    Code = "ABBREVIATION_EXPANSION_FAILED"
	CodeDateConversion           Code = "DATE_CONVERSION_FAILED"
	CodeNumberConversion         Code = "NUMBER_CONVERSION_FAILED"
	CodePunctuationNormalization Code = "PUNCTUATION_NORMALIZATION_FAILED"
)

// TextCleaningError reports the step that failed and the phase it belongs to.
type TextCleaningError struct {
	Message string
	Code    Code
	Stage   Stage
	Err     error // recovered cause, may be nil
}

func (e *TextCleaningError) Error() string {
	return fmt.Sprintf("%s (%s, %s)", e.Message, e.Code, e.Stage)
}

func (e *TextCleaningError) Unwrap() error {
	return e.Err
}

// Is matches any *TextCleaningError with the same code, so a value such as
// &TextCleaningError{Code: CodeDateConversion} works as a sentinel.
func (e *TextCleaningError) Is(target error) bool {
	t, ok := target.(*TextCleaningError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

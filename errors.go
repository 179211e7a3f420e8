package fonema

import "github.com/alnah/go-fonema/internal/pipeline"

// TextCleaningError reports which stage failed and the phase it belongs to.
type TextCleaningError = pipeline.TextCleaningError

// ErrorCode identifies the failed stage.
type ErrorCode = pipeline.Code

// ErrorStage is the coarse phase of a failure.
type ErrorStage = pipeline.Stage

// Failure phases.
const (
	StagePreProcessing  = pipeline.StagePreProcessing
	StageNormalization  = pipeline.StageNormalization
	StagePostProcessing = pipeline.StagePostProcessing
)

// Failure codes.
const (
	CodeCodeCleaning             = pipeline.CodeCodeCleaning
	CodeMarkdownCleaning         = pipeline.CodeMarkdownCleaning
	CodeDigitalContentRemoval    = pipeline.CodeDigitalContentRemoval
	CodeEmojiConversion          = pipeline.CodeEmojiConversion
	CodeAbbreviationExpansion    = pipeline.CodeAbbreviationExpansion
	CodeDateConversion           = pipeline.CodeDateConversion
	CodeNumberConversion         = pipeline.CodeNumberConversion
	CodePunctuationNormalization = pipeline.CodePunctuationNormalization
)

// Sentinel errors for errors.Is, matched by code.
var (
	ErrCodeCleaning = &TextCleaningError{
		Message: "code cleaning failed", Code: CodeCodeCleaning, Stage: StagePreProcessing,
	}
	ErrMarkdownCleaning = &TextCleaningError{
		Message: "markdown cleaning failed", Code: CodeMarkdownCleaning, Stage: StagePreProcessing,
	}
	ErrDigitalContentRemoval = &TextCleaningError{
		Message: "digital content removal failed", Code: CodeDigitalContentRemoval, Stage: StagePreProcessing,
	}
	ErrEmojiConversion = &TextCleaningError{
		Message: "emoji conversion failed", Code: CodeEmojiConversion, Stage: StageNormalization,
	}
	ErrAbbreviationExpansion = &TextCleaningError{
		Message: "abbreviation expansion failed", Code: CodeAbbreviationExpansion, Stage: StageNormalization,
	}
	ErrDateConversion = &TextCleaningError{
		Message: "date conversion failed", Code: CodeDateConversion, Stage: StageNormalization,
	}
	ErrNumberConversion = &TextCleaningError{
		Message: "number conversion failed", Code: CodeNumberConversion, Stage: StageNormalization,
	}
	ErrPunctuationNormalization = &TextCleaningError{
		Message: "punctuation normalization failed", Code: CodePunctuationNormalization, Stage: StagePostProcessing,
	}
)

package pipeline

import "fmt"

// Step is one named text transformation.
type Step struct {
	Name  string
	Code  Code
	Stage Stage
	Apply func(text string) string
}

// Run applies the step. A panic raised while transforming is recovered and
// returned as a *TextCleaningError tagged with the step's code and stage.
func (s Step) Run(text string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			out = ""
			err = &TextCleaningError{
				Message: fmt.Sprintf("%s failed: %v", s.Name, cause),
				Code:    s.Code,
				Stage:   s.Stage,
				Err:     cause,
			}
		}
	}()
	return s.Apply(text), nil
}

// Options selects the optional behaviors of the default step list.
type Options struct {
	Emoji        bool // describe emoji after digital content removal
	AnnounceCode bool // replace fenced code with a spoken marker
}

// Pipeline runs steps in order and stops at the first failure.
type Pipeline struct {
	steps []Step
}

// New returns a pipeline over the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: append([]Step(nil), steps...)}
}

// Default returns the standard cleaning pipeline for opts.
func Default(opts Options) *Pipeline {
	steps := []Step{
		CodeStripper(opts.AnnounceCode),
		MarkdownStripper(),
		DigitalContentRemover(),
	}
	if opts.Emoji {
		steps = append(steps, EmojiDescriber())
	}
	steps = append(steps,
		AbbreviationExpander(),
		DateConverter(),
		NumberConverter(),
		PunctuationNormalizer(),
	)
	return New(steps...)
}

// Run returns the fully transformed text or the first step's error,
// never partial output.
func (p *Pipeline) Run(text string) (string, error) {
	for _, s := range p.steps {
		var err error
		text, err = s.Run(text)
		if err != nil {
			return "", err
		}
	}
	return text, nil
}

// Names lists step names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name
	}
	return names
}

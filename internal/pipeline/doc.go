// Package pipeline implements the text cleaning stages that turn formatted
// Spanish prose into text a speech synthesizer can read aloud.
//
// Stages run in a fixed order, each consuming the previous stage's output:
//   - code stripping (fenced and indented blocks, inline code)
//   - Markdown stripping
//   - digital content removal (URLs, emails, handles, hashtags)
//   - optional emoji description
//   - abbreviation expansion
//   - date conversion
//   - number conversion
//   - punctuation normalization
//
// Every stage is a pure function of its input. The only failure a stage can
// report is a panic recovered from its own pattern operations, surfaced as a
// *TextCleaningError carrying the stage's code and phase.
package pipeline

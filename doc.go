// Package fonema cleans Spanish text for speech synthesis.
//
// # Quick Start
//
//	spoken, err := fonema.Clean("El **Dr.** García nació el 15/03/1970.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(spoken)
//	// El Doctor García nació el quince de marzo de mil novecientos setenta.
//
// # Cleaning Pipeline
//
// Clean runs these stages in order, each consuming the previous output:
//
//  1. Code stripping: fenced and indented blocks removed, inline code unwrapped
//  2. Markdown stripping: syntax removed, visible text kept
//  3. Digital content removal: URLs, emails, @handles, #hashtags
//  4. Abbreviation expansion: "Dr." becomes "Doctor"
//  5. Date conversion: "15/03/2024" becomes "quince de marzo de dos mil veinticuatro"
//  6. Number conversion: cardinals, ordinals, percentages, grouped integers
//  7. Punctuation normalization: quotes, ellipses, dashes, spacing
//
// The order matters: code goes before Markdown so backticks are not read
// as emphasis, and dates go before numbers so "15/03/2024" is not spelled
// digit group by digit group.
//
// # Options
//
// NewCleaner accepts options for behaviors that are off by default:
//
//	c := fonema.NewCleaner(
//	    fonema.WithEmoji(),              // "😀" becomes "emoji de cara sonriente"
//	    fonema.WithCodeAnnouncements(),  // fenced code becomes a spoken marker
//	)
//
// A Cleaner is safe for concurrent use.
//
// # Errors
//
// A stage fails only when its own processing panics. The failure is returned
// as a *TextCleaningError carrying the stage's code and phase; no partial
// output is returned. Match a specific stage with errors.Is:
//
//	if errors.Is(err, fonema.ErrNumberConversion) {
//	    // skip synthesis for this text
//	}
//
// # Segmenting
//
// Sections splits a Markdown article at its headings and SplitChunks packs
// cleaned text into sentence-aligned pieces that fit a synthesis request.
package fonema

package main

import (
	"errors"
	"fmt"
	"strconv"

	fonema "github.com/alnah/go-fonema"
)

// ErrInvalidNumber marks a number argument that is not an integer.
var ErrInvalidNumber = errors.New("not an integer")

// runNumber prints the Spanish words for each integer argument.
// All arguments are validated before anything is printed.
func runNumber(args []string, env *Environment) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: number needs at least one integer", ErrUsage)
	}

	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidNumber, a)
		}
		nums[i] = n
	}

	for _, n := range nums {
		fmt.Fprintln(env.Stdout, fonema.NumberToWords(n))
	}
	return nil
}

// runAbbrev prints the expansion of each token, or the whole table
// when no token is given.
func runAbbrev(args []string, env *Environment) error {
	if len(args) == 0 {
		for _, short := range fonema.Abbreviations() {
			fmt.Fprintf(env.Stdout, "%-6s %s\n", short, fonema.ExpandAbbreviation(short))
		}
		return nil
	}

	for _, tok := range args {
		fmt.Fprintln(env.Stdout, fonema.ExpandAbbreviation(tok))
	}
	return nil
}

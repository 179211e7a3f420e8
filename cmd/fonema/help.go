package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fonema <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  clean      Clean Markdown or text for speech synthesis")
	fmt.Fprintln(w, "  number     Spell integers as Spanish words")
	fmt.Fprintln(w, "  abbrev     Expand Spanish abbreviations")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'fonema help <command>' for details on a specific command.")
}

// printCleanUsage prints usage for the clean command.
func printCleanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fonema clean [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Clean Markdown or plain text into speakable Spanish.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .md, .markdown or .txt file, a directory, or - for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (stdin input: file)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto, max 32)")
	fmt.Fprintln(w, "      --format <s>          Output format: text, yaml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cleaning:")
	fmt.Fprintln(w, "      --emoji               Describe emoji in Spanish")
	fmt.Fprintln(w, "      --announce-code       Announce code blocks instead of dropping them")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Segments:")
	fmt.Fprintln(w, "      --sections            Split output at headings")
	fmt.Fprintln(w, "      --section-depth <n>   Deepest heading level that splits (1-6)")
	fmt.Fprintln(w, "      --chunk-bytes <n>     Max bytes per chunk (100-1048576)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  FONEMA_CONFIG, FONEMA_INPUT_DIR, FONEMA_OUTPUT_DIR, FONEMA_OUTPUT_FORMAT,")
	fmt.Fprintln(w, "  FONEMA_CLEANING_EMOJI, FONEMA_CLEANING_ANNOUNCE_CODE,")
	fmt.Fprintln(w, "  FONEMA_SECTIONS_ENABLED, FONEMA_SECTIONS_MAX_DEPTH,")
	fmt.Fprintln(w, "  FONEMA_CHUNKING_ENABLED, FONEMA_CHUNKING_MAX_BYTES, FONEMA_WORKERS")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "clean":
		printCleanUsage(env.Stdout)
	case "number":
		fmt.Fprintln(env.Stdout, "Usage: fonema number <n>...")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the Spanish words for each integer.")
	case "abbrev":
		fmt.Fprintln(env.Stdout, "Usage: fonema abbrev <token>...")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the expansion of each abbreviation, or the token unchanged.")
		fmt.Fprintln(env.Stdout, "Run without tokens to list every known abbreviation.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: fonema version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: fonema help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}

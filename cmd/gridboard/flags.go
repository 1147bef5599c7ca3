// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/gridboard-go/internal/config"
)

var (
	// Output options
	outputFile      = flag.String("o", "", "Output file (default: stdout)")
	appendOutput    = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput      = flag.Bool("J", false, "Output in JSON format")
	jsonPerBoard    = flag.Bool("Jsingle", false, "With -J, write one JSON document per board as it is processed")
	compactJSON     = flag.Bool("compact", false, "With -J, write JSON without indentation")
	colorOutput     = flag.Bool("color", false, "Colour pieces by side and legal destinations with ANSI escapes")
	layoutOutput    = flag.Bool("F", false, "Output layout text, one line per board")
	noLabels        = flag.Bool("nolabels", false, "Omit row numbers and column letters")
	emptySymbol     = flag.String("empty", "-", "Character for an empty cell")
	highlightSymbol = flag.String("mark", "*", "Character for a legal destination")

	// Board options
	inlineLayout = flag.String("b", "", "Board layout to process before any input files")
	startLayout  = flag.Bool("start", false, "Process the standard starting layout")
	boardRows    = flag.Int("rows", 0, "Required number of rows (0 = from layout)")
	boardColumns = flag.Int("columns", 0, "Required number of columns (0 = from layout)")
	movesFrom    = flag.String("moves", "", "Show legal destinations of the piece on this cell (e.g. e2)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate boards")
	exactMatch         = flag.Bool("exact", false, "Compare layout text when detecting duplicates")
	duplicateFile      = flag.String("d", "", "Output layouts of duplicates to this file")
	checkFile          = flag.String("c", "", "Check file of layouts already seen")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (no board count)")
	verbose   = flag.Bool("v", false, "Running commentary, one line per board")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("j", 1, "Number of worker goroutines (0 = one per CPU core)")

	// File input options
	fileListFile = flag.String("f", "", "File containing list of layout files to process (one per line)")
	// Note: -A flag is handled manually before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one per line, # for comments)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyBoardFlags(cfg)
	applyDuplicateFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Commentary
	}
	cfg.Workers = *workers
}

// applyOutputFlags configures the output format and symbols.
func applyOutputFlags(cfg *config.Config) {
	switch {
	case *jsonOutput:
		cfg.Output.Format = config.JSON
	case *layoutOutput:
		cfg.Output.Format = config.Layout
	default:
		cfg.Output.Format = config.Text
	}
	cfg.Output.JSONPerBoard = *jsonPerBoard
	cfg.Output.IndentJSON = !*compactJSON
	cfg.Output.Color = *colorOutput
	cfg.Output.ShowLabels = !*noLabels
	cfg.Output.EmptySymbol = symbolFlag(*emptySymbol)
	cfg.Output.HighlightSymbol = symbolFlag(*highlightSymbol)
}

// symbolFlag returns the single character of a symbol flag, or 0 when the
// value is not exactly one byte so that validation rejects it.
func symbolFlag(value string) byte {
	if len(value) != 1 {
		return 0
	}
	return value[0]
}

// applyBoardFlags configures board size and highlighting.
func applyBoardFlags(cfg *config.Config) {
	cfg.Board.Rows = *boardRows
	cfg.Board.Columns = *boardColumns
	cfg.Highlight = *movesFrom
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates || *duplicateFile != "" || *checkFile != ""
	cfg.Duplicate.ExactMatch = *exactMatch
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}

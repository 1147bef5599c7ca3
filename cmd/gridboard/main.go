// gridboard reads board layouts and prints them, optionally marking the
// legal destinations of one piece and suppressing duplicate boards.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/gridboard-go/internal/config"
	"github.com/lgbarn/gridboard-go/internal/hashing"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage

	// Arguments from an -A file are parsed before the command line ones so
	// that the command line can override them.
	positional, err := parseArgs(flag.CommandLine, loadArgsFromFileIfSpecified(), os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("gridboard version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	detector := setupDuplicateDetector(cfg)
	ctx := NewProcessingContext(cfg, detector)

	inline := *inlineLayout
	if inline == "" && *startLayout {
		inline = cfg.Board.DefaultLayout
	}
	items := collectInputs(inline, inputFiles(positional), os.Stdin, os.Stderr)
	stats, err := processItems(items, ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reportStatistics(cfg, detector, stats)
}

// inputFiles returns the files named by -f followed by the positional arguments.
func inputFiles(positional []string) []string {
	var files []string
	if *fileListFile != "" {
		listed, err := loadFileList(*fileListFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file list %s: %v\n", *fileListFile, err)
			os.Exit(1)
		}
		files = append(files, listed...)
	}
	return append(files, positional...)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// setupDuplicateDetector creates the duplicate detector and loads the check file.
func setupDuplicateDetector(cfg *config.Config) *hashing.ThreadSafeDuplicateDetector {
	if !cfg.Duplicate.Suppress {
		return nil
	}

	detector := hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)

	if *checkFile != "" {
		file, err := os.Open(*checkFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening check file %s: %v\n", *checkFile, err)
			os.Exit(1)
		}
		defer file.Close()

		items, err := readLayouts(file, *checkFile, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading check file %s: %v\n", *checkFile, err)
			os.Exit(1)
		}
		loaded := detector.LoadFromDetector(loadCheckLayouts(items, cfg))
		cfg.Logf(config.Summary, "Loaded %d board(s) from check file", loaded)
	}

	return detector
}

// reportStatistics writes the final board counts to the log.
func reportStatistics(cfg *config.Config, detector *hashing.ThreadSafeDuplicateDetector, stats Stats) {
	if detector != nil {
		cfg.Logf(config.Summary, "%d board(s) output, %d duplicate(s), %d error(s) out of %d.",
			stats.Output, stats.Duplicates, stats.Errors, stats.Total)
	} else {
		cfg.Logf(config.Summary, "%d board(s) output, %d error(s) out of %d.",
			stats.Output, stats.Errors, stats.Total)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: gridboard [options] [layout-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Reads board layouts, one per line, and prints each board.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nLayouts:\n")
	fmt.Fprintf(os.Stderr, "  Ranks top to bottom separated by '/', digits for empty runs,\n")
	fmt.Fprintf(os.Stderr, "  KQRBNP for light pieces, kqrbnp for dark, X or x for a wall.\n")
	fmt.Fprintf(os.Stderr, "  e.g. %s\n", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	fmt.Fprintf(os.Stderr, "\nOutput formats:\n")
	fmt.Fprintf(os.Stderr, "  text    Grid with row numbers and column letters (default)\n")
	fmt.Fprintf(os.Stderr, "  -J      JSON document with every board\n")
	fmt.Fprintf(os.Stderr, "  -F      Layout text, one board per line\n")
	fmt.Fprintf(os.Stderr, "  -color  Text with ANSI colours instead of -mark characters\n")
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
)

// loadArgsFromFileIfSpecified scans os.Args for -A and returns the arguments
// read from that file, or nil when -A is absent.
func loadArgsFromFileIfSpecified() []string {
	args := os.Args[1:]
	for i, arg := range args {
		var path string
		switch {
		case arg == "-A" || arg == "--A":
			if i+1 >= len(args) {
				return nil
			}
			path = args[i+1]
		case strings.HasPrefix(arg, "-A="):
			path = strings.TrimPrefix(arg, "-A=")
		case strings.HasPrefix(arg, "--A="):
			path = strings.TrimPrefix(arg, "--A=")
		default:
			continue
		}

		fileArgs, err := loadArgsFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading args file %s: %v\n", path, err)
			os.Exit(1)
		}
		return fileArgs
	}
	return nil
}

// parseArgs parses the args-file arguments and then the command-line ones
// into fs, so later flags override earlier ones. Flags may follow file names
// in either set; the file names of both are returned, args-file ones first.
func parseArgs(fs *flag.FlagSet, fileArgs, cmdArgs []string) ([]string, error) {
	files, err := parseInterspersed(fs, fileArgs)
	if err != nil {
		return nil, err
	}
	more, err := parseInterspersed(fs, cmdArgs)
	if err != nil {
		return nil, err
	}
	return append(files, more...), nil
}

// parseInterspersed parses args into fs, collecting non-flag arguments
// wherever they appear. Everything after "--" is a non-flag argument.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// loadArgsFile reads arguments from a file, one or more per line.
// Blank lines and lines starting with # are ignored; quotes group words.
func loadArgsFile(path string) ([]string, error) {
	lines, err := readListFile(path)
	if err != nil {
		return nil, err
	}
	var args []string
	for _, line := range lines {
		args = append(args, splitArgsLine(line)...)
	}
	return args, nil
}

// loadFileList reads input file names, one per line.
func loadFileList(path string) ([]string, error) {
	return readListFile(path)
}

// readListFile returns the trimmed non-blank, non-comment lines of a file.
func readListFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// splitArgsLine splits a line on spaces and tabs, keeping single- or
// double-quoted runs together.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}

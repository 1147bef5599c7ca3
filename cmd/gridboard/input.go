package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/gridboard-go/internal/worker"
)

// readLayouts reads one layout per line from r. Blank lines and lines
// starting with # are skipped. Items are numbered from first.
func readLayouts(r io.Reader, name string, first int) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			Source: fmt.Sprintf("%s:%d", name, lineNo),
			Text:   line,
			Index:  first + len(items),
		})
	}
	if err := scanner.Err(); err != nil {
		return items, fmt.Errorf("reading %s: %w", name, err)
	}
	return items, nil
}

// collectInputs gathers work items from the inline layout, the file list and
// the named files, falling back to stdin when none is given. Files that cannot
// be opened are reported and skipped.
func collectInputs(inline string, files []string, stdin io.Reader, errOut io.Writer) []worker.WorkItem {
	var items []worker.WorkItem
	if inline != "" {
		items = append(items, worker.WorkItem{Source: "-b", Text: inline})
	}

	if len(files) == 0 && inline == "" {
		got, err := readLayouts(stdin, "stdin", 0)
		if err != nil {
			fmt.Fprintf(errOut, "Error reading stdin: %v\n", err)
		}
		return got
	}

	for _, filename := range files {
		if filename == "-" {
			got, err := readLayouts(stdin, "stdin", len(items))
			if err != nil {
				fmt.Fprintf(errOut, "Error reading stdin: %v\n", err)
			}
			items = append(items, got...)
			continue
		}

		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(errOut, "Error opening file %s: %v\n", filename, err)
			continue
		}
		got, err := readLayouts(file, filename, len(items))
		if err != nil {
			fmt.Fprintf(errOut, "Error reading file %s: %v\n", filename, err)
		}
		items = append(items, got...)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
	}
	return items
}

// processor.go - Board processing and output functions
package main

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/gridboard-go/internal/config"
	"github.com/lgbarn/gridboard-go/internal/hashing"
	"github.com/lgbarn/gridboard-go/internal/layout"
	"github.com/lgbarn/gridboard-go/internal/output"
	"github.com/lgbarn/gridboard-go/internal/worker"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg      *config.Config
	detector *hashing.ThreadSafeDuplicateDetector // nil when duplicates are kept
	writer   output.BoardWriter
}

// Stats counts what happened to the processed boards.
type Stats struct {
	Total      int
	Output     int
	Duplicates int
	Errors     int
}

// NewProcessingContext creates a context writing to cfg.OutputFile in the
// configured format.
func NewProcessingContext(cfg *config.Config, detector *hashing.ThreadSafeDuplicateDetector) *ProcessingContext {
	return &ProcessingContext{
		cfg:      cfg,
		detector: detector,
		writer:   output.NewWriter(cfg.OutputFile, cfg),
	}
}

// processItems parses every item, on cfg.Workers goroutines when more than
// one, and writes the results in input order. Layout errors are logged and
// counted; a write error stops output and is returned.
func processItems(items []worker.WorkItem, ctx *ProcessingContext) (Stats, error) {
	cfg := ctx.cfg
	stats := Stats{Total: len(items)}

	opts := layout.Options{Rows: cfg.Board.Rows, Columns: cfg.Board.Columns}
	process := worker.LayoutProcessFunc(opts, cfg.Highlight)

	numWorkers := cfg.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}

	emit := func(result worker.ProcessResult) error {
		return handleResult(result, ctx, &stats)
	}

	var err error
	if numWorkers <= 1 {
		for _, item := range items {
			if err = emit(process(item)); err != nil {
				break
			}
		}
	} else {
		err = processParallel(items, process, numWorkers, emit)
	}

	if closeErr := ctx.writer.Close(); err == nil {
		err = closeErr
	}
	return stats, err
}

// processParallel feeds items to a worker pool. Results are consumed by a
// single goroutine and emitted in index order. The first emit error stops the
// pool so remaining layouts are not parsed.
func processParallel(items []worker.WorkItem, process worker.ProcessFunc, numWorkers int, emit func(worker.ProcessResult) error) error {
	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(numWorkers, bufferSize, process)
	pool.Start()

	go func() {
		for _, item := range items {
			if pool.IsStopped() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	return worker.InOrder(pool.Results(), func(result worker.ProcessResult) error {
		if err := emit(result); err != nil {
			pool.Stop()
			return err
		}
		return nil
	})
}

// handleResult writes one processed board, or routes it to the duplicate
// file or the log. Only write failures are returned.
func handleResult(result worker.ProcessResult, ctx *ProcessingContext, stats *Stats) error {
	cfg := ctx.cfg

	if result.Error != nil {
		stats.Errors++
		cfg.Logf(config.Summary, "%v", result.Error)
		return nil
	}

	if ctx.detector != nil && ctx.detector.CheckAndAdd(result.Grid) {
		stats.Duplicates++
		cfg.Logf(config.Commentary, "%s: duplicate", result.Source)
		if cfg.Duplicate.DuplicateFile != nil {
			if _, err := fmt.Fprintln(cfg.Duplicate.DuplicateFile, layout.Format(result.Grid)); err != nil {
				return fmt.Errorf("writing duplicate: %w", err)
			}
		}
		return nil
	}

	if err := ctx.writer.WriteBoard(result.Frame); err != nil {
		return fmt.Errorf("writing %s: %w", result.Source, err)
	}
	stats.Output++
	cfg.Logf(config.Commentary, "%s: %dx%d, %d piece(s)",
		result.Source, result.Grid.Rows(), result.Grid.Columns(), len(result.Grid.Pieces()))
	return nil
}

// loadCheckLayouts returns a detector that has seen every layout in items.
// Unparseable layouts are logged and skipped.
func loadCheckLayouts(items []worker.WorkItem, cfg *config.Config) *hashing.DuplicateDetector {
	seed := hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	opts := layout.Options{Rows: cfg.Board.Rows, Columns: cfg.Board.Columns}

	for _, item := range items {
		itemOpts := opts
		itemOpts.Source = item.Source
		g, err := layout.ParseWithOptions(item.Text, itemOpts)
		if err != nil {
			cfg.Logf(config.Summary, "%v", err)
			continue
		}
		seed.CheckAndAdd(g)
	}
	return seed
}

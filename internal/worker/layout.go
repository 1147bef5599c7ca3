package worker

import (
	"github.com/lgbarn/gridboard-go/internal/board"
	"github.com/lgbarn/gridboard-go/internal/errors"
	"github.com/lgbarn/gridboard-go/internal/layout"
	"github.com/lgbarn/gridboard-go/internal/output"
)

// LayoutProcessFunc returns a ProcessFunc that parses each item's layout
// into a fresh grid and wraps it in a frame. When highlight is non-empty it
// is read as notation against that grid, e.g. "e2", and the piece on the
// cell is highlighted.
func LayoutProcessFunc(opts layout.Options, highlight string) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Source: item.Source, Index: item.Index}

		itemOpts := opts
		itemOpts.Source = item.Source
		g, err := layout.ParseWithOptions(item.Text, itemOpts)
		if err != nil {
			result.Error = err
			return result
		}

		var at *board.Coordinate
		if highlight != "" {
			c, err := board.ParseCoordinate(highlight, g.Rows())
			if err != nil {
				result.Error = errors.Wrap(err, item.Source)
				return result
			}
			at = &c
		}

		f, err := output.NewFrame(item.Source, g, at)
		if err != nil {
			result.Error = errors.Wrap(err, item.Source)
			return result
		}
		result.Grid, result.Frame = g, f
		return result
	}
}

// InOrder consumes results and calls emit for each in Index order,
// holding back results that arrive early. Indices must be 0, 1, 2, ...
// without gaps. It stops at the first error returned by emit; remaining
// results are drained so workers are not blocked.
func InOrder(results <-chan ProcessResult, emit func(ProcessResult) error) error {
	pending := make(map[int]ProcessResult)
	next := 0
	var emitErr error

	for result := range results {
		if emitErr != nil {
			continue
		}
		pending[result.Index] = result
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if emitErr = emit(r); emitErr != nil {
				break
			}
		}
	}
	return emitErr
}

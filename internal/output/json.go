package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/gridboard-go/internal/board"
	"github.com/lgbarn/gridboard-go/internal/config"
	"github.com/lgbarn/gridboard-go/internal/layout"
	"github.com/lgbarn/gridboard-go/internal/pieces"
)

// JSONBoard represents a board in JSON format.
type JSONBoard struct {
	ID        string         `json:"id"`
	Source    string         `json:"source,omitempty"`
	Rows      int            `json:"rows"`
	Columns   int            `json:"columns"`
	Layout    string         `json:"layout"`
	Pieces    []JSONPiece    `json:"pieces"`
	Highlight *JSONHighlight `json:"highlight,omitempty"`
}

// JSONPiece represents a placed piece in JSON format.
type JSONPiece struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Side   string `json:"side,omitempty"` // "light" or "dark"
	Cell   string `json:"cell"`           // notation, e.g. "e2"
	Row    int    `json:"row"`
	Column int    `json:"column"`
}

// JSONHighlight lists a piece's legal destinations.
type JSONHighlight struct {
	From  string   `json:"from"`
	Moves []string `json:"moves"`
}

// JSONOutput holds multiple boards for array output.
type JSONOutput struct {
	Boards []*JSONBoard `json:"boards"`
}

// JSONWriter writes boards in JSON format.
// It buffers boards and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	indent bool
	boards []*JSONBoard
	single bool // If true, write each board immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches boards and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		indent: cfg.Output.IndentJSON,
		boards: make([]*JSONBoard, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each board immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	jw := NewJSONWriter(w, cfg)
	jw.single = true
	return jw
}

// WriteBoard buffers a board for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteBoard(f *Frame) error {
	jb := BoardToJSON(f)
	if jw.single {
		return jw.encode(jb)
	}

	jw.boards = append(jw.boards, jb)
	return nil
}

// Flush writes all buffered boards as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.boards) == 0 {
		return nil
	}

	err := jw.encode(&JSONOutput{Boards: jw.boards})

	// Clear buffer after writing
	jw.boards = jw.boards[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	if jw.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// BoardToJSON converts a frame to JSON format.
func BoardToJSON(f *Frame) *JSONBoard {
	g := f.Grid
	jb := &JSONBoard{
		ID:      g.ID().String(),
		Source:  f.Source,
		Rows:    g.Rows(),
		Columns: g.Columns(),
		Layout:  layout.Format(g),
		Pieces:  make([]JSONPiece, 0, g.Len()),
	}

	for _, p := range g.Pieces() {
		jb.Pieces = append(jb.Pieces, pieceToJSON(p, g.Rows()))
	}

	if f.Highlight != nil {
		from, _ := f.Highlight.Position()
		h := &JSONHighlight{From: from.Notation(g.Rows()), Moves: make([]string, 0)}
		for _, c := range f.Moves.Coordinates() {
			h.Moves = append(h.Moves, c.Notation(g.Rows()))
		}
		jb.Highlight = h
	}

	return jb
}

func pieceToJSON(p *board.Piece, rows int) JSONPiece {
	at, _ := p.Position()
	jp := JSONPiece{
		ID:     p.ID().String(),
		Symbol: string(p.Symbol()),
		Cell:   at.Notation(rows),
		Row:    at.Row,
		Column: at.Column,
	}
	if side, ok := pieces.SideOf(p); ok {
		jp.Side = side.String()
	}
	return jp
}

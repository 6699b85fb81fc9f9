package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/worker"
)

// ResultWriter is the interface for writing analysis results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single analysis result.
	WriteResult(r worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this also
	// writes any pending output.
	Close() error
}

// TextWriter writes one line per result.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes a result as a single line.
func (tw *TextWriter) WriteResult(r worker.ProcessResult) error {
	if r.Error != nil {
		_, err := fmt.Fprintf(tw.w, "line %d: error: %v\n", r.Line, r.Error)
		return err
	}
	s := r.Status
	_, err := fmt.Fprintf(tw.w, "line %d: %s to move, %d legal moves%s, pieces %d/%d, kings %d/%d%s\n",
		r.Line, s.ToMove, s.LegalMoves, captureNote(s), s.FirstPieces, s.SecondPieces,
		s.FirstKings, s.SecondKings, outcomeNote(s))
	return err
}

// Flush is a no-op; TextWriter writes immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

func captureNote(s engine.Status) string {
	if !s.MustCapture {
		return ""
	}
	return fmt.Sprintf(" (must capture, up to %d)", s.MaxCaptureSize)
}

func outcomeNote(s engine.Status) string {
	if !s.Terminal {
		return ""
	}
	return fmt.Sprintf(", game over: %s wins", s.Winner)
}

// JSONResult is one analysis result in JSON form.
type JSONResult struct {
	Line    int            `json:"line,omitempty"`
	Diagram string         `json:"diagram"`
	Status  *engine.Status `json:"status,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// JSONOutput holds every result for array output.
type JSONOutput struct {
	Results []JSONResult `json:"results"`
}

// ResultToJSON converts a worker result to its JSON form.
func ResultToJSON(r worker.ProcessResult) JSONResult {
	out := JSONResult{Line: r.Line, Diagram: r.Diagram}
	if r.Error != nil {
		out.Error = r.Error.Error()
		return out
	}
	status := r.Status
	out.Status = &status
	return out
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as one document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []JSONResult
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each result
// immediately, one JSON object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteResult buffers a result for JSON output (or writes immediately in
// single mode).
func (jw *JSONWriter) WriteResult(r worker.ProcessResult) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(ResultToJSON(r))
	}
	jw.results = append(jw.results, ResultToJSON(r))
	return nil
}

// Flush writes all buffered results as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})

	jw.results = jw.results[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

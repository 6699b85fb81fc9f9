package parser

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/worker"
)

// CommentPrefix starts a line that ReadDiagrams ignores.
const CommentPrefix = "#"

// ReadDiagrams reads one position diagram per line. Blank lines and lines
// starting with CommentPrefix are skipped. A line that does not parse still
// produces an item, with Err set and the line number recorded, so a batch
// reports every bad line instead of stopping at the first. The returned
// error is only for failures reading r.
func ReadDiagrams(r io.Reader) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, CommentPrefix) {
			continue
		}

		item := worker.WorkItem{Index: len(items), Line: lineNo, Diagram: text}
		pos, err := engine.ParseDiagram(text)
		if err != nil {
			item.Err = atLine(err, lineNo)
		} else {
			item.Position = pos
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return items, errors.Wrapf(err, "reading diagrams after line %d", lineNo)
	}
	return items, nil
}

// atLine records the source line on a diagram error. A location inside the
// diagram moves into the detail as a row and column.
func atLine(err error, line int) error {
	var pe *errors.ParseError
	if stderrors.As(err, &pe) {
		located := *pe
		if pe.Line > 0 {
			where := fmt.Sprintf("row %d", pe.Line)
			if pe.Column > 0 {
				where += fmt.Sprintf(" column %d", pe.Column)
			}
			located.Detail = where + ": " + pe.Detail
		}
		located.Line = line
		located.Column = 0
		return &located
	}
	return errors.Wrapf(err, "line %d", line)
}

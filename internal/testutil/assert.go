// Package testutil provides shared test utilities for the checkers-go project.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/checkers-go/internal/draughts"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		reportDiff(t, diff, msgAndArgs...)
	}
}

// AssertSameMoves compares two move sets ignoring enumeration order. The
// capture sequence inside each move is order-sensitive.
func AssertSameMoves(t *testing.T, got, want []draughts.Move, msgAndArgs ...interface{}) {
	t.Helper()
	opts := []cmp.Option{
		cmpopts.EquateEmpty(),
		cmpopts.SortSlices(moveLess),
	}
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		reportDiff(t, diff, msgAndArgs...)
	}
}

// AssertContainsMove fails unless want is one of moves.
func AssertContainsMove(t *testing.T, moves []draughts.Move, want draughts.Move, msgAndArgs ...interface{}) {
	t.Helper()
	for _, m := range moves {
		if m.Equal(want) {
			return
		}
	}
	msg := formatMessage(msgAndArgs...)
	if msg != "" {
		t.Errorf("%s: %v not found in %v", msg, want, moves)
	} else {
		t.Errorf("%v not found in %v", want, moves)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: unexpected error: %v", msg, err)
		} else {
			t.Errorf("unexpected error: %v", err)
		}
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: expected error but got nil", msg)
		} else {
			t.Error("expected error but got nil")
		}
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: %q does not contain %q", msg, got, substr)
		} else {
			t.Errorf("%q does not contain %q", got, substr)
		}
	}
}

// moveLess orders moves by origin, destination, then capture sequence so
// SortSlices gives a stable comparison.
func moveLess(a, b draughts.Move) bool {
	if a.From != b.From {
		return coordLess(a.From, b.From)
	}
	if a.To != b.To {
		return coordLess(a.To, b.To)
	}
	if len(a.Captures) != len(b.Captures) {
		return len(a.Captures) < len(b.Captures)
	}
	for i := range a.Captures {
		if a.Captures[i] != b.Captures[i] {
			return coordLess(a.Captures[i], b.Captures[i])
		}
	}
	return false
}

func coordLess(a, b draughts.Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

func reportDiff(t *testing.T, diff string, msgAndArgs ...interface{}) {
	t.Helper()
	msg := formatMessage(msgAndArgs...)
	if msg != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
	} else {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}

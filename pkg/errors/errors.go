package errors

import (
	"fmt"
	"io"
	"strings"
)

// LexError is the interface implemented by all clex errors.
type LexError interface {
	error // Embed the standard error interface
	Pos() Position
	Kind() string // e.g., "Lexical", "Syntax"
	// Message returns the specific error message without position info.
	Message() string
	Unwrap() error // For error wrapping support (errors.Is/As)
}

// --- Concrete Error Types ---

// LexicalError represents a recoverable lexical problem: an ERROR token in
// the output stream (invalid identifier, malformed number, unterminated
// string, unexpected character). The scan continues past it.
type LexicalError struct {
	Position
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Lexical Error at %d:%d: %s", e.Line, e.Column, e.Msg)
}
func (e *LexicalError) Pos() Position   { return e.Position }
func (e *LexicalError) Kind() string    { return "Lexical" }
func (e *LexicalError) Message() string { return e.Msg }
func (e *LexicalError) Unwrap() error   { return e.Cause }
func (e *LexicalError) CausedBy(cause error) *LexicalError {
	e.Cause = cause
	return e
}

// SyntaxError represents a fatal lexical failure that aborts the scan, such
// as an unterminated block comment at end of input.
type SyntaxError struct {
	Position
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error at %d:%d: %s", e.Line, e.Column, e.Msg)
}
func (e *SyntaxError) Pos() Position   { return e.Position }
func (e *SyntaxError) Kind() string    { return "Syntax" }
func (e *SyntaxError) Message() string { return e.Msg }
func (e *SyntaxError) Unwrap() error   { return e.Cause }
func (e *SyntaxError) CausedBy(cause error) *SyntaxError {
	e.Cause = cause
	return e
}

// --- Error Reporting ---

// DisplayErrors prints a list of clex errors to w in a user-friendly format,
// including the source line and a position marker.
func DisplayErrors(w io.Writer, errs []LexError) {
	if len(errs) == 0 {
		return
	}

	for _, err := range errs {
		pos := err.Pos()
		kind := err.Kind()
		msg := err.Message()

		var lines []string
		if pos.Source != nil {
			lines = pos.Source.Lines()
		}

		// Ensure line numbers are within bounds (1-based index)
		lineIdx := pos.Line - 1
		if lineIdx < 0 || lineIdx >= len(lines) {
			// Print a generic error if line info is invalid
			fmt.Fprintf(w, "%s Error: %s\n", kind, msg)
			continue
		}

		sourceLine := lines[lineIdx]
		trimmedLine := strings.TrimRight(sourceLine, "\r\n\t ")

		// Format: <Kind> Error at <Line>:<Column>: <Message>
		fmt.Fprintf(w, "%s Error at %d:%d: %s\n", kind, pos.Line, pos.Column, msg)

		// Print the source line and the marker line (^)
		fmt.Fprintf(w, "  %s\n", trimmedLine)
		marker := strings.Repeat(" ", pos.Column) + "^"
		fmt.Fprintf(w, "  %s\n", marker)
		fmt.Fprintln(w)
	}
}

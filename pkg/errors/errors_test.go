package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"clex/pkg/source"
)

func TestLexicalErrorFormatting(t *testing.T) {
	err := &LexicalError{
		Position: Position{Line: 3, Column: 7},
		Msg:      "Unexpected character: $",
	}
	if got := err.Error(); got != "Lexical Error at 3:7: Unexpected character: $" {
		t.Errorf("Error() wrong: %q", got)
	}
	if err.Kind() != "Lexical" || err.Message() != "Unexpected character: $" {
		t.Errorf("accessors wrong: kind=%q msg=%q", err.Kind(), err.Message())
	}
}

func TestSyntaxErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := (&SyntaxError{
		Position: Position{Line: 1, Column: 1},
		Msg:      "Unterminated block comment",
	}).CausedBy(cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestDisplayErrors(t *testing.T) {
	src := source.NewEvalSource("int x = 1;\nint $y;\n")
	errs := []LexError{
		&LexicalError{
			Position: Position{Line: 2, Column: 5, Source: src},
			Msg:      "Unexpected character: $",
		},
	}

	var buf bytes.Buffer
	DisplayErrors(&buf, errs)

	out := buf.String()
	if !strings.Contains(out, "Lexical Error at 2:5: Unexpected character: $") {
		t.Errorf("header missing: %q", out)
	}
	if !strings.Contains(out, "int $y;") {
		t.Errorf("source line missing: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("marker missing: %q", out)
	}
}

func TestDisplayErrorsOutOfRange(t *testing.T) {
	errs := []LexError{
		&SyntaxError{
			Position: Position{Line: 99, Column: 1},
			Msg:      "Unterminated block comment",
		},
	}

	var buf bytes.Buffer
	DisplayErrors(&buf, errs)

	if !strings.Contains(buf.String(), "Syntax Error: Unterminated block comment") {
		t.Errorf("expected generic rendering, got %q", buf.String())
	}
}

func TestDisplayErrorsEmpty(t *testing.T) {
	var buf bytes.Buffer
	DisplayErrors(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

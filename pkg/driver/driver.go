package driver

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"clex/pkg/errors"
	"clex/pkg/lexer"
	"clex/pkg/source"
)

// Options controls one tokenization run.
type Options struct {
	// StrictComments reports nested block comments as errors instead of
	// tracking them as balanced nesting.
	StrictComments bool
	// JSON emits the token listing as JSON instead of the line report.
	JSON bool
}

// Clex represents a tokenizer session. It carries the options shared by the
// file, expression and REPL entry points.
type Clex struct {
	opts Options
	out  io.Writer
	errw io.Writer
}

// New creates a session writing reports to stdout and diagnostics to stderr.
func New() *Clex {
	return &Clex{out: os.Stdout, errw: os.Stderr}
}

// NewWithOptions creates a session with explicit options.
func NewWithOptions(opts Options) *Clex {
	c := New()
	c.opts = opts
	return c
}

// SetOutput redirects the token report and diagnostics, mainly for tests.
func (c *Clex) SetOutput(out, errw io.Writer) {
	c.out = out
	c.errw = errw
}

// TokenizeSource scans one source file. The token slice always reflects
// whatever was produced, even when the scan ended fatally. Recoverable
// problems are returned both as ERROR tokens in the stream and as positioned
// errors for diagnostics display; fatal is non-nil only for an unterminated
// block comment.
func (c *Clex) TokenizeSource(src *source.SourceFile) (tokens []lexer.Token, lexErrs []errors.LexError, fatal error) {
	l := lexer.New(src.Content)
	if c.opts.StrictComments {
		l.SetCommentPolicy(lexer.NestedCommentsError)
	}

	tokens, fatal = l.Tokenize()

	for _, tok := range tokens {
		if tok.Kind != lexer.ERROR {
			continue
		}
		lexErrs = append(lexErrs, &errors.LexicalError{
			Position: errors.Position{Line: tok.Line, Column: tok.Column, Source: src},
			Msg:      tok.Value,
		})
	}
	if fatal != nil {
		if se, ok := fatal.(*errors.SyntaxError); ok {
			se.Source = src
			lexErrs = append(lexErrs, se)
		}
	}
	return tokens, lexErrs, fatal
}

// RunFile loads, tokenizes and reports one file. Returns false when the file
// could not be read or any lexical problem (recoverable or fatal) occurred.
func (c *Clex) RunFile(path string) bool {
	src, err := source.LoadFile(path)
	if err != nil {
		fmt.Fprintf(c.errw, "Failed to read file '%s': %s\n", path, err.Error())
		return false
	}
	return c.run(src)
}

// RunExpr tokenizes and reports a one-off expression string.
func (c *Clex) RunExpr(expr string) bool {
	return c.run(source.NewEvalSource(expr))
}

// RunRepl tokenizes one REPL line.
func (c *Clex) RunRepl(line string) bool {
	return c.run(source.NewReplSource(line))
}

func (c *Clex) run(src *source.SourceFile) bool {
	tokens, lexErrs, fatal := c.TokenizeSource(src)

	if c.opts.JSON {
		if err := WriteJSON(c.out, tokens); err != nil {
			fmt.Fprintf(c.errw, "Failed to encode tokens: %s\n", err.Error())
			return false
		}
	} else {
		DisplayTokens(c.out, tokens)
	}

	errors.DisplayErrors(c.errw, lexErrs)
	if fatal != nil {
		return false
	}
	return len(lexErrs) == 0
}

// DisplayTokens writes the fixed one-line-per-token report. ERROR tokens are
// rendered as diagnostics with their exact position.
func DisplayTokens(w io.Writer, tokens []lexer.Token) {
	for _, tok := range tokens {
		if tok.Kind == lexer.ERROR {
			fmt.Fprintf(w, "Error at line %d, column %d: %s\n", tok.Line, tok.Column, tok.Value)
			continue
		}
		fmt.Fprintf(w, "%-12s | Line %d, Col %d | '%s'\n", tok.Kind, tok.Line, tok.Column, tok.Value)
	}
}

// WriteJSON writes the token sequence as a JSON array.
func WriteJSON(w io.Writer, tokens []lexer.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if tokens == nil {
		tokens = []lexer.Token{}
	}
	return enc.Encode(tokens)
}

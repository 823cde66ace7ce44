package lexer

import (
	"fmt"

	"clex/pkg/errors"
)

// Lexer holds the state of one scan over one input. The input is kept as
// runes so columns count characters; state is local to the scan, so
// concurrent Tokenize calls on independent inputs are safe.
type Lexer struct {
	src      []rune
	cur      Cursor
	policy   CommentPolicy
	comments commentTracker
}

// New creates a Lexer over input with the default comment policy.
func New(input string) *Lexer {
	return &Lexer{src: []rune(input), cur: startCursor()}
}

// SetCommentPolicy selects how nested block comments are treated. Must be
// called before Tokenize.
func (l *Lexer) SetCommentPolicy(policy CommentPolicy) {
	l.policy = policy
}

// Pos returns the lexer's current position in the input.
func (l *Lexer) Pos() Cursor {
	return l.cur
}

// Tokenize is a convenience wrapper: scan input with the default policy.
func Tokenize(input string) ([]Token, error) {
	return New(input).Tokenize()
}

// rawMatch is one span claimed by a pattern rule, not yet validated into a
// final token. Its position is the span's start, captured before consumption.
type rawMatch struct {
	kind matchKind
	text string
	line int
	col  int
}

// Tokenize scans the whole input and returns the token sequence. Recoverable
// lexical problems appear in the stream as ERROR tokens; the only fatal
// condition is a block comment still open at end of input, in which case the
// tokens produced before the failure are returned alongside the error.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for l.cur.Offset < len(l.src) {
		if l.comments.depth() > 0 {
			if tok, ok := l.scanInComment(); ok {
				tokens = append(tokens, tok)
			}
			continue
		}

		m := l.nextRawMatch()
		switch m.kind {
		case matchWhitespace, matchLineComment:
			// Consumed but discarded; position already advanced.
		case matchCommentStart:
			l.comments.push(Cursor{Line: m.line, Col: m.col})
		default:
			tokens = append(tokens, validate(m))
		}
	}

	if l.comments.depth() > 0 {
		open := l.comments.outermost()
		return tokens, &errors.SyntaxError{
			Position: errors.Position{Line: open.Line, Column: open.Col},
			Msg:      fmt.Sprintf("Unclosed comment block starting at line %d, column %d", open.Line, open.Col),
		}
	}
	return tokens, nil
}

// nextRawMatch tries the pattern table in priority order at the cursor and
// consumes the winning span. The table ends with a catch-all rule, but if no
// rule matches (a lone newline is taken by the whitespace rule; everything
// else by the final `.`), a single character is consumed as unknown so the
// scan always advances.
func (l *Lexer) nextRawMatch() rawMatch {
	start := l.cur
	for _, r := range rules {
		if text, ok := matchAt(r.re, l.src, l.cur.Offset); ok {
			l.cur = l.cur.Advance(text)
			return rawMatch{kind: r.kind, text: string(text), line: start.Line, col: start.Col}
		}
	}
	one := l.src[l.cur.Offset : l.cur.Offset+1]
	l.cur = l.cur.Advance(one)
	return rawMatch{kind: matchUnknown, text: string(one), line: start.Line, col: start.Col}
}

// scanInComment handles one step while inside a block comment: only the
// start/end markers are recognized, everything else is discarded. Under the
// NestedCommentsError policy a nested opener yields an ERROR token.
func (l *Lexer) scanInComment() (Token, bool) {
	at := l.cur

	if l.lookingAt("/*") {
		outer := l.comments.outermost()
		l.comments.push(at)
		l.cur = l.cur.Advance([]rune("/*"))
		if l.policy == NestedCommentsError {
			msg := fmt.Sprintf("Nested comment detected at line %d, column %d (outer comment started at line %d, column %d)",
				at.Line, at.Col, outer.Line, outer.Col)
			return Token{Kind: ERROR, Value: msg, Line: at.Line, Column: at.Col}, true
		}
		return Token{}, false
	}

	if l.lookingAt("*/") {
		l.comments.pop()
		l.cur = l.cur.Advance([]rune("*/"))
		return Token{}, false
	}

	l.cur = l.cur.Advance(l.src[l.cur.Offset : l.cur.Offset+1])
	return Token{}, false
}

// lookingAt reports whether the input at the cursor starts with s.
func (l *Lexer) lookingAt(s string) bool {
	want := []rune(s)
	if l.cur.Offset+len(want) > len(l.src) {
		return false
	}
	for i, r := range want {
		if l.src[l.cur.Offset+i] != r {
			return false
		}
	}
	return true
}

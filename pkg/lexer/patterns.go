package lexer

import "github.com/dlclark/regexp2"

// matchKind is the raw classification a pattern assigns to a span before
// validation. It is internal: validation maps it to a final token Kind.
type matchKind int

const (
	matchWhitespace matchKind = iota
	matchCommentStart
	matchCommentEnd
	matchLineComment
	matchInvalidIdent
	matchInvalidNumber
	matchNumber
	matchString
	matchIdent
	matchOperator
	matchDelimiter
	matchUnknown
)

type rule struct {
	kind matchKind
	re   *regexp2.Regexp
}

// rules is the pattern table, tried in order at the cursor; the first rule
// that matches wins, so the order resolves ambiguity (e.g. "123abc" must be
// captured whole as an invalid identifier, not as NUMBER then IDENTIFIER).
// Every pattern is anchored with \A and is matched against the unconsumed
// tail of the input.
var rules = []rule{
	{matchWhitespace, pattern(`\A\s+`)},
	{matchCommentStart, pattern(`\A/\*`)},
	{matchCommentEnd, pattern(`\A\*/`)},
	{matchLineComment, pattern(`\A//.*`)},
	{matchInvalidIdent, pattern(`\A\d+[A-Za-z_][A-Za-z0-9_]*`)},
	{matchInvalidNumber, pattern(`\A\d+\.\d+\.\d+`)},
	{matchNumber, pattern(`\A\d+(?:\.\d+)?`)},
	// The closing quote is optional so an unterminated string is still one
	// raw match; an escaped quote does not close the literal.
	{matchString, pattern(`\A"(?:\\.|[^"\\\n])*"?`)},
	{matchIdent, pattern(`\A[A-Za-z_][A-Za-z0-9_]*`)},
	{matchOperator, pattern(`\A[+\-*/=<>!&|]+`)},
	{matchDelimiter, pattern(`\A[(){}\[\];,.]`)},
	{matchUnknown, pattern(`\A.`)},
}

func pattern(expr string) *regexp2.Regexp {
	return regexp2.MustCompile(expr, regexp2.None)
}

// matchAt tries re against the input tail starting at off and returns the
// matched runes. The patterns are anchored, so a hit always starts at off.
func matchAt(re *regexp2.Regexp, src []rune, off int) ([]rune, bool) {
	m, err := re.FindRunesMatch(src[off:])
	if err != nil || m == nil {
		return nil, false
	}
	return m.Runes(), true
}

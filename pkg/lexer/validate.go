package lexer

import (
	"fmt"
	"strings"
)

// validate maps a raw match to its final token: keyword/type resolution for
// identifiers, quote stripping and escape decoding for strings, and ERROR
// tokens for the malformed shapes the pattern table routes here.
func validate(m rawMatch) Token {
	tok := Token{Line: m.line, Column: m.col}

	switch m.kind {
	case matchInvalidIdent:
		return errorToken(fmt.Sprintf("Invalid identifier (starts with number): %s", m.text), m)
	case matchInvalidNumber:
		return errorToken(fmt.Sprintf("Invalid number format: %s", m.text), m)
	case matchIdent:
		tok.Kind = LookupIdent(m.text)
		tok.Value = m.text
	case matchNumber:
		tok.Kind = NUMBER
		tok.Value = m.text
	case matchString:
		if !terminated(m.text) {
			return errorToken("Unterminated string literal", m)
		}
		tok.Kind = STRING
		tok.Value = decodeEscapes(m.text[1 : len(m.text)-1])
	case matchOperator, matchCommentEnd:
		// A "*/" with no open comment is two operator characters.
		tok.Kind = OPERATOR
		tok.Value = m.text
	case matchDelimiter:
		tok.Kind = DELIMITER
		tok.Value = m.text
	default: // matchUnknown
		return errorToken(fmt.Sprintf("Unexpected character: %s", m.text), m)
	}
	return tok
}

func errorToken(msg string, m rawMatch) Token {
	return Token{Kind: ERROR, Value: msg, Line: m.line, Column: m.col}
}

// terminated reports whether a raw string match ends in a real closing
// quote. The pattern makes the closing quote optional, and a quote preceded
// by an odd run of backslashes is escaped, not closing.
func terminated(raw string) bool {
	if len(raw) < 2 || !strings.HasSuffix(raw, `"`) {
		return false
	}
	backslashes := 0
	for i := len(raw) - 2; i > 0 && raw[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 0
}

// decodeEscapes rewrites the supported escape sequences (\n \t \r \\ \" \')
// into their literal characters. An unsupported escape keeps the backslash
// and the following character unchanged.
func decodeEscapes(s string) string {
	var builder strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				builder.WriteByte('\n')
				i++
				continue
			case 't':
				builder.WriteByte('\t')
				i++
				continue
			case 'r':
				builder.WriteByte('\r')
				i++
				continue
			case '\\':
				builder.WriteByte('\\')
				i++
				continue
			case '"':
				builder.WriteByte('"')
				i++
				continue
			case '\'':
				builder.WriteByte('\'')
				i++
				continue
			}
		}
		builder.WriteByte(c)
	}
	return builder.String()
}

package lexer

import "testing"

func TestDecodeEscapes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{``, ``},
		{`plain`, `plain`},
		{`a\nb`, "a\nb"},
		{`\t\r`, "\t\r"},
		{`\\n`, `\n`}, // escaped backslash, then a literal n
		{`\"`, `"`},
		{`\'`, `'`},
		{`\q`, `\q`}, // unsupported escape kept literally
		{`trailing\`, `trailing\`},
		{`\ñ`, `\ñ`}, // unsupported multi-byte escape kept intact
	}
	for i, tt := range tests {
		if got := decodeEscapes(tt.input); got != tt.expected {
			t.Errorf("tests[%d] - decode %q wrong. expected=%q, got=%q",
				i, tt.input, tt.expected, got)
		}
	}
}

func TestTerminated(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{`""`, true},
		{`"abc"`, true},
		{`"abc`, false},
		{`"`, false},
		{`"abc\"`, false},   // closing quote is escaped
		{`"abc\\"`, true},   // escaped backslash, then a real closing quote
		{`"abc\\\"`, false}, // escaped backslash, then an escaped quote
	}
	for i, tt := range tests {
		if got := terminated(tt.raw); got != tt.expected {
			t.Errorf("tests[%d] - terminated(%q) wrong. expected=%v, got=%v",
				i, tt.raw, tt.expected, got)
		}
	}
}

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident    string
		expected Kind
	}{
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"return", RETURN},
		{"int", TYPE},
		{"float", TYPE},
		{"void", TYPE},
		{"x", IDENTIFIER},
		{"If", IDENTIFIER}, // keywords are case-sensitive
		{"integer", IDENTIFIER},
		{"_tmp", IDENTIFIER},
	}
	for i, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.expected {
			t.Errorf("tests[%d] - LookupIdent(%q) wrong. expected=%q, got=%q",
				i, tt.ident, tt.expected, got)
		}
	}
}

package lexer

// Kind classifies a token.
type Kind string

const (
	// Keywords
	IF     Kind = "IF"
	ELSE   Kind = "ELSE"
	WHILE  Kind = "WHILE"
	RETURN Kind = "RETURN"

	// TYPE covers the built-in type names (int, float, void).
	TYPE Kind = "TYPE"

	IDENTIFIER Kind = "IDENTIFIER"
	NUMBER     Kind = "NUMBER"
	STRING     Kind = "STRING"
	OPERATOR   Kind = "OPERATOR"
	DELIMITER  Kind = "DELIMITER"

	// ERROR is a pseudo-kind for recoverable lexical problems. Its Value
	// holds the diagnostic message instead of source text.
	ERROR Kind = "ERROR"
)

// Token is one classified unit of source text. Value is the text after
// validation: string literals have their quotes stripped and escapes decoded,
// ERROR tokens carry a human-readable message.
type Token struct {
	Kind   Kind   `json:"kind"`
	Value  string `json:"value"`
	Line   int    `json:"line"`   // 1-based
	Column int    `json:"column"` // 1-based, counted in characters
}

var keywords = map[string]Kind{
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"return": RETURN,
}

var typeNames = map[string]bool{
	"int":   true,
	"float": true,
	"void":  true,
}

// LookupIdent resolves an identifier against the keyword and type-name sets.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	if typeNames[ident] {
		return TYPE
	}
	return IDENTIFIER
}

package lexer

// Cursor is the scanner's position: a rune offset into the input plus the
// 1-based line and column of that offset. It is a plain value; Advance
// returns an updated copy so position arithmetic stays pure and testable.
type Cursor struct {
	Offset int // rune offset, 0-based
	Line   int // 1-based
	Col    int // 1-based, counted in characters
}

// startCursor is the position of the first character of any input.
func startCursor() Cursor {
	return Cursor{Offset: 0, Line: 1, Col: 1}
}

// Advance consumes text and returns the position of the character that
// follows it. A newline increments Line and resets Col to 1; the newline
// itself belongs to the line it terminates.
func (c Cursor) Advance(text []rune) Cursor {
	for _, r := range text {
		c.Offset++
		if r == '\n' {
			c.Line++
			c.Col = 1
		} else {
			c.Col++
		}
	}
	return c
}

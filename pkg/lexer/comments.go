package lexer

// CommentPolicy selects how a block-comment opener inside an already-open
// block comment is treated. The project's documentation historically
// described both behaviors, so both are implemented and selectable.
type CommentPolicy int

const (
	// NestedCommentsAllowed tracks depth so /* ... /* ... */ ... */ is one
	// fully balanced comment. This is the default.
	NestedCommentsAllowed CommentPolicy = iota

	// NestedCommentsError still tracks depth (the scan must stay balanced)
	// but reports each nested opener as an ERROR token.
	NestedCommentsError
)

// commentTracker records the stack of open block-comment start positions.
// Depth is never negative; a depth above zero at end of input is fatal.
type commentTracker struct {
	opens []Cursor
}

func (t *commentTracker) depth() int {
	return len(t.opens)
}

func (t *commentTracker) push(at Cursor) {
	t.opens = append(t.opens, at)
}

func (t *commentTracker) pop() {
	if len(t.opens) > 0 {
		t.opens = t.opens[:len(t.opens)-1]
	}
}

// outermost returns the position of the first unclosed opener.
func (t *commentTracker) outermost() Cursor {
	return t.opens[0]
}

package errors

import "clex/pkg/source"

// Position represents a specific location in the source code.
// Line and Column are 1-based for human-readability; Column counts
// characters (runes), not bytes.
type Position struct {
	Line   int                // 1-based line number
	Column int                // 1-based column number (rune index within the line)
	Source *source.SourceFile // Reference to the source file, may be nil
}

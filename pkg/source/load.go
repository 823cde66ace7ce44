package source

import (
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LoadFile reads a source file from disk. The content is decoded as UTF-8
// with an optional byte order mark stripped, so files saved by BOM-writing
// editors do not start with a spurious unexpected character.
func LoadFile(path string) (*SourceFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := unicode.UTF8BOM.NewDecoder()
	content, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return nil, err
	}
	return FromFile(path, string(content)), nil
}

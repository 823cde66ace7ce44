package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLines(t *testing.T) {
	sf := NewEvalSource("a\nb\nc")
	lines := sf.Lines()
	if len(lines) != 3 || lines[1] != "b" {
		t.Fatalf("Lines() wrong: %v", lines)
	}
	// Cached after the first call.
	if &sf.Lines()[0] != &lines[0] {
		t.Error("Lines() not cached")
	}
}

func TestDisplayPath(t *testing.T) {
	sf := NewSourceFile("prog.c", "/tmp/prog.c", "")
	if sf.DisplayPath() != "/tmp/prog.c" {
		t.Errorf("DisplayPath wrong: %q", sf.DisplayPath())
	}
	if !sf.IsFile() {
		t.Error("expected IsFile for a path-backed source")
	}

	repl := NewReplSource("x")
	if repl.DisplayPath() != "<repl>" || repl.IsFile() {
		t.Errorf("repl source metadata wrong: %q %v", repl.DisplayPath(), repl.IsFile())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.c")
	if err := os.WriteFile(path, []byte("int x = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sf, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if sf.Content != "int x = 1;\n" {
		t.Errorf("content wrong: %q", sf.Content)
	}
	if sf.Name != "prog.c" || sf.Path != path {
		t.Errorf("metadata wrong: name=%q path=%q", sf.Name, sf.Path)
	}
}

func TestLoadFileStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.c")
	if err := os.WriteFile(path, []byte("\xef\xbb\xbfint x;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sf, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if sf.Content != "int x;\n" {
		t.Errorf("BOM not stripped: %q", sf.Content)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.c")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

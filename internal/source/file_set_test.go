package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.sv", []byte("module m;\n  wire a;\nendmodule"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{9, LineCol{1, 10}}, // the '\n' itself belongs to line 1
		{10, LineCol{2, 1}},
		{12, LineCol{2, 3}},
		{20, LineCol{3, 1}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Fatalf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.sv", []byte("one\ntwo\nthree")))

	want := map[uint32]string{0: "", 1: "one", 2: "two", 3: "three", 4: ""}
	for n, line := range want {
		if got := f.GetLine(n); got != line {
			t.Fatalf("GetLine(%d) = %q, want %q", n, got, line)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		raw   []byte
		want  string
		flags FileFlags
	}{
		{"plain", []byte("a\nb"), "a\nb", 0},
		{"crlf", []byte("a\r\nb\r"), "a\nb\r", FileNormalizedCRLF},
		{"bom", []byte("\xEF\xBB\xBFwire"), "wire", FileHadBOM},
		{"utf16le", []byte{0xFF, 0xFE, 'b', 0, 'i', 0, 't', 0}, "bit", FileDecodedUTF16},
		{"utf16be", []byte{0xFE, 0xFF, 0, 'e', 0, 'n', 0, 'd'}, "end", FileDecodedUTF16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flags, err := Normalize(tt.raw)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("content = %q, want %q", got, tt.want)
			}
			if flags != tt.flags {
				t.Fatalf("flags = %b, want %b", flags, tt.flags)
			}
		})
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "top.sv")
	if err := os.WriteFile(path, []byte("module top;\r\nendmodule\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "module top;\nendmodule\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected CRLF flag")
	}
	if got := f.FormatPath("relative", fs.BaseDir()); got != "top.sv" {
		t.Fatalf("relative path = %q", got)
	}
	if _, ok := fs.GetByPath(path); !ok {
		t.Fatalf("GetByPath did not find %s", path)
	}
	if _, err := fs.Load(filepath.Join(dir, "missing.sv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 5}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Fatalf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Fatalf("Cover across files must be a no-op, got %v", got)
	}
	if !a.Cover(b).Contains(a) {
		t.Fatalf("cover must contain its input")
	}
}

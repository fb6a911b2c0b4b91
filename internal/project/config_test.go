package project

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"svast/internal/parser"
	"svast/internal/token"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestDefaultMatchesParser(t *testing.T) {
	cfg := Default()
	if cfg.Parse.MaxDepth != parser.DefaultMaxDepth {
		t.Fatalf("max depth = %d", cfg.Parse.MaxDepth)
	}
	if !cfg.Run.Cache || cfg.Run.Jobs != 0 {
		t.Fatalf("unexpected run defaults: %+v", cfg.Run)
	}
	stops, err := cfg.Parse.Stops()
	if err != nil {
		t.Fatalf("default stops: %v", err)
	}
	want := parser.DefaultStops()
	if !slices.Equal(stops.Symbols, want.Symbols) || !slices.Equal(stops.Keywords, want.Keywords) {
		t.Fatalf("stops = %+v, want %+v", stops, want)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[parse]\nmax_depth = 64\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Parse.MaxDepth != 64 {
		t.Fatalf("max depth = %d", cfg.Parse.MaxDepth)
	}
	if !slices.Equal(cfg.Parse.Extensions, Default().Parse.Extensions) {
		t.Fatalf("extensions = %v", cfg.Parse.Extensions)
	}
	if !cfg.Run.Cache {
		t.Fatalf("cache default lost")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `[parse]
extensions = [".v"]
stop_symbols = [";", ","]
stop_keywords = ["end", "endmodule"]

[run]
jobs = 3
cache = false
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Run.Jobs != 3 || cfg.Run.Cache {
		t.Fatalf("run = %+v", cfg.Run)
	}
	opts, err := cfg.Parse.ParserOptions(nil)
	if err != nil {
		t.Fatalf("ParserOptions: %v", err)
	}
	if opts.Stops == nil || !slices.Equal(opts.Stops.Symbols, []byte{';', ','}) {
		t.Fatalf("symbols = %+v", opts.Stops)
	}
	if !slices.Equal(opts.Stops.Keywords, []token.Keyword{token.KwEnd, token.KwEndmodule}) {
		t.Fatalf("keywords = %v", opts.Stops.Keywords)
	}
	if !cfg.Parse.HasExtension("a/b/top.v") || cfg.Parse.HasExtension("top.sv") {
		t.Fatalf("extension filter wrong")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[parse\n", "failed to parse TOML"},
		{"unknown key", "[parse]\ncolour = 1\n", "unknown key"},
		{"bad keyword", "[parse]\nstop_keywords = [\"while\"]\n", "not a keyword"},
		{"bad symbol", "[parse]\nstop_symbols = [\"::\"]\n", "not a symbol"},
		{"unlexed symbol", "[parse]\nstop_symbols = [\"$\"]\n", "not a symbol"},
		{"negative depth", "[parse]\nmax_depth = -1\n", "max_depth"},
		{"negative jobs", "[run]\njobs = -2\n", "jobs"},
		{"empty extensions", "[parse]\nextensions = []\n", "must not be empty"},
		{"bad extension", "[parse]\nextensions = [\"sv\"]\n", "extensions"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.body)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[run]\njobs = 2\n")
	nested := filepath.Join(root, "rtl", "core")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadManifest: ok=%v err=%v", ok, err)
	}
	if m.Root != root || m.Config.Run.Jobs != 2 {
		t.Fatalf("manifest = %+v", m)
	}
}

func TestFingerprintTracksParseSettings(t *testing.T) {
	a := Default().Parse
	b := Default().Parse
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("equal configs must share a fingerprint")
	}
	b.MaxDepth = 8
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("max depth must change the fingerprint")
	}
	c := Default().Parse
	c.StopKeywords = c.StopKeywords[:1]
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatalf("stop keywords must change the fingerprint")
	}
	var content Digest
	if Combine(content, a.Fingerprint()) == Combine(content, c.Fingerprint()) {
		t.Fatalf("combined keys must differ")
	}
}

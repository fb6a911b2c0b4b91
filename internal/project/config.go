package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"svast/internal/diag"
	"svast/internal/lexer"
	"svast/internal/parser"
	"svast/internal/token"
)

// Manifest is a located and decoded svast.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Parse ParseConfig `toml:"parse"`
	Run   RunConfig   `toml:"run"`
}

type ParseConfig struct {
	Extensions   []string `toml:"extensions"`
	MaxDepth     int      `toml:"max_depth"`
	StopSymbols  []string `toml:"stop_symbols"`
	StopKeywords []string `toml:"stop_keywords"`
}

type RunConfig struct {
	Jobs  int  `toml:"jobs"` // 0 means one per CPU
	Cache bool `toml:"cache"`
}

// Default returns the configuration used when no svast.toml exists.
func Default() Config {
	stops := parser.DefaultStops()
	cfg := Config{
		Parse: ParseConfig{
			Extensions: []string{".sv", ".svh"},
			MaxDepth:   parser.DefaultMaxDepth,
		},
		Run: RunConfig{Cache: true},
	}
	for _, s := range stops.Symbols {
		cfg.Parse.StopSymbols = append(cfg.Parse.StopSymbols, string(s))
	}
	for _, kw := range stops.Keywords {
		cfg.Parse.StopKeywords = append(cfg.Parse.StopKeywords, kw.String())
	}
	return cfg
}

// LoadManifest finds svast.toml above startDir and decodes it.
// ok is false when there is none.
func LoadManifest(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes path over the defaults and validates the result.
// Keys that are not set keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("parse", "extensions") && len(cfg.Parse.Extensions) == 0 {
		return Config{}, fmt.Errorf("%s: [parse].extensions must not be empty", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and stop names.
func (c Config) Validate() error {
	for _, ext := range c.Parse.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("[parse].extensions: %q must look like \".sv\"", ext)
		}
	}
	if c.Parse.MaxDepth < 0 {
		return fmt.Errorf("[parse].max_depth must not be negative, got %d", c.Parse.MaxDepth)
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("[run].jobs must not be negative, got %d", c.Run.Jobs)
	}
	_, err := c.Parse.Stops()
	return err
}

// Stops converts the configured names into a parser.StopSet.
func (c ParseConfig) Stops() (parser.StopSet, error) {
	var stops parser.StopSet
	for _, s := range c.StopSymbols {
		if len(s) != 1 || !lexer.IsSymbol(s[0]) {
			return parser.StopSet{}, fmt.Errorf("[parse].stop_symbols: %q is not a symbol", s)
		}
		stops.Symbols = append(stops.Symbols, s[0])
	}
	for _, name := range c.StopKeywords {
		kw, ok := token.LookupKeyword(name)
		if !ok {
			return parser.StopSet{}, fmt.Errorf("[parse].stop_keywords: %q is not a keyword", name)
		}
		stops.Keywords = append(stops.Keywords, kw)
	}
	return stops, nil
}

// ParserOptions builds parser options for this configuration.
func (c ParseConfig) ParserOptions(rep diag.Reporter) (parser.Options, error) {
	stops, err := c.Stops()
	if err != nil {
		return parser.Options{}, err
	}
	return parser.Options{Reporter: rep, MaxDepth: c.MaxDepth, Stops: &stops}, nil
}

// HasExtension reports whether path ends with a configured extension.
func (c ParseConfig) HasExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

package driver

import (
	"fmt"

	"svast/internal/diag"
	"svast/internal/lexer"
	"svast/internal/source"
	"svast/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it. Dropped characters are reported as
// info diagnostics.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	done := opts.Timer.Begin("load")
	fileID, err := fs.Load(path)
	opts.Timer.End(done, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	var tokens []token.Token
	opts.Timer.Measure("lex", func() {
		tokens = lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	})
	opts.logger().Debug("tokenized", "path", file.Path, "tokens", len(tokens), "diagnostics", bag.Len())

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

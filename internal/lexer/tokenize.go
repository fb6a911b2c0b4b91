package lexer

import (
	"svast/internal/source"
	"svast/internal/token"
)

// Tokenize lexes the whole file. The result always ends with exactly one EOF token.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	// rough guess: one token per five bytes
	toks := make([]token.Token, 0, len(file.Content)/5+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// TokenizeBytes lexes an in-memory buffer under a throwaway FileSet.
func TokenizeBytes(text []byte) []token.Token {
	fs := source.NewFileSet()
	return Tokenize(fs.Get(fs.AddVirtual("<input>", text)), Options{})
}

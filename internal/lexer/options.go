package lexer

import (
	"svast/internal/diag"
	"svast/internal/source"
)

type Options struct {
	// Reporter receives info-level notes about dropped input. May be nil,
	// in which case lexing is completely silent.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevInfo, sp, msg, nil)
	}
}

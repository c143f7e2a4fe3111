package lexer

import (
	"piuml/internal/diag"
	"piuml/internal/source"
)

// Options configures a Lexer instance.
type Options struct {
	// Reporter receives lexical diagnostics. Nil disables reporting.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
}

package diag

import (
	"svast/internal/source"
)

// Note points at a secondary location, e.g. where an unterminated construct began.
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

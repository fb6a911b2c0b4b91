package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"svast/internal/diag"
	"svast/internal/source"
)

type palette struct {
	err, warn, info, path, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty prints diagnostics in bag order (call bag.Sort() first). Each one is
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline under the span and,
// when enabled, its notes in the same layout.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			pal.path.Sprintf("%s:%d:%d", displayPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col),
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			d.Code.ID(),
			d.Message,
		)
		writeSnippet(w, fs, d.Primary, opts.Context, pal)
		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			ns, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s %s: %s\n",
				pal.note.Sprint("note:"),
				pal.path.Sprintf("%s:%d:%d", displayPath(fs, note.Span.File, opts.PathMode), ns.Line, ns.Col),
				note.Msg,
			)
		}
	}
}

func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, context int8, pal palette) {
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(sp)
	first := start.Line
	if back := uint32(max(context, 0)); back < first { // #nosec G115 -- non-negative
		first -= back
	} else {
		first = 1
	}
	width := len(fmt.Sprint(start.Line))
	for line := first; line <= start.Line; line++ {
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", width, line), f.GetLine(line))
	}

	text := f.GetLine(start.Line)
	from := int(start.Col) - 1
	if from > len(text) {
		from = len(text)
	}
	to := len(text)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(text))
	}
	n := max(to-from, 1)
	// keep tabs so the underline lines up with the source
	pad := strings.Map(func(r rune) rune {
		if r == '\t' {
			return '\t'
		}
		return ' '
	}, text[:from])
	fmt.Fprintf(w, "%s %s%s\n",
		pal.gutter.Sprintf("%*s |", width, ""),
		pad,
		pal.caret.Sprint("^"+strings.Repeat("~", n-1)),
	)
}

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	if mode == PathModeRelative {
		return f.FormatPath(mode.String(), fs.BaseDir())
	}
	return f.FormatPath(mode.String(), "")
}

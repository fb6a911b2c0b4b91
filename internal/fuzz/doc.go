// Package fuzztests houses Go fuzz harnesses for the lexer and parser.
// They guard against panics, hangs and invariant violations on arbitrary
// input; they do not generate corpora or touch the CLI.
package fuzztests

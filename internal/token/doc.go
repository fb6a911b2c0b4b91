// Package token defines lexical token kinds and the reserved-word set of the
// SystemVerilog subset understood by svast.
// Invariants:
//   - Token.Text is the exact source lexeme (no escape processing).
//   - Token.Span matches Text exactly (Start..End).
//   - Keyword is KwNone unless Kind == KindKeyword.
//   - Words the grammar does not model (task, parameter, initial, ...) are
//     plain identifiers.
package token

// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// The core pipeline never fails: lexing and parsing always yield a token
// stream and a tree. Diagnostics are therefore observations, not errors.
// They let callers see what the fault-tolerant pipeline silently did, for
// example which characters were dropped or which constructs ran out of input
// before their terminator keyword.
//
// Producers talk to a Reporter. BagReporter collects into a bounded Bag,
// which supports sorting, deduplication and severity queries. Rendering lives
// in internal/diagfmt.
package diag

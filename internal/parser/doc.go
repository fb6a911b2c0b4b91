// Package parser builds the structural tree from a token sequence.
//
// Parsing is total: any token sequence yields a *ast.Source. Recognised
// constructs (class, module, function, signal declarations, process
// blocks, if, case, begin/end) are decomposed; everything else inside a
// body becomes an opaque Statement and stray top-level tokens are skipped.
// Missing terminators end a construct early and clear its Terminated flag.
package parser

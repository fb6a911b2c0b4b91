// Package astenc converts trees to and from a tagged document form.
//
// A Doc renders to JSON with a "kind" tag and every field of its variant,
// lists as arrays (never null) and optional text omitted when absent. The
// same Doc round-trips through msgpack for the on-disk parse cache.
package astenc

import (
	"svast/internal/source"
)

// Doc is one encoded node. Which fields are meaningful depends on Kind.
type Doc struct {
	Kind string       `json:"kind" msgpack:"kind"`
	Span *source.Span `json:"span,omitempty" msgpack:"span,omitempty"`

	Name        string  `json:"name,omitempty" msgpack:"name,omitempty"`
	Extends     *string `json:"extends,omitempty" msgpack:"extends,omitempty"`
	Lifetime    string  `json:"lifetime,omitempty" msgpack:"lifetime,omitempty"`
	ReturnType  string  `json:"return_type,omitempty" msgpack:"ret,omitempty"`
	Direction   string  `json:"direction,omitempty" msgpack:"dir,omitempty"`
	DataType    string  `json:"data_type,omitempty" msgpack:"type,omitempty"`
	Width       *string `json:"width,omitempty" msgpack:"width,omitempty"`
	Process     string  `json:"process,omitempty" msgpack:"proc,omitempty"`
	Sensitivity *string `json:"sensitivity,omitempty" msgpack:"sens,omitempty"`
	Cond        string  `json:"cond,omitempty" msgpack:"cond,omitempty"`
	Expr        string  `json:"expr,omitempty" msgpack:"expr,omitempty"`
	Code        string  `json:"code,omitempty" msgpack:"code,omitempty"`

	Params []string `json:"params,omitempty" msgpack:"params,omitempty"`
	Ports  []string `json:"ports,omitempty" msgpack:"ports,omitempty"`
	Args   []string `json:"args,omitempty" msgpack:"args,omitempty"`
	Names  []string `json:"names,omitempty" msgpack:"names,omitempty"`

	// Items holds Source items and Class members.
	Items      []*Doc `json:"items,omitempty" msgpack:"items,omitempty"`
	Terminated bool   `json:"terminated,omitempty" msgpack:"term,omitempty"`

	Body *BlockDoc `json:"body,omitempty" msgpack:"body,omitempty"`
	Then *BlockDoc `json:"then,omitempty" msgpack:"then,omitempty"`
	Else *BlockDoc `json:"else,omitempty" msgpack:"else,omitempty"`
}

// BlockDoc is an encoded ast.Block.
type BlockDoc struct {
	Span       *source.Span `json:"span,omitempty" msgpack:"span,omitempty"`
	Items      []*Doc       `json:"items" msgpack:"items"`
	Terminated bool         `json:"terminated" msgpack:"term"`
}

// Options controls encoding.
type Options struct {
	// Spans records byte offsets for every node and block.
	Spans bool
}

package token

// Keyword enumerates the reserved words of the grammar.
type Keyword uint8

const (
	KwNone Keyword = iota

	KwClass
	KwEndclass
	KwModule
	KwEndmodule
	KwFunction
	KwEndfunction

	// process-block introducers
	KwAlways
	KwAlwaysFF
	KwAlwaysComb
	KwAlwaysLatch

	// port directions
	KwInput
	KwOutput
	KwInout

	// data types
	KwLogic
	KwWire
	KwReg
	KwBit
	KwInt
	KwInteger
	KwByte
	KwShortint
	KwLongint
	KwString

	// control flow
	KwIf
	KwElse
	KwCase
	KwEndcase
	KwBegin
	KwEnd

	keywordCount
)

var keywordNames = [keywordCount]string{
	KwNone:        "",
	KwClass:       "class",
	KwEndclass:    "endclass",
	KwModule:      "module",
	KwEndmodule:   "endmodule",
	KwFunction:    "function",
	KwEndfunction: "endfunction",
	KwAlways:      "always",
	KwAlwaysFF:    "always_ff",
	KwAlwaysComb:  "always_comb",
	KwAlwaysLatch: "always_latch",
	KwInput:       "input",
	KwOutput:      "output",
	KwInout:       "inout",
	KwLogic:       "logic",
	KwWire:        "wire",
	KwReg:         "reg",
	KwBit:         "bit",
	KwInt:         "int",
	KwInteger:     "integer",
	KwByte:        "byte",
	KwShortint:    "shortint",
	KwLongint:     "longint",
	KwString:      "string",
	KwIf:          "if",
	KwElse:        "else",
	KwCase:        "case",
	KwEndcase:     "endcase",
	KwBegin:       "begin",
	KwEnd:         "end",
}

var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, keywordCount)
	for kw := KwNone + 1; kw < keywordCount; kw++ {
		m[keywordNames[kw]] = kw
	}
	return m
}()

// LookupKeyword returns the keyword spelled exactly as ident.
// Matching is case sensitive: "Module" is an identifier.
func LookupKeyword(ident string) (Keyword, bool) {
	kw, ok := keywords[ident]
	return kw, ok
}

// Keywords returns every reserved word in declaration order.
func Keywords() []Keyword {
	out := make([]Keyword, 0, keywordCount-1)
	for kw := KwNone + 1; kw < keywordCount; kw++ {
		out = append(out, kw)
	}
	return out
}

func (kw Keyword) String() string {
	if kw >= keywordCount {
		return "Keyword(?)"
	}
	return keywordNames[kw]
}

// IsDataType reports whether kw opens a signal declaration.
func (kw Keyword) IsDataType() bool {
	return kw >= KwLogic && kw <= KwString
}

// IsProcess reports whether kw introduces an always-style process block.
func (kw Keyword) IsProcess() bool {
	return kw >= KwAlways && kw <= KwAlwaysLatch
}

// IsDirection reports whether kw is a port direction.
func (kw Keyword) IsDirection() bool {
	return kw >= KwInput && kw <= KwInout
}

// IsCloser reports whether kw ends a bounded construct.
func (kw Keyword) IsCloser() bool {
	switch kw {
	case KwEndclass, KwEndmodule, KwEndfunction, KwEnd, KwEndcase:
		return true
	default:
		return false
	}
}

// Terminator returns the keyword that closes a construct opened by kw,
// or KwNone when kw opens nothing.
func (kw Keyword) Terminator() Keyword {
	switch kw {
	case KwClass:
		return KwEndclass
	case KwModule:
		return KwEndmodule
	case KwFunction:
		return KwEndfunction
	case KwBegin:
		return KwEnd
	case KwCase:
		return KwEndcase
	default:
		return KwNone
	}
}

package token

// Kind represents the coarse category of a source token.
type Kind uint8

const (
	// Invalid is the zero value; the lexer never produces it.
	Invalid Kind = iota
	// EOF marks the end of the token stream.
	EOF
	// KindKeyword is a reserved word; Token.Keyword says which one.
	KindKeyword
	// Ident is an identifier, including unmodelled language keywords.
	Ident
	// Number is a decimal run or a sized literal such as 8'hFF.
	Number
	// String is a double-quoted literal including its quotes.
	String
	// Symbol is a single punctuation character.
	Symbol
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case KindKeyword:
		return "Keyword"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	default:
		return "Invalid"
	}
}

// IsWord reports whether tokens of this kind read as words, so two of them
// side by side need a separating space when re-joined.
func (k Kind) IsWord() bool {
	switch k {
	case KindKeyword, Ident, Number, String:
		return true
	default:
		return false
	}
}

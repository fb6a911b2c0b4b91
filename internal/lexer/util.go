package lexer

import (
	"strconv"
	"unicode/utf8"

	"fortio.org/safecast"
)

// bumpRune consumes one UTF-8 sequence, or a single byte if the input is not valid UTF-8.
func (lx *Lexer) bumpRune() {
	if lx.cursor.EOF() {
		return
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
		lx.cursor.Bump()
		return
	}
	_, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:lx.cursor.Limit])
	usz, err := safecast.Conv[uint32](sz)
	if err != nil || usz == 0 {
		usz = 1
	}
	lx.cursor.Advance(usz)
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b) || b == '$'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

func isRadix(b byte) bool {
	switch b {
	case 'h', 'H', 'd', 'D', 'b', 'B', 'o', 'O':
		return true
	}
	return false
}

// isRadixDigit accepts hex digits plus the four-state x/z/? and '_' separators.
func isRadixDigit(b byte) bool {
	return isDec(b) ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F') ||
		b == 'x' || b == 'X' || b == 'z' || b == 'Z' || b == '?' || b == '_'
}

func quoteBytes(b []byte) string {
	if utf8.Valid(b) {
		return strconv.Quote(string(b))
	}
	return strconv.Quote(string(b)) + " (invalid UTF-8)"
}

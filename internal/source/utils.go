package source

import (
	"bytes"
	"path/filepath"
	"slices"
	"sort"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// normalizeCRLF replaces every \r\n with \n; lone \r bytes are kept.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}
	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			continue
		}
		out = append(out, content[i])
	}
	return out, len(out) != len(content)
}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}) {
		return content[3:], true
	}
	return content, false
}

// decodeUTF16 transcodes BOM-marked UTF-16 (either endianness) into UTF-8.
// Vendor tools on Windows still emit UTF-16 netlists and headers.
func decodeUTF16(content []byte) ([]byte, bool, error) {
	if len(content) < 2 {
		return content, false, nil
	}
	le := content[0] == 0xFF && content[1] == 0xFE
	be := content[0] == 0xFE && content[1] == 0xFF
	if !le && !be {
		return content, false, nil
	}
	endian := unicode.LittleEndian
	if be {
		endian = unicode.BigEndian
	}
	dec := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, content)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)) // #nosec G115 -- file size checked by FileSet.Add
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// number of newlines strictly before off == 0-based line
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })
	var start uint32
	if line > 0 {
		start = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - start + 1} // #nosec G115 -- bounded by len(lineIdx)
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// BaseName returns the last element of path.
func BaseName(path string) string {
	return filepath.Base(path)
}

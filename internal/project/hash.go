package project

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"
)

// Digest is a fixed 256-bit hash, compatible with source.File.Hash.
type Digest [32]byte

// Combine builds H(content || part1 || part2 ...). Part order matters.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Fingerprint hashes every parse setting that changes the resulting tree,
// so cached trees are keyed by both content and configuration.
func (c ParseConfig) Fingerprint() Digest {
	h := sha256.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(max(c.MaxDepth, 0))) // #nosec G115 -- clamped to non-negative
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(strings.Join(c.StopSymbols, "\x00")))
	_, _ = h.Write([]byte{0xff})
	_, _ = h.Write([]byte(strings.Join(c.StopKeywords, "\x00")))
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

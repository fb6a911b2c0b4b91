package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"svast/internal/ast"
	"svast/internal/astenc"
	"svast/internal/diag"
	"svast/internal/project"
)

// Current schema version - increment when CachePayload or astenc.Doc change.
const cacheSchemaVersion uint16 = 1

// DiskCache stores parsed trees keyed by content and parse settings.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is one cached parse: the encoded tree with spans and every
// diagnostic the lexer and parser reported.
type CachePayload struct {
	Schema      uint16            `msgpack:"schema"`
	Tree        *astenc.Doc       `msgpack:"tree"`
	Diagnostics []diag.Diagnostic `msgpack:"diags"`
}

func newCachePayload(tree *ast.Source, diags []diag.Diagnostic) *CachePayload {
	return &CachePayload{
		Schema:      cacheSchemaVersion,
		Tree:        astenc.Encode(tree, astenc.Options{Spans: true}),
		Diagnostics: diags,
	}
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/app, falling back
// to ~/.cache/app.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate cache directory: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "trees", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload, replacing any previous entry atomically.
func (c *DiskCache) Put(key project.Digest, payload *CachePayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A missing entry is a miss, not an error.
func (c *DiskCache) Get(key project.Digest, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	return true, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.RemoveAll(filepath.Join(c.dir, "trees")); err != nil {
		return fmt.Errorf("failed to drop cache: %w", err)
	}
	return nil
}

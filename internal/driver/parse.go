package driver

import (
	"fmt"
	"log/slog"
	"time"

	"svast/internal/ast"
	"svast/internal/astenc"
	"svast/internal/diag"
	"svast/internal/lexer"
	"svast/internal/parser"
	"svast/internal/project"
	"svast/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Source
	Bag     *diag.Bag
	// Cached is set when the tree came from the disk cache.
	Cached bool
}

// Parse loads, lexes and parses a single file.
func Parse(path string, opts Options) (*ParseResult, error) {
	cfg := opts.config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fs := source.NewFileSet()
	done := opts.Timer.Begin("load")
	fileID, err := fs.Load(path)
	opts.Timer.End(done, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	var out fileOutput
	opts.Timer.Measure("parse", func() {
		out, err = parseFile(file, cfg.Parse, opts)
	})
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    out.tree,
		Bag:     out.bag,
		Cached:  out.cached,
	}, nil
}

type fileOutput struct {
	tree   *ast.Source
	bag    *diag.Bag
	cached bool
}

// parseFile produces the tree for an already loaded file, consulting the
// cache first. Diagnostics are collected unbounded so cache entries do not
// depend on MaxDiagnostics, then copied into the bounded result bag.
func parseFile(file *source.File, cfg project.ParseConfig, opts Options) (fileOutput, error) {
	log := opts.logger().With("path", file.Path)
	key := project.Combine(project.Digest(file.Hash), cfg.Fingerprint())

	if opts.Cache != nil {
		var payload CachePayload
		hit, err := opts.Cache.Get(key, &payload)
		if err != nil {
			log.Warn("cache read failed", "err", err)
		}
		if hit {
			if tree, diags, ok := payload.restore(file.ID, log); ok {
				log.Debug("cache hit", "items", len(tree.Items))
				return fileOutput{tree: tree, bag: bounded(diags, opts.MaxDiagnostics), cached: true}, nil
			}
		}
	}

	all := diag.NewBag(0)
	rep := diag.BagReporter{Bag: all}
	popts, err := cfg.ParserOptions(rep)
	if err != nil {
		return fileOutput{}, err
	}

	start := time.Now()
	toks := lexer.Tokenize(file, lexer.Options{Reporter: rep})
	tree := parser.Parse(toks, popts)
	log.Debug("parsed",
		"tokens", len(toks),
		"items", len(tree.Items),
		"diagnostics", all.Len(),
		"elapsed", time.Since(start))

	if opts.Cache != nil {
		payload := newCachePayload(tree, all.Items())
		if err := opts.Cache.Put(key, payload); err != nil {
			log.Warn("cache write failed", "err", err)
		}
	}
	return fileOutput{tree: tree, bag: bounded(all.Items(), opts.MaxDiagnostics)}, nil
}

func bounded(items []diag.Diagnostic, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, d := range items {
		bag.Add(d)
	}
	return bag
}

// restore decodes a cache payload and points its spans at file.
func (p *CachePayload) restore(file source.FileID, log *slog.Logger) (*ast.Source, []diag.Diagnostic, bool) {
	if p.Schema != cacheSchemaVersion || p.Tree == nil {
		return nil, nil, false
	}
	astenc.Rebase(p.Tree, file)
	tree, err := astenc.DecodeSource(p.Tree)
	if err != nil {
		log.Warn("discarding corrupt cache entry", "err", err)
		return nil, nil, false
	}
	diags := p.Diagnostics
	for i := range diags {
		diags[i].Primary.File = file
		for j := range diags[i].Notes {
			diags[i].Notes[j].Span.File = file
		}
	}
	return tree, diags, true
}

package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"svast/internal/ast"
	"svast/internal/diag"
	"svast/internal/project"
	"svast/internal/source"
)

// ParseDirResult is the outcome for one file of a directory parse.
type ParseDirResult struct {
	Path string
	// File is nil when the file could not be loaded; Bag then holds an
	// IOLoadFileError diagnostic pointing at an empty placeholder file.
	File   *source.File
	Tree   *ast.Source
	Bag    *diag.Bag
	Cached bool
}

// ListFiles returns the sorted paths under dir whose extension is listed
// in cfg. Hidden directories are skipped.
func ListFiles(dir string, cfg project.ParseConfig) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if cfg.HasExtension(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every matching file under dir in parallel. Results are
// in ListFiles order. A file that fails to load yields a result with an
// error diagnostic; only listing failures and cancellation return an error.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	cfg := opts.config()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log := opts.logger()

	fileSet := source.NewFileSetWithBase(dir)
	var files []string
	var err error
	opts.Timer.Measure("list", func() {
		files, err = ListFiles(dir, cfg.Parse)
	})
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		log.Info("no source files", "dir", dir, "extensions", cfg.Parse.Extensions)
		return fileSet, nil, nil
	}

	// FileSet is not safe for concurrent writes, so loading stays serial.
	loaded := make([]*source.File, len(files))
	loadErrors := make([]error, len(files))
	placeholders := make([]source.FileID, len(files))
	opts.Timer.Measure("load", func() {
		for i, path := range files {
			id, err := fileSet.Load(path)
			if err != nil {
				loadErrors[i] = err
				// an empty stand-in keeps the path printable in diagnostics
				placeholders[i] = fileSet.AddVirtual(path, nil)
				continue
			}
			loaded[i] = fileSet.Get(id)
		}
	})

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	jobs := cfg.Run.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	log.Debug("parsing directory", "dir", dir, "files", len(files), "jobs", jobs)

	// Each goroutine writes only its own index.
	results := make([]ParseDirResult, len(files))

	phase := opts.Timer.Begin("parse")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			emit(opts.Progress, Event{File: path, Status: StatusWorking})

			if loadErr := loadErrors[i]; loadErr != nil {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{File: placeholders[i]},
				})
				results[i] = ParseDirResult{Path: path, Bag: bag}
				log.Warn("load failed", "path", path, "err", loadErr)
				emit(opts.Progress, Event{File: path, Status: StatusError, Err: loadErr, Elapsed: time.Since(start)})
				return nil
			}

			out, err := parseFile(loaded[i], cfg.Parse, opts)
			if err != nil {
				return err
			}
			results[i] = ParseDirResult{
				Path:   path,
				File:   loaded[i],
				Tree:   out.tree,
				Bag:    out.bag,
				Cached: out.cached,
			}
			emit(opts.Progress, Event{File: path, Status: StatusDone, Cached: out.cached, Elapsed: time.Since(start)})
			return nil
		})
	}
	err = g.Wait()
	opts.Timer.End(phase, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

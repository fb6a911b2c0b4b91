package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"svast/internal/astenc"
	"svast/internal/diagfmt"
	"svast/internal/driver"
	"svast/internal/source"
)

func newParseCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.sv|directory>",
		Short: "Parse SystemVerilog sources and print their structural tree",
		Long: `Parse extracts the structural tree of a source file, or of every file with a
configured extension under a directory. Malformed input never fails: missing
terminators are reported as warnings and the partial tree is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, app, args[0])
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
	cmd.Flags().Bool("spans", false, "include byte spans in the output")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=config or auto)")
	cmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
	cmd.Flags().Bool("no-cache", false, "bypass the on-disk parse cache")
	return cmd
}

type parseFlags struct {
	format  string
	spans   bool
	noCache bool
	ui      uiMode
}

func readParseFlags(cmd *cobra.Command) (parseFlags, error) {
	var pf parseFlags
	var err error
	if pf.format, err = cmd.Flags().GetString("format"); err != nil {
		return pf, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch pf.format {
	case "pretty", "json", "yaml":
	default:
		return pf, fmt.Errorf("unknown format: %s", pf.format)
	}
	if pf.spans, err = cmd.Flags().GetBool("spans"); err != nil {
		return pf, fmt.Errorf("failed to get spans flag: %w", err)
	}
	if pf.noCache, err = cmd.Flags().GetBool("no-cache"); err != nil {
		return pf, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return pf, fmt.Errorf("failed to get ui flag: %w", err)
	}
	pf.ui, err = readUIMode(uiFlag)
	return pf, err
}

func runParse(cmd *cobra.Command, app *cliApp, target string) error {
	pf, err := readParseFlags(cmd)
	if err != nil {
		return err
	}
	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	cfg, err := app.loadConfig(cmd, target)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("jobs") {
		if cfg.Run.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}

	opts := app.driverOptions(cfg)
	if cfg.Run.Cache && !pf.noCache {
		cache, cacheErr := driver.OpenDiskCache("svast")
		if cacheErr != nil {
			app.logger.Warn("parse cache disabled", "err", cacheErr)
		} else {
			opts.Cache = cache
		}
	}

	if !st.IsDir() {
		return parseOneFile(cmd, app, target, opts, pf)
	}
	return parseDirectory(cmd, app, target, opts, pf)
}

func parseOneFile(cmd *cobra.Command, app *cliApp, path string, opts driver.Options, pf parseFlags) error {
	result, err := driver.Parse(path, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, app.prettyOpts())
	}

	out := cmd.OutOrStdout()
	switch pf.format {
	case "json":
		return diagfmt.FormatASTJSON(out, result.Tree, pf.spans)
	case "yaml":
		return diagfmt.FormatASTYAML(out, result.Tree, pf.spans)
	}
	var fs *source.FileSet
	if pf.spans {
		fs = result.FileSet
	}
	return diagfmt.FormatASTPretty(out, result.Tree, fs)
}

func parseDirectory(cmd *cobra.Command, app *cliApp, dir string, opts driver.Options, pf parseFlags) error {
	var (
		fs      *source.FileSet
		results []driver.ParseDirResult
		err     error
	)
	if shouldUseTUI(pf.ui) {
		files, listErr := driver.ListFiles(dir, opts.Config.Parse)
		if listErr != nil {
			return listErr
		}
		fs, results, err = runParseWithUI(cmd.Context(), "parsing "+dir, files, dir, opts)
	} else {
		fs, results, err = driver.ParseDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Bag.HasErrors() {
			failed++
		}
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			r.Bag.Sort()
			diagfmt.Pretty(cmd.ErrOrStderr(), r.Bag, fs, app.prettyOpts())
		}
	}

	out := cmd.OutOrStdout()
	if pf.format == "pretty" {
		err = writeDirPretty(out, fs, results, pf.spans, app.quiet)
	} else {
		err = writeDirDocument(out, pf.format, fs, results, pf.spans)
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be loaded", failed, len(results))
	}
	return nil
}

func displayPath(fs *source.FileSet, r driver.ParseDirResult) string {
	if r.File == nil {
		return r.Path
	}
	return r.File.FormatPath("relative", fs.BaseDir())
}

func writeDirPretty(out io.Writer, fs *source.FileSet, results []driver.ParseDirResult, spans, quiet bool) error {
	var spanSet *source.FileSet
	if spans {
		spanSet = fs
	}
	for idx, r := range results {
		if !quiet {
			if _, err := fmt.Fprintf(out, "== %s ==\n", displayPath(fs, r)); err != nil {
				return err
			}
		}
		if r.Tree != nil {
			if err := diagfmt.FormatASTPretty(out, r.Tree, spanSet); err != nil {
				return err
			}
		}
		if !quiet && idx < len(results)-1 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
	}
	return nil
}

type dirFile struct {
	Path   string      `json:"path" yaml:"path"`
	Cached bool        `json:"cached,omitempty" yaml:"cached,omitempty"`
	Tree   *astenc.Doc `json:"tree" yaml:"tree"`
}

type dirDocument struct {
	Files []dirFile `json:"files" yaml:"files"`
}

// writeDirDocument renders every tree of a directory parse as one JSON or
// YAML document.
func writeDirDocument(out io.Writer, format string, fs *source.FileSet, results []driver.ParseDirResult, spans bool) error {
	doc := dirDocument{Files: make([]dirFile, 0, len(results))}
	for _, r := range results {
		entry := dirFile{Path: displayPath(fs, r), Cached: r.Cached}
		if r.Tree != nil {
			entry.Tree = astenc.Encode(r.Tree, astenc.Options{Spans: spans})
		}
		doc.Files = append(doc.Files, entry)
	}
	if format == "yaml" {
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return err
		}
		return encoder.Close()
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

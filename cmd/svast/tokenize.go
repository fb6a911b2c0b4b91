package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svast/internal/diagfmt"
	"svast/internal/driver"
	"svast/internal/project"
)

func newTokenizeCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.sv",
		Short: "Tokenize a SystemVerilog source file",
		Long:  `Tokenize breaks a source file into keywords, identifiers, numbers, strings and symbols`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, app, args[0])
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, app *cliApp, filePath string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	result, err := driver.Tokenize(filePath, app.driverOptions(project.Default()))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// dropped characters are info notes; show them unless --quiet
	if result.Bag.Len() > 0 && !app.quiet {
		result.Bag.Sort()
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, app.prettyOpts())
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatTokensJSON(out, result.Tokens)
	}
	return diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
}

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"svast/internal/version"
)

// newRootCmd builds the command tree. Each call returns fresh flag state.
// The caller runs it through execute so teardown happens on every path.
func newRootCmd() (*cobra.Command, *cliApp) {
	app := &cliApp{}
	rootCmd := &cobra.Command{
		Use:   "svast",
		Short: "Structural AST extractor for SystemVerilog",
		Long: `svast lexes SystemVerilog sources and extracts a structural tree of
classes, modules, signals, functions, processes and control flow.`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
	}

	rootCmd.AddCommand(newTokenizeCmd(app))
	rootCmd.AddCommand(newParseCmd(app))
	rootCmd.AddCommand(newVersionCmd())

	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show per file")
	flags.String("log-level", "warn", "log level (debug|info|warn|error)")
	flags.String("log-file", "", "also write JSON logs to this file")
	flags.String("config", "", "path to svast.toml (default: search upwards from the input)")
	flags.String("cpu-profile", "", "write a CPU profile to this file")
	flags.String("mem-profile", "", "write a heap profile to this file on exit")
	flags.String("runtime-trace", "", "write a runtime trace to this file")
	return rootCmd, app
}

// execute runs the command and then releases profiles and log files,
// whether or not the command failed.
func execute(rootCmd *cobra.Command, app *cliApp) error {
	err := rootCmd.Execute()
	return errors.Join(err, app.teardown(rootCmd))
}

// main runs the CLI. If command execution returns an error, the process
// exits with status code 1.
func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

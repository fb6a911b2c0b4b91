package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"svast/internal/diagfmt"
	"svast/internal/driver"
	"svast/internal/logging"
	"svast/internal/observ"
	"svast/internal/prof"
	"svast/internal/project"
)

// cliApp carries state shared by every subcommand for one invocation.
type cliApp struct {
	logger   *slog.Logger
	closeLog func() error
	timer    *observ.Timer
	profile  *prof.Session
	color    bool
	quiet    bool
	maxDiag  int
}

func (a *cliApp) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readColorMode(colorFlag)
	if err != nil {
		return err
	}
	a.color = useColor(mode, os.Stderr)
	color.NoColor = !a.color

	if a.quiet, err = flags.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if a.maxDiag, err = flags.GetInt("max-diagnostics"); err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		a.timer = observ.NewTimer()
	}

	levelFlag, err := flags.GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	level, err := logging.ParseLevel(levelFlag)
	if err != nil {
		return err
	}
	logFile, err := flags.GetString("log-file")
	if err != nil {
		return fmt.Errorf("failed to get log-file flag: %w", err)
	}
	a.logger, a.closeLog, err = logging.New(logging.Options{
		Level:    level,
		Terminal: cmd.ErrOrStderr(),
		FilePath: logFile,
		RunID:    uuid.NewString(),
	})
	if err != nil {
		return err
	}
	return a.startProfiling(cmd)
}

func (a *cliApp) startProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Heap, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	a.profile, err = prof.Start(opts)
	return err
}

// teardown is safe to call when setup failed part way or never ran, and
// a second call does nothing.
func (a *cliApp) teardown(cmd *cobra.Command) error {
	if a.timer != nil && !a.quiet {
		fmt.Fprint(cmd.ErrOrStderr(), a.timer.Summary())
	}
	a.timer = nil
	profErr := a.profile.Stop()
	a.profile = nil
	if profErr != nil && a.logger != nil {
		a.logger.Warn("failed to finish profiling", "err", profErr)
	}
	closeLog := a.closeLog
	a.closeLog = nil
	if closeLog != nil {
		return errors.Join(profErr, closeLog())
	}
	return profErr
}

// loadConfig resolves --config or searches upwards from target.
func (a *cliApp) loadConfig(cmd *cobra.Command, target string) (project.Config, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if explicit != "" {
		a.logger.Debug("using config", "path", explicit)
		return project.LoadConfig(explicit)
	}

	start := target
	if st, statErr := os.Stat(target); statErr != nil || !st.IsDir() {
		start = filepath.Dir(target)
	}
	m, ok, err := project.LoadManifest(start)
	if err != nil {
		return project.Config{}, err
	}
	if !ok {
		a.logger.Debug("no manifest found, using defaults", "start", start)
		return project.Default(), nil
	}
	a.logger.Debug("using config", "path", m.Path)
	return m.Config, nil
}

func (a *cliApp) driverOptions(cfg project.Config) driver.Options {
	return driver.Options{
		Config:         cfg,
		MaxDiagnostics: a.maxDiag,
		Logger:         a.logger,
		Timer:          a.timer,
	}
}

func (a *cliApp) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     a.color,
		Context:   2,
		ShowNotes: !a.quiet,
	}
}

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on", "always":
		return colorOn, nil
	case "off", "never":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func useColor(mode colorMode, f *os.File) bool {
	switch mode {
	case colorOn:
		return true
	case colorOff:
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && isTerminal(f)
	}
}

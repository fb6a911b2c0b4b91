package driver

import (
	"log/slog"

	"svast/internal/observ"
	"svast/internal/project"
)

// Options configures a driver run. The zero value parses with
// project.Default settings, no cache and no logging.
type Options struct {
	Config project.Config
	// MaxDiagnostics bounds every per-file bag; 0 means unbounded.
	MaxDiagnostics int
	// Cache stores parsed trees between runs. May be nil.
	Cache    *DiskCache
	Logger   *slog.Logger
	Progress ProgressSink
	// Timer collects phase timings when non-nil.
	Timer *observ.Timer
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o Options) config() project.Config {
	if o.Config.Parse.Extensions == nil && o.Config.Parse.StopSymbols == nil && o.Config.Parse.StopKeywords == nil {
		return project.Default()
	}
	return o.Config
}

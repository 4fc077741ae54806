// Package janitor evicts old conversion artifacts from the output directory.
// It is a separate periodic job sharing only the directory path with the
// conversion core: started once at host init, stopped by context
// cancellation at shutdown.
package janitor

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Janitor deletes regular files under Dir whose names start with Prefix and
// whose modification time is older than MaxAge.
type Janitor struct {
	Dir      string
	Prefix   string
	MaxAge   time.Duration
	Interval time.Duration

	// StartDelay postpones the first sweep so the host finishes
	// initializing before any disk scanning starts.
	StartDelay time.Duration

	// Logger receives sweep summaries and per-file failures. Nil discards.
	Logger *slog.Logger
}

// Run sweeps every Interval until ctx is canceled. It blocks; run it on its
// own goroutine.
func (j *Janitor) Run(ctx context.Context) {
	if j.StartDelay > 0 {
		select {
		case <-time.After(j.StartDelay):
		case <-ctx.Done():
			return
		}
	}

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.Sweep(time.Now())
		case <-ctx.Done():
			return
		}
	}
}

/*
Sweep scans Dir once and removes expired artifacts, returning how many files
it deleted. Per-file failures are logged and skipped — a file that cannot be
statted or removed now will be retried on the next sweep. A missing directory
is not an error; there is simply nothing to clean.
*/
func (j *Janitor) Sweep(now time.Time) int {
	entries, err := os.ReadDir(j.Dir)
	if err != nil {
		if !os.IsNotExist(err) {
			j.logger().Warn("janitor: read output dir", "dir", j.Dir, "err", err)
		}
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), j.Prefix) {
			continue
		}

		path := filepath.Join(j.Dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			j.logger().Warn("janitor: stat artifact", "path", path, "err", err)
			continue
		}

		if now.Sub(info.ModTime()) <= j.MaxAge {
			continue
		}

		if err := os.Remove(path); err != nil {
			j.logger().Warn("janitor: remove artifact", "path", path, "err", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		j.logger().Info("janitor: removed expired artifacts",
			"dir", j.Dir, "count", removed)
	}
	return removed
}

func (j *Janitor) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.New(discardHandler{})
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

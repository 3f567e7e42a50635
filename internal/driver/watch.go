package driver

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
)

// ReportFunc receives the outcome of every run of Watch.
type ReportFunc func(*Result, error)

// Watch runs Generate once, then again whenever a Go file of the loaded
// packages or the custom parser directory changes, until ctx is done. Bursts
// of events within the debounce period trigger a single run. Failed runs are
// reported and watching continues.
func (d *Driver) Watch(ctx context.Context, report ReportFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating file watcher")
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	run := func() {
		res, err := d.Generate(ctx)
		report(res, err)

		for _, dir := range d.watchDirs(res) {
			if watched[dir] {
				continue
			}
			if err := watcher.Add(dir); err != nil {
				d.logger.Warnw("cannot watch directory", "dir", dir, "error", err)
				continue
			}
			watched[dir] = true
			d.logger.Debugw("watching", "dir", dir)
		}
	}

	run()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !d.relevant(event) {
				continue
			}

			d.logger.Debugw("source changed", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(d.debounce)
			} else {
				timer.Reset(d.debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			d.logger.Warnw("file watcher error", "error", err)

		case <-fire:
			fire = nil
			run()
		}
	}
}

// watchDirs lists the directories whose changes trigger a run. Before the
// first successful run only the working and custom directories are known.
func (d *Driver) watchDirs(res *Result) []string {
	var dirs []string
	if res != nil && res.Analysis != nil {
		dirs = append(dirs, res.Dirs...)
	} else {
		dirs = append(dirs, d.path("."))
	}

	if d.cfg.CustomDir != "" {
		dirs = append(dirs, d.path(d.cfg.CustomDir))
	}

	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if abs, err := filepath.Abs(dir); err == nil {
			out = append(out, abs)
		}
	}

	return out
}

// relevant reports whether event touches a Go source file outside the
// output directory.
func (d *Driver) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := event.Name
	if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
		return false
	}

	out, err := filepath.Abs(d.path(d.cfg.Output))
	if err != nil {
		return true
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return true
	}

	return filepath.Dir(abs) != out
}

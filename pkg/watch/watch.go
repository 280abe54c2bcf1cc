// Package watch reports edits to a configuration file. Bursts of file system
// events collapse into a single notification.
package watch

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when Config.Debounce is zero.
const DefaultDebounce = 150 * time.Millisecond

// Config configures a Watcher.
type Config struct {
	Path     string
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watcher watches one file through its parent directory, so editors that
// save by renaming a temp file over the original are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger

	fsw     *fsnotify.Watcher
	changes chan struct{}

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// New starts watching cfg.Path. Call Run to deliver events.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, errors.New("watch: path is required")
	}
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, err
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &Watcher{
		path:     abs,
		debounce: cfg.Debounce,
		logger:   cfg.Logger,
		fsw:      fsw,
		changes:  make(chan struct{}, 1),
	}, nil
}

// Changes ticks after the file settles following a write, create or rename.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Run delivers events until ctx is done or Stop is called.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("config file event", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			w.trigger()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Debug("fsnotify error", slog.String("err", err.Error()))
		}
	}
}

// Stop releases the underlying watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Reset(w.debounce)
		return
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()
	if stopped {
		return
	}
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

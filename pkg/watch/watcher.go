// Package watch reruns a job when any of a fixed set of files changes.
//
// Files are watched through their parent directories, so editors that save
// by writing a temporary file and renaming it over the original are seen.
// Bursts of events are debounced into a single run.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrAlreadyRunning is returned by Watch when the watcher is already active.
var ErrAlreadyRunning = errors.New("watcher already running")

// Config contains configuration for the file watcher.
type Config struct {
	// Paths are the files to watch.
	Paths []string

	// DebounceInterval is the quiet period after the last event before the
	// job runs (default: 100ms)
	DebounceInterval time.Duration

	// SkipHidden ignores events on dot files in the watched directories.
	SkipHidden bool
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() *Config {
	return &Config{
		DebounceInterval: 100 * time.Millisecond,
		SkipHidden:       true,
	}
}

// Watcher watches files for changes and runs a job after each burst.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *Config
	debounce *Debouncer

	// files holds the cleaned absolute path of every watched file.
	files map[string]bool

	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
}

// New creates a watcher. Nothing is watched until Watch is called.
func New(config *Config, logger *slog.Logger) (*Watcher, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.DebounceInterval <= 0 {
		config.DebounceInterval = DefaultConfig().DebounceInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	files := make(map[string]bool, len(config.Paths))
	for _, p := range config.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %q: %w", p, err)
		}
		files[filepath.Clean(abs)] = true
	}
	if len(files) == 0 {
		return nil, errors.New("no files to watch")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:  fsw,
		logger:   logger,
		config:   config,
		debounce: NewDebouncer(config.DebounceInterval),
		files:    files,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Watch blocks until the context is cancelled or Stop is called, running
// onChange after every debounced burst of changes. The path passed to
// onChange is the last file changed in the burst. Errors from onChange are
// logged and watching continues.
func (w *Watcher) Watch(ctx context.Context, onChange func(path string) error) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return ErrAlreadyRunning
	}
	w.running = true
	w.mu.Unlock()

	defer close(w.doneCh)

	for _, dir := range w.dirs() {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", dir, err)
		}
		w.logger.Debug("Watching directory", "path", dir)
	}

	w.logger.Info("File watcher started",
		"files", len(w.files),
		"debounce_ms", w.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("File watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("File watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !w.shouldProcessEvent(event) {
				continue
			}

			w.logger.Debug("File event detected",
				"path", event.Name,
				"op", event.Op.String(),
			)

			name := event.Name
			w.debounce.Trigger(func() {
				if err := onChange(name); err != nil {
					w.logger.Error("Rerun after change failed",
						"path", name,
						"error", err,
					)
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.logger.Error("File watcher error", "error", err)
		}
	}
}

// Stop ends a running Watch, cancels any pending run and releases the
// underlying watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	running := w.running
	w.mu.Unlock()

	var err error
	w.closeOnce.Do(func() {
		close(w.stopCh)
		if running {
			<-w.doneCh
		}
		w.debounce.Stop()
		if cerr := w.watcher.Close(); cerr != nil {
			err = fmt.Errorf("failed to close watcher: %w", cerr)
		}
	})
	return err
}

// dirs returns the distinct parent directories of the watched files.
func (w *Watcher) dirs() []string {
	seen := map[string]bool{}
	var out []string
	for f := range w.files {
		dir := filepath.Dir(f)
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	return out
}

// shouldProcessEvent reports whether event concerns a watched file.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if w.config.SkipHidden && strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[filepath.Clean(abs)]
}

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"vyper-hq/vast/pkg/telemetry/logging"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()
	w, err := New(&Config{Paths: []string{filepath.Join(dir, "tree.json")}}, logging.Discard())
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	defer func() { _ = w.Stop() }()

	if w.config.DebounceInterval != 100*time.Millisecond {
		t.Errorf("DebounceInterval = %v, want default 100ms", w.config.DebounceInterval)
	}
	if len(w.files) != 1 {
		t.Errorf("files = %d, want 1", len(w.files))
	}
}

func TestNew_NoPaths(t *testing.T) {
	if _, err := New(DefaultConfig(), nil); err == nil {
		t.Error("New() with no paths expected error")
	}
}

func TestWatcher_Watch(t *testing.T) {
	dir := t.TempDir()
	tree := filepath.Join(dir, "tree.json")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(tree, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	config := DefaultConfig()
	config.Paths = []string{tree}
	config.DebounceInterval = 50 * time.Millisecond

	w, err := New(config, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Stop() }()

	var runs atomic.Int32
	changed := make(chan string, 10)
	onChange := func(path string) error {
		runs.Add(1)
		changed <- path
		return errors.New("rerun failures are only logged")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = w.Watch(ctx, onChange)
	}()

	// Wait for watcher to start
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(tree, []byte(`{"n": 1}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case path := <-changed:
		if filepath.Base(path) != "tree.json" {
			t.Errorf("onChange(%q), want tree.json", path)
		}
	case <-time.After(time.Second):
		t.Fatal("onChange not called after file modification")
	}

	// The burst is debounced into one run.
	time.Sleep(150 * time.Millisecond)
	if got := runs.Load(); got != 1 {
		t.Errorf("onChange called %d times, want 1", got)
	}
}

func TestWatcher_DoubleStart(t *testing.T) {
	dir := t.TempDir()
	w, err := New(&Config{Paths: []string{filepath.Join(dir, "tree.json")}}, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = w.Watch(ctx, func(string) error { return nil })
	}()
	time.Sleep(50 * time.Millisecond)

	if err := w.Watch(ctx, func(string) error { return nil }); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Watch() error = %v, want ErrAlreadyRunning", err)
	}
}

func TestWatcher_Stop(t *testing.T) {
	dir := t.TempDir()
	w, err := New(&Config{Paths: []string{filepath.Join(dir, "tree.json")}}, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- w.Watch(context.Background(), func(string) error { return nil })
	}()
	time.Sleep(50 * time.Millisecond)

	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch() did not return after Stop()")
	}

	// A second Stop is a no-op.
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}

func TestWatcher_ShouldProcessEvent(t *testing.T) {
	dir := t.TempDir()
	tree := filepath.Join(dir, "tree.json")
	w, err := New(&Config{Paths: []string{tree}, SkipHidden: true}, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Stop() }()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: tree, Op: fsnotify.Write}, true},
		{"rename over", fsnotify.Event{Name: tree, Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: tree, Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(dir, "other.json"), Op: fsnotify.Write}, false},
		{"hidden swap file", fsnotify.Event{Name: filepath.Join(dir, ".tree.json.swp"), Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.shouldProcessEvent(tt.event); got != tt.want {
				t.Errorf("shouldProcessEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestDebouncer_Trigger(t *testing.T) {
	debouncer := NewDebouncer(100 * time.Millisecond)
	defer debouncer.Stop()

	var calls atomic.Int32
	var last atomic.Int32
	for i := 0; i < 5; i++ {
		n := int32(i)
		debouncer.Trigger(func() {
			calls.Add(1)
			last.Store(n)
		})
		time.Sleep(20 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("callback called %d times, want 1", got)
	}
	if got := last.Load(); got != 4 {
		t.Errorf("ran callback %d, want the last one (4)", got)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	debouncer := NewDebouncer(100 * time.Millisecond)

	var calls atomic.Int32
	debouncer.Trigger(func() { calls.Add(1) })
	debouncer.Stop()
	debouncer.Trigger(func() { calls.Add(1) })

	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("callback called %d times after Stop(), want 0", got)
	}
}

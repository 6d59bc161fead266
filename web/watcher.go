package web

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherSubscriber receives file change notifications.
type WatcherSubscriber interface {
	OnFileChange(path string)
}

// Watcher watches a single file (via its directory, so the atomic
// temp-then-rename writes the store performs are still seen) and notifies
// subscribers with a short debounce.
type Watcher struct {
	fsw  *fsnotify.Watcher
	file string

	mu   sync.Mutex
	subs []WatcherSubscriber

	debounceMu sync.Mutex
	pending    *time.Timer

	stopCh chan struct{}
}

// NewWatcher creates a watcher for the given file path.
func NewWatcher(file string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsw:    fsw,
		file:   filepath.Clean(file),
		stopCh: make(chan struct{}),
	}, nil
}

// Subscribe adds a subscriber.
func (w *Watcher) Subscribe(sub WatcherSubscriber) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subs = append(w.subs, sub)
}

// Start begins watching. The containing directory must exist.
func (w *Watcher) Start() error {
	if err := w.fsw.Add(filepath.Dir(w.file)); err != nil {
		return err
	}
	go w.run()
	return nil
}

// Stop stops watching.
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.file {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.notifyDebounced()
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.stopCh:
			return
		}
	}
}

// notifyDebounced coalesces the burst of events a single save produces.
func (w *Watcher) notifyDebounced() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(100*time.Millisecond, func() {
		w.mu.Lock()
		subs := append([]WatcherSubscriber(nil), w.subs...)
		w.mu.Unlock()
		for _, s := range subs {
			s.OnFileChange(w.file)
		}
	})
}

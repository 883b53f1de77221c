package table

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/glyphnote/errors"
	"github.com/teranos/glyphnote/logger"
)

// DefaultDebounce collapses the burst of events editors emit for one save.
const DefaultDebounce = 250 * time.Millisecond

// ReloadCallback is called with each newly loaded table.
type ReloadCallback func(*Table)

// Watcher keeps a table loaded from a file and swaps in a fresh one whenever
// the file changes. Each table it hands out is immutable; a reload replaces
// the whole table, never edits one in place.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	current  atomic.Pointer[Table]
	debounce time.Duration
	log      *zap.SugaredLogger
	load     func(string) (*Table, error)

	// held across load, compare and store
	reloadMu sync.Mutex

	mu            sync.Mutex
	debounceTimer *time.Timer
	callbacks     []ReloadCallback
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits after the last file event
// before reloading.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithWatcherLogger sets the logger. The default is the package-global logger
// named "table.watcher".
func WithWatcherLogger(l *zap.SugaredLogger) WatcherOption {
	return func(w *Watcher) {
		w.log = l
	}
}

// NewWatcher loads path and starts listening for changes to it. The initial
// load must succeed; later failures keep the previous table.
//
// The parent directory is watched rather than the file itself so that editors
// which save by renaming a temp file over the original are still seen.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	path = filepath.Clean(path)

	t, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", path)
	}

	w := &Watcher{
		path:     path,
		watcher:  fw,
		debounce: DefaultDebounce,
		load:     LoadFile,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.log == nil {
		w.log = logger.ComponentLogger("table.watcher")
	}
	w.current.Store(t)

	return w, nil
}

// Table returns the most recently loaded table.
func (w *Watcher) Table() *Table {
	return w.current.Load()
}

// OnReload registers a callback to be called after each successful reload
func (w *Watcher) OnReload(callback ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// Only reload on Write or Create events
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.log.Debugw("Table file changed",
				logger.FieldPath, event.Name,
				logger.FieldOp, event.Op.String())
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Table watcher error", logger.FieldError, err)
		}
	}
}

// Close stops watching. Run returns once the event channels drain.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	t, err := w.load(w.path)
	if err != nil {
		w.log.Warnw("Table reload failed, keeping previous table",
			logger.FieldPath, w.path,
			logger.FieldError, err)
		return
	}

	prev := w.current.Load()
	if prev != nil && prev.Digest() == t.Digest() {
		return
	}
	w.current.Store(t)

	w.log.Infow("Table reloaded",
		logger.FieldPath, w.path,
		logger.FieldEntries, t.Len(),
		logger.FieldDigest, t.Digest())

	w.mu.Lock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, callback := range callbacks {
		callback(t)
	}
}

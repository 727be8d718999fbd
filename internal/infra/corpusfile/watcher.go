package corpusfile

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the engine when the corpus file changes on disk. It
// watches the parent directory rather than the file itself so atomic
// write-then-rename saves (including our own) keep being observed.
type Watcher struct {
	fw     *fsnotify.Watcher
	path   string
	reload func(context.Context) error
	logger *slog.Logger

	done     chan struct{}
	stopOnce sync.Once
}

// debounceInterval absorbs the event bursts editors and renames produce.
const debounceInterval = 100 * time.Millisecond

// Watch starts monitoring the corpus file and invokes reload after each
// change. Stop must be called to release the underlying watcher.
func Watch(path string, reload func(context.Context) error, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:     fw,
		path:   abs,
		reload: reload,
		logger: logger.With("component", "faq.corpuswatcher"),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	var timer *time.Timer
	fire := make(chan struct{}, 1)
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceInterval, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			if err := w.reload(context.Background()); err != nil {
				w.logger.Warn("corpus reload failed", "error", err)
			} else {
				w.logger.Info("corpus reloaded", "path", w.path)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("corpus watcher error", "error", err)
		}
	}
}

// Stop terminates the watcher goroutine and closes the file watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.fw.Close()
	})
}

package assets

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports texture files changing on disk. It only observes; the
// owner drains Changed on its own thread and decides what to reload.
type Watcher struct {
	Changed chan string // texture paths relative to the watched dir

	fw        *fsnotify.Watcher
	dir       string
	done      chan struct{}
	closeOnce sync.Once
}

// WatchDir starts watching a directory for image file writes.
func WatchDir(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		Changed: make(chan string, 16),
		fw:      fw,
		dir:     dir,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if !isImageFile(ev.Name) {
				continue
			}
			rel, err := filepath.Rel(w.dir, ev.Name)
			if err != nil {
				rel = filepath.Base(ev.Name)
			}
			// Drop the event if the channel is full rather than stall
			select {
			case w.Changed <- rel:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.Warn("texture watcher error", "err", err)
		case <-w.done:
			return
		}
	}
}

func isImageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// Close stops the watcher. Idempotent.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
		w.fw.Close()
	})
}

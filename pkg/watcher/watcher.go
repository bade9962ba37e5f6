// Package watcher delivers change notifications for a single folder.
package watcher

import (
	"sync"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// relevant are the operations that can change what a mirror pair sees
const relevant = fsnotify.Create | fsnotify.Remove | fsnotify.Rename | fsnotify.Chmod | fsnotify.Write

// Notifier watches one folder, non-recursively. Starting a new watch
// replaces the previous one.
type Notifier struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	root    string
	logger  zerolog.Logger
}

// New creates an idle notifier
func New() *Notifier {
	return &Notifier{logger: logging.GetLogger("watcher")}
}

// Start watches root and calls onChange for every relevant event. onChange
// runs on the notifier's goroutine and should return quickly.
func (n *Notifier) Start(root string, onChange func()) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatch, "failed to create watcher")
	}
	if err := w.Add(root); err != nil {
		_ = w.Close()
		return errors.Wrapf(err, errors.ErrWatch, "failed to watch %s", root).
			WithDetail("path", root)
	}

	n.watcher = w
	n.root = root
	go n.loop(w, root, onChange)

	n.logger.Debug().Str("path", root).Msg("Watching folder")
	return nil
}

// Stop ends the current watch, if any
func (n *Notifier) Stop() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stopLocked()
}

// Root returns the folder being watched, or "" when idle
func (n *Notifier) Root() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.root
}

func (n *Notifier) stopLocked() error {
	if n.watcher == nil {
		return nil
	}
	err := n.watcher.Close()
	n.logger.Debug().Str("path", n.root).Msg("Stopped watching folder")
	n.watcher = nil
	n.root = ""
	if err != nil {
		return errors.Wrap(err, errors.ErrWatch, "failed to stop watcher")
	}
	return nil
}

func (n *Notifier) loop(w *fsnotify.Watcher, root string, onChange func()) {
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if !event.Has(relevant) {
				continue
			}
			n.logger.Trace().Str("event", event.String()).Msg("Change detected")
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			n.logger.Warn().Err(err).Str("path", root).Msg("Watcher error")
		}
	}
}

// watcher.go - Reload the source table when the file changes on disk
package main

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// reloadDelay coalesces the burst of events editors produce for one save.
const reloadDelay = 150 * time.Millisecond

// tableWatcher re-parses a table file after it changes and hands the result
// to the program. It watches the parent directory so files replaced by a
// rename are still seen.
type tableWatcher struct {
	path   string
	fs     *fsnotify.Watcher
	events chan tableReloadedMsg
	done   chan struct{}
	once   sync.Once
}

func newTableWatcher(path string) (*tableWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &tableWatcher{
		path:   abs,
		fs:     fsw,
		events: make(chan tableReloadedMsg),
		done:   make(chan struct{}),
	}
	go w.run()
	log.Debugf("Watching %s for changes", abs)
	return w, nil
}

func (w *tableWatcher) run() {
	defer close(w.events)

	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				pending = time.After(reloadDelay)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Warnf("Watcher error: %v", err)
		case <-pending:
			pending = nil
			t, err := LoadTableFile(w.path)
			select {
			case w.events <- tableReloadedMsg{table: t, err: err, watched: true}:
			case <-w.done:
				return
			}
		case <-w.done:
			return
		}
	}
}

// waitCmd blocks until the next reload is ready.
func (w *tableWatcher) waitCmd() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-w.events
		if !ok {
			return nil
		}
		return msg
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *tableWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

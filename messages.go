// messages.go - Custom tea.Msg types and tea.Cmd factories for async operations
package main

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

// ─── Result Messages ───────────────────────────────────────────────────────────

// tableLoadedMsg carries the table parsed at startup.
type tableLoadedMsg struct {
	table *Table
	err   error
}

// tableReloadedMsg carries a fresh parse of the source file, sent by the
// watcher or by a manual reinit.
type tableReloadedMsg struct {
	table   *Table
	err     error
	watched bool // sent by the watcher, which must be re-armed
}

// sortFailedMsg carries an error returned by a header click.
type sortFailedMsg struct {
	column int
	err    error
}

// clipboardResultMsg reports whether the rendered HTML reached the clipboard.
type clipboardResultMsg struct {
	bytes int
	err   error
}

// watcherStartedMsg carries the file watcher once it is running.
type watcherStartedMsg struct {
	watcher *tableWatcher
	err     error
}

// ─── Command Factories ─────────────────────────────────────────────────────────

// loadTableCmd parses the source file.
func loadTableCmd(path string) tea.Cmd {
	return func() tea.Msg {
		t, err := LoadTableFile(path)
		return tableLoadedMsg{table: t, err: err}
	}
}

// reloadTableCmd parses the source file again for a reinit.
func reloadTableCmd(path string) tea.Cmd {
	return func() tea.Msg {
		t, err := LoadTableFile(path)
		return tableReloadedMsg{table: t, err: err}
	}
}

// copyHTMLCmd writes rendered table HTML to the system clipboard.
func copyHTMLCmd(rendered string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(rendered)
		if err != nil {
			log.Warnf("Copying table HTML: %v", err)
		}
		return clipboardResultMsg{bytes: len(rendered), err: err}
	}
}

// startWatcherCmd begins watching the source file for changes.
func startWatcherCmd(path string) tea.Cmd {
	return func() tea.Msg {
		w, err := newTableWatcher(path)
		return watcherStartedMsg{watcher: w, err: err}
	}
}

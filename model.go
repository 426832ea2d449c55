// model.go - Root bubbletea model: view state machine, message routing and global keys
package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

type viewState int

const (
	stateLoading viewState = iota
	stateTable
	stateHelp
	stateVersion
	stateError
)

type rootModel struct {
	state viewState
	path  string
	opts  Options
	watch bool
	keys  keyMap

	sorter  *GroupedTableSorter
	watcher *tableWatcher

	loading  loadingModel
	table    tableModel
	help     helpModel
	version  versionModel
	errModal errorModel

	// fatal errors happen before there is a table to return to.
	fatal bool

	width  int
	height int
}

func newRootModel(path string, opts Options, watch bool) rootModel {
	if i, ok := themeIndex(opts.Theme); ok {
		setTheme(i)
	}
	return rootModel{
		state:   stateLoading,
		path:    path,
		opts:    opts,
		watch:   watch,
		keys:    defaultKeyMap(),
		loading: newLoadingModel(path, opts, watch),
		help:    newHelpModel(),
		version: newVersionModel(),
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), loadTableCmd(m.path))
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.loading.width, m.loading.height = msg.Width, msg.Height
		m.table.width, m.table.height = msg.Width, msg.Height
		m.help.width, m.help.height = msg.Width, msg.Height
		m.version.width, m.version.height = msg.Width, msg.Height
		m.errModal.width, m.errModal.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd

	case tableLoadedMsg:
		return m.handleLoaded(msg)

	case watcherStartedMsg:
		if msg.err != nil {
			log.Warnf("File watching disabled: %v", msg.err)
			m.table.statusMsg = "Watch failed: " + msg.err.Error()
			return m, nil
		}
		m.watcher = msg.watcher
		return m, m.watcher.waitCmd()

	case tableReloadedMsg:
		return m.handleReloaded(msg)

	case sortFailedMsg:
		log.WithError(msg.err).Warnf("Sorting column %d failed", msg.column)
		m.showError(errorTitle(msg.err), msg.err.Error(), false)
		return m, nil

	case clipboardResultMsg:
		if msg.err != nil {
			m.table.statusMsg = "Copy failed: " + msg.err.Error()
		} else {
			m.table.statusMsg = fmt.Sprintf("Copied %d bytes of HTML", msg.bytes)
		}
		return m, nil

	case tea.MouseMsg:
		if m.state != stateTable {
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m rootModel) handleLoaded(msg tableLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.showError("Cannot Load Table", msg.err.Error(), true)
		return m, nil
	}

	m.sorter = NewGroupedTableSorter(msg.table)
	if err := m.sorter.Init(m.opts); err != nil {
		m.showError(errorTitle(err), err.Error(), true)
		return m, nil
	}

	m.table = newTableModel(m.sorter, filepath.Base(m.path), m.keys)
	m.table.width, m.table.height = m.width, m.height
	m.state = stateTable
	log.Infof("Loaded %s: %d rows, %d columns", m.path, msg.table.Len(), len(msg.table.Header))

	if m.watch {
		return m, startWatcherCmd(m.path)
	}
	return m, nil
}

// handleReloaded swaps a fresh parse into the live table and reinitializes
// the sorter so new rows and attributes are picked up.
func (m rootModel) handleReloaded(msg tableReloadedMsg) (tea.Model, tea.Cmd) {
	var next tea.Cmd
	if msg.watched && m.watcher != nil {
		next = m.watcher.waitCmd()
	}
	if m.sorter == nil {
		return m, next
	}

	if msg.err != nil {
		m.showError("Cannot Reload Table", msg.err.Error(), false)
		return m, next
	}

	m.sorter.Table().Replace(msg.table)
	if err := m.sorter.Reinit(); err != nil {
		m.showError(errorTitle(err), err.Error(), false)
		return m, next
	}
	m.table.resetAfterReinit()
	m.table.statusMsg = fmt.Sprintf("Reinitialized with %d rows", m.sorter.Table().Len())
	return m, next
}

func (m *rootModel) showError(title, message string, fatal bool) {
	m.errModal = newErrorModel(title, message)
	m.errModal.width, m.errModal.height = m.width, m.height
	m.fatal = fatal
	m.state = stateError
}

func (m rootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateLoading:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case stateHelp, stateVersion:
		if key.Matches(msg, m.keys.Close) || (m.state == stateHelp && key.Matches(msg, m.keys.Help)) {
			m.state = stateTable
		}
		return m, nil

	case stateError:
		if key.Matches(msg, m.keys.Close) || key.Matches(msg, m.keys.Quit) {
			if m.fatal {
				return m, tea.Quit
			}
			m.state = stateTable
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.state = stateHelp
		return m, nil
	case key.Matches(msg, m.keys.Version):
		m.state = stateVersion
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		m.table.statusMsg = "Reloading..."
		return m, reloadTableCmd(m.path)
	case key.Matches(msg, m.keys.Copy):
		return m, copyHTMLCmd(RenderTableString(m.sorter.Table()))
	}

	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if i := int(s[0] - '1'); i < len(themes) {
			setTheme(i)
			m.table.statusMsg = "Theme: " + currentTheme().Name
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m rootModel) View() string {
	switch m.state {
	case stateLoading:
		return m.loading.View()
	case stateHelp:
		return m.help.View()
	case stateVersion:
		return m.version.View()
	case stateError:
		return m.errModal.View()
	default:
		return m.table.View()
	}
}

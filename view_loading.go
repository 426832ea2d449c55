// view_loading.go - Spinner shown while the source table is parsed
package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loadingModel names the file being parsed and the options the sorter will
// be attached with once it arrives.
type loadingModel struct {
	spinner spinner.Model
	path    string
	opts    Options
	watch   bool
	width   int
	height  int
}

func newLoadingModel(path string, opts Options, watch bool) loadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return loadingModel{spinner: s, path: path, opts: opts.withDefaults(), watch: watch}
}

func (m loadingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m loadingModel) Update(msg tea.Msg) (loadingModel, tea.Cmd) {
	switch msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// details lists where the table comes from and how it will be sorted.
func (m loadingModel) details() []string {
	dir := filepath.Dir(m.path)
	if dir == "." {
		dir = "the working directory"
	}
	lines := []string{
		"from " + dir,
		fmt.Sprintf("theme %s, first click %s", m.opts.Theme, strings.ToLower(m.opts.DefaultSortOrder.String())),
	}
	if m.opts.RowExclusion != nil {
		lines = append(lines, "excluding matching rows")
	}
	if m.watch {
		lines = append(lines, "watching for changes")
	}
	return lines
}

func (m loadingModel) View() string {
	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(loadingMsgStyle.Render(fmt.Sprintf("Parsing %s...", filepath.Base(m.path))))
	for _, line := range m.details() {
		b.WriteString("\n")
		b.WriteString(formHintStyle.Render(line))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modalStyle.Render(b.String()))
}

// styles.go - Lipgloss style definitions for the bubbletea TUI
package main

import "github.com/charmbracelet/lipgloss"

// ─── Title / Table ─────────────────────────────────────────────────────────────

var (
	titleStyle         lipgloss.Style
	tableHeaderStyle   lipgloss.Style
	tableSortedStyle   lipgloss.Style
	tableFocusStyle    lipgloss.Style
	tableCellStyle     lipgloss.Style
	tableGroupStyle    lipgloss.Style
	tableExcludedStyle lipgloss.Style
	tableSelectedStyle lipgloss.Style
	tableCursorStyle   lipgloss.Style
	tableEmptyStyle    lipgloss.Style
	separatorStyle     lipgloss.Style
)

// ─── Footer ────────────────────────────────────────────────────────────────────

var (
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
	footerStyle     lipgloss.Style
	statusStyle     lipgloss.Style
)

// ─── Modal / Spinner ───────────────────────────────────────────────────────────

var (
	modalStyle      lipgloss.Style
	modalTitleStyle lipgloss.Style
	modalTextStyle  lipgloss.Style
	errorTitleStyle lipgloss.Style
	formHintStyle   lipgloss.Style
	spinnerStyle    lipgloss.Style
	loadingMsgStyle lipgloss.Style
	activeLabel     lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles derives every style from the current theme.
func rebuildStyles() {
	t := currentTheme()

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.Accent).
		Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		PaddingRight(2)

	tableSortedStyle = tableHeaderStyle.
		Foreground(t.AccentLight).
		Underline(true)

	tableFocusStyle = tableHeaderStyle.
		Background(t.Surface)

	tableCellStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		PaddingRight(2)

	tableGroupStyle = tableCellStyle.
		Foreground(t.Group).
		Bold(true)

	tableExcludedStyle = tableCellStyle.
		Foreground(t.Excluded).
		Italic(true)

	tableSelectedStyle = lipgloss.NewStyle().
		Background(t.Surface).
		Foreground(t.Highlight).
		Bold(true).
		PaddingRight(2)

	tableCursorStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	tableEmptyStyle = lipgloss.NewStyle().
		Foreground(t.Subtle).
		Italic(true).
		PaddingLeft(3)

	separatorStyle = lipgloss.NewStyle().
		Foreground(t.Subtle)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Subtle)

	footerStyle = lipgloss.NewStyle().
		PaddingLeft(1)

	statusStyle = lipgloss.NewStyle().
		Foreground(t.AccentLight).
		Italic(true)

	modalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 3).
		MaxWidth(80)

	modalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		MarginBottom(1)

	modalTextStyle = lipgloss.NewStyle().
		Foreground(t.TextMuted)

	errorTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Error)

	formHintStyle = lipgloss.NewStyle().
		Foreground(t.Subtle).
		Italic(true)

	activeLabel = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	spinnerStyle = lipgloss.NewStyle().Foreground(t.Accent)

	loadingMsgStyle = lipgloss.NewStyle().
		Foreground(t.TextMuted).
		MarginLeft(1)
}

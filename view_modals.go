// view_modals.go - Help, version, and error modal views
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ─── Help Modal ────────────────────────────────────────────────────────────────

type helpModel struct {
	width  int
	height int
}

func newHelpModel() helpModel {
	return helpModel{}
}

func (m helpModel) View() string {
	title := modalTitleStyle.Render("Keyboard Shortcuts")

	shortcuts := []struct{ key, desc string }{
		{"←/→", "Select header column"},
		{"enter", "Sort by selected column"},
		{"↑/↓", "Move row cursor"},
		{"g/G", "First / last row"},
		{"r", "Reinit (reload file)"},
		{"y", "Copy sorted table HTML"},
		{"h", "Help"},
		{"v", "Version"},
		{"1-9", "Switch theme"},
		{"q", "Quit"},
	}

	var lines []string
	for _, s := range shortcuts {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			footerKeyStyle.Width(6).Render(s.key),
			modalTextStyle.Render(s.desc)))
	}

	themeLines := []string{"", activeLabel.Render("  Themes:")}
	for i, t := range themes {
		marker := "  "
		if i == currentThemeIndex {
			marker = "● "
		}
		swatch := lipgloss.NewStyle().Foreground(t.Accent).Render("██")
		themeLines = append(themeLines, fmt.Sprintf("  %s%s %s %s",
			marker,
			footerKeyStyle.Width(2).Render(fmt.Sprintf("%d", i+1)),
			swatch,
			modalTextStyle.Render(t.Name)))
	}

	hints := []string{
		"",
		formHintStyle.Render("Click a header to sort, click again to reverse"),
		formHintStyle.Render("Grouped rows move with their parent"),
		"",
		formHintStyle.Render("Press Esc or Enter to close"),
	}

	content := title + "\n\n" + strings.Join(lines, "\n") + "\n" + strings.Join(themeLines, "\n") + "\n" + strings.Join(hints, "\n")
	box := modalStyle.Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// ─── Version Modal ─────────────────────────────────────────────────────────────

type versionModel struct {
	width  int
	height int
}

func newVersionModel() versionModel {
	return versionModel{}
}

func (m versionModel) View() string {
	title := modalTitleStyle.Render("Version")
	body := modalTextStyle.Render(GetVersion())
	hint := "\n\n" + formHintStyle.Render("Press Esc or Enter to close")

	content := title + "\n\n" + body + hint
	box := modalStyle.Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// ─── Error Modal ───────────────────────────────────────────────────────────────

type errorModel struct {
	title   string
	message string
	width   int
	height  int
}

func newErrorModel(title, message string) errorModel {
	return errorModel{title: title, message: message}
}

// errorTitle names the class of a sorter error for the modal heading.
func errorTitle(err error) string {
	var cfgErr *ConfigError
	var rtErr *RuntimeError
	switch {
	case errors.As(err, &cfgErr):
		return "Configuration Error"
	case errors.As(err, &rtErr):
		return "Sort Error"
	default:
		return "Error"
	}
}

func (m errorModel) View() string {
	t := errorTitleStyle.Render(m.title)
	body := modalTextStyle.Render(m.message)
	hint := "\n\n" + formHintStyle.Render("Press Esc or Enter to close")

	content := t + "\n\n" + body + hint
	box := modalStyle.Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

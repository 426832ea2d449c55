// themes.go - Theme definitions for the TUI
package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// theme holds all configurable colors for the TUI. Name matches the theme
// option, so the same name selects the indicator image directory.
type theme struct {
	Name        string
	Accent      lipgloss.Color
	AccentLight lipgloss.Color
	Subtle      lipgloss.Color
	Dimmed      lipgloss.Color
	Highlight   lipgloss.Color
	Surface     lipgloss.Color
	Text        lipgloss.Color // normal cell text
	TextMuted   lipgloss.Color // secondary text (values, descriptions)
	Group       lipgloss.Color // level-1 group rows
	Excluded    lipgloss.Color // rows the exclusion rule keeps out of sorting
	Error       lipgloss.Color
}

// themes is the list of available themes, selectable via keys 1–9.
var themes = []theme{
	// 1 - Default Violet
	{
		Name: "default", Accent: "#7C3AED", AccentLight: "#A78BFA",
		Subtle: "#6C6C6C", Dimmed: "#4A4A4A", Highlight: "#E8E8E8",
		Surface: "#2A2A2A", Text: "#BBBBBB", TextMuted: "#CCCCCC",
		Group: "#E8E8E8", Excluded: "#6B7280", Error: "#EF4444",
	},
	// 2 - Dracula
	{
		Name: "dracula", Accent: "#BD93F9", AccentLight: "#D6BCFA",
		Subtle: "#6272A4", Dimmed: "#44475A", Highlight: "#F8F8F2",
		Surface: "#282A36", Text: "#BFBFBF", TextMuted: "#F8F8F2",
		Group: "#50FA7B", Excluded: "#6272A4", Error: "#FF5555",
	},
	// 3 - Tokyo Night
	{
		Name: "tokyo-night", Accent: "#7AA2F7", AccentLight: "#89DDFF",
		Subtle: "#565F89", Dimmed: "#3B4261", Highlight: "#C0CAF5",
		Surface: "#1A1B26", Text: "#A9B1D6", TextMuted: "#C0CAF5",
		Group: "#9ECE6A", Excluded: "#565F89", Error: "#F7768E",
	},
	// 4 - Nord
	{
		Name: "nord", Accent: "#88C0D0", AccentLight: "#8FBCBB",
		Subtle: "#4C566A", Dimmed: "#3B4252", Highlight: "#ECEFF4",
		Surface: "#2E3440", Text: "#D8DEE9", TextMuted: "#ECEFF4",
		Group: "#A3BE8C", Excluded: "#4C566A", Error: "#BF616A",
	},
	// 5 - Gruvbox Dark
	{
		Name: "gruvbox", Accent: "#FE8019", AccentLight: "#FABD2F",
		Subtle: "#928374", Dimmed: "#665C54", Highlight: "#EBDBB2",
		Surface: "#282828", Text: "#BDAE93", TextMuted: "#EBDBB2",
		Group: "#B8BB26", Excluded: "#928374", Error: "#FB4934",
	},
	// 6 - Solarized Dark
	{
		Name: "solarized", Accent: "#268BD2", AccentLight: "#2AA198",
		Subtle: "#586E75", Dimmed: "#073642", Highlight: "#FDF6E3",
		Surface: "#002B36", Text: "#93A1A1", TextMuted: "#EEE8D5",
		Group: "#859900", Excluded: "#586E75", Error: "#DC322F",
	},
}

// currentThemeIndex tracks the active theme.
var currentThemeIndex = 0

// currentTheme returns the active theme.
func currentTheme() theme {
	return themes[currentThemeIndex]
}

// themeIndex finds a theme by name, case-insensitively.
func themeIndex(name string) (int, bool) {
	for i, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// setTheme switches to the given theme index and rebuilds all styles.
func setTheme(index int) {
	if index < 0 || index >= len(themes) {
		return
	}
	currentThemeIndex = index
	rebuildStyles()
}

// utils.go - Utility functions
package main

import "github.com/mattn/go-runewidth"

// truncateToWidth truncates s to at most width terminal cells, appending "…"
// if truncated. Wide runes count as two cells.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// displayWidth returns the number of terminal cells s occupies.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// view_table.go - Grouped table view with clickable headers, sort indicators and footer
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// headerRowY is the screen row of the header: the title bar sits above it.
	headerRowY = 1

	// rowPrefixWidth is the cursor column left of every row.
	rowPrefixWidth = 2

	maxColumnWidth = 32
	minColumnWidth = 4
	cellPadding    = 2

	glyphAscending  = "▲"
	glyphDescending = "▼"
)

// tableColumn is one laid-out column.
type tableColumn struct {
	title string
	width int // includes cellPadding
}

// hitRange is the span of screen columns a header cell occupies.
type hitRange struct {
	startX int
	endX   int
	column int
}

type tableModel struct {
	sorter *GroupedTableSorter
	source string
	keys   keyMap

	cursor    int // selected body row
	offset    int // first visible body row
	focusCol  int // header column the keyboard "clicks"
	width     int
	height    int
	statusMsg string
}

func newTableModel(sorter *GroupedTableSorter, source string, keys keyMap) tableModel {
	return tableModel{sorter: sorter, source: source, keys: keys}
}

func (m tableModel) table() *Table {
	return m.sorter.Table()
}

// ─── Update ────────────────────────────────────────────────────────────────────

func (m tableModel) Update(msg tea.Msg) (tableModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m tableModel) updateMouse(msg tea.MouseMsg) (tableModel, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if msg.Y == headerRowY {
		for _, hit := range m.headerHitRanges() {
			if msg.X >= hit.startX && msg.X < hit.endX {
				m.focusCol = hit.column
				return m.clickHeader(hit.column)
			}
		}
		return m, nil
	}

	// Clicks in the body select the row under the pointer.
	first := headerRowY + 2
	if msg.Y >= first && msg.Y < first+m.visibleRows() {
		row := m.offset + msg.Y - first
		if row < m.table().Len() {
			m.cursor = row
		}
	}
	return m, nil
}

func (m tableModel) updateKeys(msg tea.KeyMsg) (tableModel, tea.Cmd) {
	visible := m.visibleRows()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-visible)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(visible)
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.offset = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = max(0, m.table().Len()-1)
		if m.cursor >= visible {
			m.offset = m.cursor - visible + 1
		}
	case key.Matches(msg, m.keys.Left):
		if n := len(m.table().Header); n > 0 {
			m.focusCol = (m.focusCol - 1 + n) % n
		}
	case key.Matches(msg, m.keys.Right):
		if n := len(m.table().Header); n > 0 {
			m.focusCol = (m.focusCol + 1) % n
		}
	case key.Matches(msg, m.keys.Sort):
		return m.clickHeader(m.focusCol)
	}
	return m, nil
}

func (m *tableModel) moveCursor(delta int) {
	n := m.table().Len()
	if n == 0 {
		return
	}
	m.cursor = min(max(0, m.cursor+delta), n-1)
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

// clickHeader delivers a header click to the table. The selected row stays
// selected wherever the sort moves it.
func (m tableModel) clickHeader(col int) (tableModel, tea.Cmd) {
	t := m.table()
	var selected *Row
	if rows := t.Rows(); m.cursor < len(rows) {
		selected = rows[m.cursor]
	}

	if err := t.Click(col); err != nil {
		return m, func() tea.Msg { return sortFailedMsg{column: col, err: err} }
	}

	if selected != nil {
		for i, r := range t.Rows() {
			if r.ID == selected.ID {
				m.cursor = i
				break
			}
		}
		m.moveCursor(0)
	}
	state := m.sorter.State()
	if state.IsSorted() {
		m.statusMsg = fmt.Sprintf("Sorted by %s, %s", t.Header[state.Column].Label, strings.ToLower(state.Direction.String()))
	}
	return m, nil
}

// resetAfterReinit keeps the cursor and focus inside a table that may have
// changed shape.
func (m *tableModel) resetAfterReinit() {
	if n := len(m.table().Header); m.focusCol >= n {
		m.focusCol = max(0, n-1)
	}
	if n := m.table().Len(); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
	m.moveCursor(0)
}

func (m tableModel) visibleRows() int {
	// title(1) + header(1) + sep(1) + footer(3) + spacing(1)
	return max(1, m.height-7)
}

// ─── Layout ────────────────────────────────────────────────────────────────────

// indicatorReserve is the room a column keeps for its ▲/▼ glyph. Without
// column resizing every column reserves it, so sorting never shifts widths.
func (m tableModel) indicatorReserve(col int) int {
	h := m.table().Header[col]
	if h.Indicator == nil {
		return 0
	}
	if !h.Indicator.AllowResize || h.Direction != SortUnset {
		return 2
	}
	return 0
}

func (m tableModel) computeColumnWidths() []tableColumn {
	t := m.table()
	cols := make([]tableColumn, len(t.Header))
	for i, h := range t.Header {
		w := displayWidth(h.Label) + m.indicatorReserve(i)
		cols[i] = tableColumn{title: h.Label, width: w}
	}
	for _, r := range t.Rows() {
		for i, c := range r.Cells {
			if i >= len(cols) {
				break
			}
			w := displayWidth(c.Text)
			if i == 0 {
				w += displayWidth(levelPrefix(r.Level))
			}
			cols[i].width = max(cols[i].width, w)
		}
	}
	for i := range cols {
		cols[i].width = min(max(cols[i].width, minColumnWidth), maxColumnWidth) + cellPadding
	}
	return cols
}

// headerHitRanges maps screen columns on the header row to table columns.
func (m tableModel) headerHitRanges() []hitRange {
	x := rowPrefixWidth
	var hits []hitRange
	for i, col := range m.computeColumnWidths() {
		hits = append(hits, hitRange{startX: x, endX: x + col.width, column: i})
		x += col.width
	}
	return hits
}

// levelPrefix indents grouped rows under their parent.
func levelPrefix(l Level) string {
	if l <= Level1 {
		return ""
	}
	return strings.Repeat("  ", int(l)-2) + "- "
}

// ─── View ──────────────────────────────────────────────────────────────────────

func (m tableModel) View() string {
	var b strings.Builder
	t := m.table()

	title := fmt.Sprintf("╭ %s ╮", m.source)
	b.WriteString(titleStyle.Render(title) + "\n")

	cols := m.computeColumnWidths()

	var headerCells []string
	for i, col := range cols {
		h := t.Header[i]
		label := col.title
		glyph := ""
		switch h.Direction {
		case SortAscending:
			glyph = " " + glyphAscending
		case SortDescending:
			glyph = " " + glyphDescending
		}
		label = truncateToWidth(label, col.width-cellPadding-displayWidth(glyph)) + glyph

		style := tableHeaderStyle
		if h.Direction != SortUnset {
			style = tableSortedStyle
		}
		if i == m.focusCol {
			style = style.Inherit(tableFocusStyle)
		}
		headerCells = append(headerCells, style.Width(col.width).Render(label))
	}
	b.WriteString(strings.Repeat(" ", rowPrefixWidth) + strings.Join(headerCells, "") + "\n")

	sepLen := 0
	for _, c := range cols {
		sepLen += c.width
	}
	if m.width > 0 {
		sepLen = min(sepLen, m.width-rowPrefixWidth)
	}
	b.WriteString(strings.Repeat(" ", rowPrefixWidth) + separatorStyle.Render(strings.Repeat("─", max(0, sepLen))) + "\n")

	rows := t.Rows()
	visible := m.visibleRows()
	if len(rows) == 0 {
		b.WriteString(tableEmptyStyle.Render("No rows") + "\n")
	} else {
		end := min(m.offset+visible, len(rows))
		for i := m.offset; i < end; i++ {
			b.WriteString(m.renderRow(rows[i], cols, i == m.cursor) + "\n")
		}
	}

	rendered := min(max(len(rows)-m.offset, 0), visible)
	for i := rendered; i < visible; i++ {
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m tableModel) renderRow(r *Row, cols []tableColumn, selected bool) string {
	style := tableCellStyle
	switch {
	case selected:
		style = tableSelectedStyle
	case m.excluded(r):
		style = tableExcludedStyle
	case r.Level == Level1:
		style = tableGroupStyle
	}

	cells := make([]string, 0, len(cols))
	for i, col := range cols {
		val := ""
		if c := r.CellAt(i); c != nil {
			val = c.Text
		}
		if i == 0 {
			val = levelPrefix(r.Level) + val
		}
		val = truncateToWidth(val, col.width-cellPadding)
		cells = append(cells, style.Width(col.width).Render(val))
	}

	prefix := strings.Repeat(" ", rowPrefixWidth)
	if selected {
		prefix = tableCursorStyle.Render("▸ ")
	}
	return prefix + strings.Join(cells, "")
}

func (m tableModel) excluded(r *Row) bool {
	pred := m.sorter.Options().RowExclusion
	return pred != nil && pred(r)
}

func (m tableModel) renderFooter() string {
	line1 := renderShortcutLine(m.keys.footerBindings())

	var hint string
	state := m.sorter.State()
	if state.IsSorted() {
		hint = fmt.Sprintf("  Click a header or press enter to sort  (sorted by %s %s)",
			m.table().Header[state.Column].Label, strings.ToLower(state.Direction.String()))
	} else {
		hint = "  Click a header or press enter to sort"
	}
	line2 := formHintStyle.Render(hint)

	line3 := ""
	if m.statusMsg != "" {
		line3 = statusStyle.Render("  " + m.statusMsg)
	}
	return footerStyle.Render(line1 + "\n" + line2 + "\n" + line3)
}

func renderShortcutLine(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

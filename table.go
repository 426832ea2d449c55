// table.go - In-memory table model: header cells, grouped body rows, click dispatch
package main

import (
	"fmt"
	"strconv"
)

// Level is the group nesting depth of a body row.
type Level int

const (
	// LevelNone marks a row without a data-level tag.
	LevelNone Level = iota
	// Level1 is the outermost group.
	Level1
	// Level2 rows belong to the nearest preceding level-1 row.
	Level2
	// Level3 rows belong to the nearest preceding level-2 row.
	Level3
)

// String returns the data-level attribute value, or "none".
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case Level1, Level2, Level3:
		return strconv.Itoa(int(l))
	default:
		return fmt.Sprintf("Unknown(%d)", int(l))
	}
}

// parseLevel reads a data-level attribute. Anything outside 1..3 is no level.
func parseLevel(s string) (Level, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < int(Level1) || n > int(MaxLevel) {
		return LevelNone, false
	}
	return Level(n), true
}

// SortType is the interpretation hint attached to a column.
type SortType int

const (
	// SortUnspecified lets each cell decide between numeric and lexical.
	SortUnspecified SortType = iota
	// SortNumeric compares the integer found in the cell.
	SortNumeric
	// SortLexical compares the lowercased cell value.
	SortLexical
)

// String returns the data-sort-type attribute value.
func (st SortType) String() string {
	switch st {
	case SortUnspecified:
		return ""
	case SortNumeric:
		return SortTypeNumericAttr
	case SortLexical:
		return SortTypeStringAttr
	default:
		return fmt.Sprintf("Unknown(%d)", int(st))
	}
}

func parseSortType(s string) SortType {
	switch s {
	case SortTypeNumericAttr:
		return SortNumeric
	case SortTypeStringAttr, SortTypeLexicalAttr:
		return SortLexical
	default:
		return SortUnspecified
	}
}

// SortDirection is the direction a header is sorted in.
type SortDirection int

const (
	// SortUnset means the header has not been clicked since init.
	SortUnset SortDirection = iota
	// SortAscending sorts smallest first.
	SortAscending
	// SortDescending sorts largest first.
	SortDescending
)

// String returns the string representation of a SortDirection.
func (d SortDirection) String() string {
	switch d {
	case SortUnset:
		return "Unset"
	case SortAscending:
		return "Ascending"
	case SortDescending:
		return "Descending"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}

// attr returns the data-sort-direction attribute value.
func (d SortDirection) attr() string {
	switch d {
	case SortAscending:
		return "ASC"
	case SortDescending:
		return "DESC"
	default:
		return ""
	}
}

func (d SortDirection) opposite() SortDirection {
	if d == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// Attr is one HTML attribute, kept in source order.
type Attr struct {
	Key string
	Val string
}

func lookupAttr(attrs []Attr, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Cell is one body cell.
type Cell struct {
	Text   string
	Markup string // inner HTML, written back verbatim when rendering
	Attrs  []Attr

	// SortAttr names a row attribute whose value replaces Text as the sort value.
	SortAttr string

	sortValue string
	cached    bool
}

// SortValue returns the cached sort value and whether one was computed.
func (c *Cell) SortValue() (string, bool) {
	return c.sortValue, c.cached
}

// Indicator is the sort-direction slot appended to a header cell.
type Indicator struct {
	Placeholder string // transparent image shown while the column is unsorted
	Arrow       string // arrow image URL, empty when the column is unsorted
	AllowResize bool
}

// HeaderCell is one column header.
type HeaderCell struct {
	Label    string
	Markup   string
	Attrs    []Attr
	SortType SortType
	SortAttr string

	Direction SortDirection
	Indicator *Indicator
}

// RowID identifies a body row for the lifetime of its table.
type RowID int

// Row is one body row.
type Row struct {
	ID    RowID
	Level Level
	Attrs []Attr
	Cells []*Cell
}

// Attr returns the value of a row attribute.
func (r *Row) Attr(key string) (string, bool) {
	return lookupAttr(r.Attrs, key)
}

// CellAt returns the cell at index i, or nil when the row is shorter.
func (r *Row) CellAt(i int) *Cell {
	if i < 0 || i >= len(r.Cells) {
		return nil
	}
	return r.Cells[i]
}

// Event is delivered to handlers registered on a table.
type Event struct {
	Type   string
	Column int
}

// EventHandler handles a table event.
type EventHandler func(Event) error

type namedHandler struct {
	namespace string
	handle    EventHandler
}

// Table is a header row plus an ordered body of rows.
type Table struct {
	Header []*HeaderCell
	Attrs  []Attr

	rows     []*Row
	byID     map[RowID]*Row
	nextID   RowID
	classes  []string
	handlers map[string][]namedHandler
}

// NewTable creates an empty table with the given header.
func NewTable(header []*HeaderCell) *Table {
	return &Table{
		Header:   header,
		byID:     make(map[RowID]*Row),
		handlers: make(map[string][]namedHandler),
	}
}

// AppendRow adds a row at the end of the body and returns it.
func (t *Table) AppendRow(level Level, attrs []Attr, cells []*Cell) *Row {
	t.nextID++
	r := &Row{ID: t.nextID, Level: level, Attrs: attrs, Cells: cells}
	t.rows = append(t.rows, r)
	t.byID[r.ID] = r
	return r
}

// Rows returns the body rows in display order.
func (t *Table) Rows() []*Row {
	out := make([]*Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Row looks up a body row by id.
func (t *Table) Row(id RowID) (*Row, bool) {
	r, ok := t.byID[id]
	return r, ok
}

// Len returns the number of body rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Replace swaps in the header, attributes, class markers and body of src,
// keeping this table's registered handlers. Rows get fresh ids.
func (t *Table) Replace(src *Table) {
	t.Header = src.Header
	t.Attrs = src.Attrs
	t.classes = append([]string(nil), src.classes...)
	t.rows = nil
	t.byID = make(map[RowID]*Row, len(src.rows))
	for _, r := range src.rows {
		t.AppendRow(r.Level, r.Attrs, r.Cells)
	}
}

// setOrder commits a new body order. order must be a permutation of the body.
func (t *Table) setOrder(order []*Row) {
	t.rows = order
}

// HasClass reports whether a class marker is set.
func (t *Table) HasClass(name string) bool {
	for _, c := range t.classes {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass sets a class marker.
func (t *Table) AddClass(name string) {
	if !t.HasClass(name) {
		t.classes = append(t.classes, name)
	}
}

// RemoveClass clears a class marker.
func (t *Table) RemoveClass(name string) {
	for i, c := range t.classes {
		if c == name {
			t.classes = append(t.classes[:i], t.classes[i+1:]...)
			return
		}
	}
}

// Classes returns the class markers in the order they were added.
func (t *Table) Classes() []string {
	return append([]string(nil), t.classes...)
}

// On registers a handler for event under namespace. A second registration
// under the same namespace replaces the first.
func (t *Table) On(event, namespace string, h EventHandler) {
	hs := t.handlers[event]
	for i := range hs {
		if hs[i].namespace == namespace {
			hs[i].handle = h
			return
		}
	}
	t.handlers[event] = append(hs, namedHandler{namespace: namespace, handle: h})
}

// Off removes the handler registered for event under namespace.
func (t *Table) Off(event, namespace string) {
	hs := t.handlers[event]
	for i := range hs {
		if hs[i].namespace == namespace {
			t.handlers[event] = append(hs[:i], hs[i+1:]...)
			return
		}
	}
}

// HandlerCount returns how many handlers are registered for event.
func (t *Table) HandlerCount(event string) int {
	return len(t.handlers[event])
}

// Click dispatches a click on header column col to the registered handlers,
// stopping at the first error.
func (t *Table) Click(col int) error {
	if col < 0 || col >= len(t.Header) {
		return fmt.Errorf("%w: %d (table has %d columns)", ErrInvalidColumn, col, len(t.Header))
	}
	ev := Event{Type: EventClick, Column: col}
	for _, h := range append([]namedHandler(nil), t.handlers[EventClick]...) {
		if err := h.handle(ev); err != nil {
			return err
		}
	}
	return nil
}

// sorter.go - GroupedTableSorter: init, teardown and click-driven grouped reordering
package main

import (
	"container/list"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

// SortState is the column and direction a table is currently sorted by.
type SortState struct {
	// Column is the index of the sorted column (-1 if unsorted).
	Column int
	// Direction is the sort direction.
	Direction SortDirection
}

// IsSorted returns true if this state represents an active sort.
func (s SortState) IsSorted() bool {
	return s.Column >= 0 && s.Direction != SortUnset
}

// GroupedTableSorter sorts a table by a clicked header column while keeping
// level 2 and 3 rows grouped under their parents.
type GroupedTableSorter struct {
	table *Table
	opts  Options

	// parents maps a level 2/3 row to the nearest preceding row one level up.
	parents map[RowID]RowID

	initialized bool
	configured  bool
}

// NewGroupedTableSorter returns a sorter for t. Call Init to attach it.
func NewGroupedTableSorter(t *Table) *GroupedTableSorter {
	return &GroupedTableSorter{table: t}
}

// Table returns the table the sorter is bound to.
func (s *GroupedTableSorter) Table() *Table {
	return s.table
}

// Options returns the options the sorter was last initialized with.
func (s *GroupedTableSorter) Options() Options {
	return s.opts
}

// Initialized reports whether the sorter is attached to its table.
func (s *GroupedTableSorter) Initialized() bool {
	return s.initialized
}

// Init validates opts, derives parent links and sort values from the
// table's current rows, and registers the click handler. On error the table
// is left as it was.
func (s *GroupedTableSorter) Init(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	opts = opts.withDefaults()

	rows := s.table.Rows()
	parents := linkParents(rows)
	values := s.deriveSortValues(rows)

	if opts.RowExclusion != nil {
		candidates := levelOneCandidates(rows)
		if len(filterRows(candidates, opts.RowExclusion)) == 0 {
			return configErrorf("rowExclusion", ErrNoSortableRows, "%d candidate rows", len(candidates))
		}
	}

	for i, h := range s.table.Header {
		if h.Indicator != nil {
			continue
		}
		h.Indicator = &Indicator{
			Placeholder: opts.imageURL(ImagePlaceholder),
			AllowResize: opts.AllowColumnResize,
		}
		if h.Direction != SortUnset {
			h.Indicator.Arrow = opts.arrowURL(h.Direction)
		}
		log.Debugf("Added sort indicator to column %d (%q)", i, h.Label)
	}
	for cell, v := range values {
		cell.sortValue = v
		cell.cached = true
	}
	s.parents = parents
	s.opts = opts
	s.table.AddClass(SortableClass)
	s.table.On(EventClick, HandlerNamespace, s.handleClick)
	s.initialized = true
	s.configured = true

	log.WithFields(log.Fields{
		"rows":    len(rows),
		"parents": len(parents),
		"columns": len(s.table.Header),
	}).Debug("Sortable table initialized")
	return nil
}

// Destroy detaches the sorter: it removes the click handler, cached sort
// values, parent links, header directions, indicator slots and the sortable
// marker. Calling it again, or before Init, is a no-op.
func (s *GroupedTableSorter) Destroy() {
	s.table.Off(EventClick, HandlerNamespace)
	for _, r := range s.table.Rows() {
		for _, c := range r.Cells {
			c.sortValue = ""
			c.cached = false
		}
	}
	for _, h := range s.table.Header {
		h.Direction = SortUnset
		h.Indicator = nil
	}
	s.parents = nil
	s.table.RemoveClass(SortableClass)
	if s.initialized {
		log.Debug("Sortable table destroyed")
	}
	s.initialized = false
}

// Reinit tears the sorter down and initializes it again with the options
// last given to Init, picking up rows added or changed since.
func (s *GroupedTableSorter) Reinit() error {
	if !s.configured {
		return configErrorf("", ErrNotInitialized, "")
	}
	s.Destroy()
	return s.Init(s.opts)
}

// Parent returns the parent link of a level 2/3 row.
func (s *GroupedTableSorter) Parent(id RowID) (RowID, bool) {
	p, ok := s.parents[id]
	return p, ok
}

// State returns the column the table is sorted by, if any.
func (s *GroupedTableSorter) State() SortState {
	for i, h := range s.table.Header {
		if h.Direction != SortUnset {
			return SortState{Column: i, Direction: h.Direction}
		}
	}
	return SortState{Column: -1}
}

// deriveSortValues computes every cell's sort value: its text, or the value
// of the row attribute named by the cell (or, failing that, by its column
// header) when the row carries it.
func (s *GroupedTableSorter) deriveSortValues(rows []*Row) map[*Cell]string {
	values := make(map[*Cell]string)
	for _, r := range rows {
		for i, c := range r.Cells {
			attr := c.SortAttr
			if attr == "" && i < len(s.table.Header) {
				attr = s.table.Header[i].SortAttr
			}
			v := c.Text
			if attr != "" {
				if av, ok := r.Attr(attr); ok {
					v = av
				}
			}
			values[c] = v
		}
	}
	return values
}

// linkParents maps each level 2/3 row to the nearest preceding row of the
// level above it. Rows with no such predecessor get no entry.
func linkParents(rows []*Row) map[RowID]RowID {
	parents := make(map[RowID]RowID)
	var last [MaxLevel + 1]*Row
	for _, r := range rows {
		if r.Level == Level2 || r.Level == Level3 {
			if p := last[r.Level-1]; p != nil {
				parents[r.ID] = p.ID
			}
		}
		if r.Level > LevelNone && r.Level <= MaxLevel {
			last[r.Level] = r
		}
	}
	return parents
}

// levelOneCandidates returns the level-1 rows, or every body row when no
// row carries a level at all.
func levelOneCandidates(rows []*Row) []*Row {
	var out []*Row
	leveled := false
	for _, r := range rows {
		if r.Level != LevelNone {
			leveled = true
		}
		if r.Level == Level1 {
			out = append(out, r)
		}
	}
	if !leveled {
		return rows
	}
	return out
}

func filterRows(rows []*Row, exclude RowPredicate) []*Row {
	if exclude == nil {
		return rows
	}
	var out []*Row
	for _, r := range rows {
		if !exclude(r) {
			out = append(out, r)
		}
	}
	return out
}

// gatherLevels collects the rows to sort at each level, in display order.
// Linked level 2 and 3 rows removed by the exclusion predicate are returned
// in pinned so they can follow their parent without being sorted.
func (s *GroupedTableSorter) gatherLevels(rows []*Row) (sets, pinned [MaxLevel][]*Row) {
	sets[0] = filterRows(levelOneCandidates(rows), s.opts.RowExclusion)
	for _, r := range rows {
		if r.Level != Level2 && r.Level != Level3 {
			continue
		}
		if _, ok := s.parents[r.ID]; !ok {
			continue
		}
		lvl := int(r.Level) - 1
		if s.opts.RowExclusion != nil && s.opts.RowExclusion(r) {
			pinned[lvl] = append(pinned[lvl], r)
			continue
		}
		sets[lvl] = append(sets[lvl], r)
	}
	return sets, pinned
}

// handleClick is the sorter's click handler. It computes the new order and
// header state first and commits both only when nothing failed.
func (s *GroupedTableSorter) handleClick(ev Event) error {
	col := ev.Column
	header := s.table.Header
	clicked := header[col]

	current := clicked.Direction
	if current == SortUnset {
		current = s.opts.DefaultSortOrder.opposite()
	}
	next := current.opposite()

	rows := s.table.Rows()
	sets, pinned := s.gatherLevels(rows)
	if s.opts.RowExclusion != nil && len(sets[0]) == 0 {
		return &RuntimeError{Op: "sort", Err: fmt.Errorf("%w at level 1 (column %d)", ErrNoSortableRows, col)}
	}
	for lvl := range sets {
		sortLevel(sets[lvl], col, header)
	}
	order := s.materialize(rows, sets, pinned, next)

	for i, h := range header {
		if i == col {
			continue
		}
		h.Direction = SortUnset
		if h.Indicator != nil {
			h.Indicator.Arrow = ""
		}
	}
	clicked.Direction = next
	if clicked.Indicator != nil {
		clicked.Indicator.Arrow = s.opts.arrowURL(next)
	}
	s.table.setOrder(order)

	log.WithFields(log.Fields{
		"column":    col,
		"direction": next,
		"level1":    len(sets[0]),
		"level2":    len(sets[1]),
		"level3":    len(sets[2]),
	}).Debug("Sorted table")
	return nil
}

// sortLevel stably sorts rows ascending by their key for column col.
func sortLevel(rows []*Row, col int, header []*HeaderCell) {
	type keyed struct {
		row *Row
		key sortKey
	}
	ks := make([]keyed, len(rows))
	for i, r := range rows {
		ks[i] = keyed{row: r, key: extractSortKey(r, col, header)}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].key.less(ks[j].key) })
	for i := range ks {
		rows[i] = ks[i].row
	}
}

// materialize replays the insert-after-anchor placement on a copy of the
// body order. Each row is moved to directly after its anchor: the header for
// level 1, its parent for levels 2 and 3. Because every insertion lands
// right after the anchor and pushes earlier insertions down, ascending order
// walks each sorted level last-to-first and descending walks it
// first-to-last. Children are placed after their parents have moved, so
// they always end up directly under them. Pinned children keep their
// relative order at the end of their parent's group. Excluded level 1 rows
// stay put.
func (s *GroupedTableSorter) materialize(rows []*Row, sets, pinned [MaxLevel][]*Row, dir SortDirection) []*Row {
	order := list.New()
	elems := make(map[RowID]*list.Element, len(rows))
	for _, r := range rows {
		elems[r.ID] = order.PushBack(r)
	}

	place := func(r *Row, level int) {
		e := elems[r.ID]
		if level == 0 {
			order.MoveToFront(e)
			return
		}
		anchor, ok := elems[s.parents[r.ID]]
		if !ok {
			return
		}
		order.MoveAfter(e, anchor)
	}

	for lvl, set := range sets {
		if dir == SortAscending {
			for i := len(set) - 1; i >= 0; i-- {
				place(set[i], lvl)
			}
		} else {
			for _, r := range set {
				place(r, lvl)
			}
		}

		// sorted siblings now sit in a run right after their parent
		held := make(map[RowID]bool, len(pinned[lvl]))
		for _, r := range pinned[lvl] {
			held[r.ID] = true
		}
		tails := make(map[RowID]*list.Element)
		for _, r := range pinned[lvl] {
			parent := s.parents[r.ID]
			tail, ok := tails[parent]
			if !ok {
				if tail, ok = elems[parent]; !ok {
					continue
				}
				for next := tail.Next(); next != nil; next = next.Next() {
					sib := next.Value.(*Row)
					if held[sib.ID] || sib.Level != r.Level || s.parents[sib.ID] != parent {
						break
					}
					tail = next
				}
			}
			order.MoveAfter(elems[r.ID], tail)
			tails[parent] = elems[r.ID]
		}
	}

	out := make([]*Row, 0, len(rows))
	for e := order.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(*Row))
	}
	return out
}

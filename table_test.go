package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParseLevel tests data-level attribute parsing
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   Level
		wantOK bool
	}{
		{"1", Level1, true},
		{"2", Level2, true},
		{"3", Level3, true},
		{"0", LevelNone, false},
		{"4", LevelNone, false},
		{"top", LevelNone, false},
		{"", LevelNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseLevel(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseLevel(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// TestParseSortType tests data-sort-type attribute parsing
func TestParseSortType(t *testing.T) {
	tests := map[string]SortType{
		"numeric": SortNumeric,
		"string":  SortLexical,
		"lexical": SortLexical,
		"":        SortUnspecified,
		"date":    SortUnspecified,
	}
	for input, want := range tests {
		if got := parseSortType(input); got != want {
			t.Errorf("parseSortType(%q) = %v, want %v", input, got, want)
		}
	}
}

// TestHandlerNamespaces tests registering and removing handlers by namespace
func TestHandlerNamespaces(t *testing.T) {
	table := buildTable([]string{"A", "B"})
	var calls []string
	record := func(name string) EventHandler {
		return func(ev Event) error {
			calls = append(calls, name)
			return nil
		}
	}

	table.On(EventClick, "first", record("first"))
	table.On(EventClick, "other", record("other"))
	table.On(EventClick, "first", record("first-again"))
	if n := table.HandlerCount(EventClick); n != 2 {
		t.Fatalf("HandlerCount() = %d, want 2", n)
	}

	if err := table.Click(1); err != nil {
		t.Fatalf("Click() error = %v", err)
	}
	if diff := cmp.Diff([]string{"first-again", "other"}, calls); diff != "" {
		t.Errorf("handler calls mismatch (-want +got):\n%s", diff)
	}

	table.Off(EventClick, "first")
	table.Off(EventClick, "missing")
	calls = nil
	if err := table.Click(0); err != nil {
		t.Fatalf("Click() error = %v", err)
	}
	if diff := cmp.Diff([]string{"other"}, calls); diff != "" {
		t.Errorf("handler calls after Off mismatch (-want +got):\n%s", diff)
	}
}

// TestClickStopsAtFirstError tests error propagation from handlers
func TestClickStopsAtFirstError(t *testing.T) {
	table := buildTable([]string{"A"})
	boom := errors.New("boom")
	called := false
	table.On(EventClick, "fails", func(Event) error { return boom })
	table.On(EventClick, "later", func(Event) error { called = true; return nil })

	if err := table.Click(0); !errors.Is(err, boom) {
		t.Errorf("Click() error = %v, want %v", err, boom)
	}
	if called {
		t.Error("handler after the failing one was called")
	}
}

// TestClickDeliversColumn tests the event passed to handlers
func TestClickDeliversColumn(t *testing.T) {
	table := buildTable([]string{"A", "B", "C"})
	var got Event
	table.On(EventClick, "ns", func(ev Event) error { got = ev; return nil })

	if err := table.Click(2); err != nil {
		t.Fatalf("Click() error = %v", err)
	}
	if want := (Event{Type: EventClick, Column: 2}); got != want {
		t.Errorf("event = %+v, want %+v", got, want)
	}
}

// TestClasses tests class marker bookkeeping
func TestClasses(t *testing.T) {
	table := buildTable([]string{"A"})
	table.AddClass("data")
	table.AddClass(SortableClass)
	table.AddClass(SortableClass)

	if diff := cmp.Diff([]string{"data", SortableClass}, table.Classes()); diff != "" {
		t.Errorf("Classes() mismatch (-want +got):\n%s", diff)
	}
	table.RemoveClass(SortableClass)
	if table.HasClass(SortableClass) {
		t.Error("HasClass() = true after RemoveClass")
	}
	if !table.HasClass("data") {
		t.Error("unrelated class removed")
	}
}

// TestReplaceKeepsHandlers tests swapping in a freshly parsed table
func TestReplaceKeepsHandlers(t *testing.T) {
	table := buildTable([]string{"A"}, row(LevelNone, "old"))
	table.AddClass(SortableClass)
	table.AddClass("stale")
	table.On(EventClick, "ns", func(Event) error { return nil })

	src := buildTable([]string{"A", "B"}, row(Level1, "x", "1"), row(Level2, "y", "2"))
	src.AddClass("report")
	table.Replace(src)

	if len(table.Header) != 2 {
		t.Errorf("len(Header) = %d, want 2", len(table.Header))
	}
	if diff := cmp.Diff([]string{"x", "y"}, firstCells(table)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if n := table.HandlerCount(EventClick); n != 1 {
		t.Errorf("HandlerCount() = %d, want 1", n)
	}
	if diff := cmp.Diff([]string{"report"}, table.Classes()); diff != "" {
		t.Errorf("classes mismatch (-want +got):\n%s", diff)
	}
	src.AddClass("later")
	if table.HasClass("later") {
		t.Error("classes shared with the source table")
	}
	for _, r := range table.Rows() {
		if got, ok := table.Row(r.ID); !ok || got != r {
			t.Errorf("Row(%d) lookup failed", r.ID)
		}
	}
}

// TestRowsReturnsCopy tests that callers cannot reorder the body through Rows
func TestRowsReturnsCopy(t *testing.T) {
	table := buildTable([]string{"A"}, row(LevelNone, "1"), row(LevelNone, "2"))
	rows := table.Rows()
	rows[0], rows[1] = rows[1], rows[0]

	if diff := cmp.Diff([]string{"1", "2"}, firstCells(table)); diff != "" {
		t.Errorf("body changed through Rows() (-want +got):\n%s", diff)
	}
}

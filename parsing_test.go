package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const salesHTML = `<html><body>
<p>Quarterly sales</p>
<table class="report" id="sales">
  <thead>
    <tr><th>Region</th><th data-sort-type="numeric" data-sort-attr="data-amount">Amount</th><th data-sort-type="string">Note</th></tr>
  </thead>
  <tbody>
    <tr data-level="1" data-amount="300"><td>North</td><td>$300</td><td>ok</td></tr>
    <tr data-level="2" data-amount="100"><td>Oslo</td><td>$100</td><td><b>Hi</b> there</td></tr>
    <tr data-level="9"><td>Odd</td><td colspan="2">n/a</td></tr>
    <tr data-level="1" data-amount="50"><td>South</td><td>$50</td><td></td></tr>
  </tbody>
</table>
</body></html>`

// TestParseTable tests loading the header and body of an HTML table
func TestParseTable(t *testing.T) {
	table, err := ParseTable(strings.NewReader(salesHTML))
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}

	if diff := cmp.Diff([]string{"report"}, table.Classes()); diff != "" {
		t.Errorf("classes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Attr{{Key: "id", Val: "sales"}}, table.Attrs); diff != "" {
		t.Errorf("table attrs mismatch (-want +got):\n%s", diff)
	}

	var labels []string
	for _, h := range table.Header {
		labels = append(labels, h.Label)
	}
	if diff := cmp.Diff([]string{"Region", "Amount", "Note"}, labels); diff != "" {
		t.Errorf("header labels mismatch (-want +got):\n%s", diff)
	}
	if h := table.Header[1]; h.SortType != SortNumeric || h.SortAttr != "data-amount" {
		t.Errorf("Amount header = type %v attr %q", h.SortType, h.SortAttr)
	}
	if got := table.Header[2].SortType; got != SortLexical {
		t.Errorf("Note header type = %v, want lexical", got)
	}
	if table.Header[0].Indicator != nil {
		t.Error("plain header parsed with an indicator")
	}

	rows := table.Rows()
	var levels []Level
	for _, r := range rows {
		levels = append(levels, r.Level)
	}
	if diff := cmp.Diff([]Level{Level1, Level2, LevelNone, Level1}, levels); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}
	if n := len(rows[2].Cells); n != 2 {
		t.Errorf("merged row has %d cells, want 2", n)
	}

	note := rows[1].Cells[2]
	if note.Text != "Hi there" || note.Markup != "<b>Hi</b> there" {
		t.Errorf("note cell = text %q markup %q", note.Text, note.Markup)
	}
	if v, ok := rows[0].Attr("data-amount"); !ok || v != "300" {
		t.Errorf("row attr data-amount = %q, %v", v, ok)
	}
}

// TestParseHeaderIndicator tests reading sort state left by an earlier render
func TestParseHeaderIndicator(t *testing.T) {
	doc := `<table><tr><th data-sort-direction="DESC">Qty<div class="sort-direction-container allow-col-resize"><img src="img/default/Transparent.gif" width="7" height="4" style="background-image:url(&#34;img/default/arrow-down.png&#34;)"/></div></th></tr>
<tr><td>1</td></tr></table>`

	table, err := ParseTable(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}
	h := table.Header[0]
	if h.Label != "Qty" || h.Markup != "Qty" {
		t.Errorf("header label %q markup %q, want Qty", h.Label, h.Markup)
	}
	if h.Direction != SortDescending {
		t.Errorf("Direction = %v, want Descending", h.Direction)
	}
	if len(h.Attrs) != 0 {
		t.Errorf("Attrs = %v, want none", h.Attrs)
	}
	want := &Indicator{
		Placeholder: "img/default/Transparent.gif",
		Arrow:       "img/default/arrow-down.png",
		AllowResize: true,
	}
	if diff := cmp.Diff(want, h.Indicator); diff != "" {
		t.Errorf("indicator mismatch (-want +got):\n%s", diff)
	}
}

// TestParseTableErrors tests documents without a usable table
func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no table", "<p>nothing here</p>"},
		{"no header row", "<table><tr><td>1</td></tr></table>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTable(strings.NewReader(tt.doc)); !errors.Is(err, ErrNoTable) {
				t.Errorf("ParseTable() error = %v, want ErrNoTable", err)
			}
		})
	}
}

// TestLoadTableFile tests loading from disk
func TestLoadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.html")
	if err := os.WriteFile(path, []byte(salesHTML), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadTableFile(path)
	if err != nil {
		t.Fatalf("LoadTableFile() error = %v", err)
	}
	if table.Len() != 4 {
		t.Errorf("Len() = %d, want 4", table.Len())
	}

	_, err = LoadTableFile(filepath.Join(t.TempDir(), "missing.html"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestParseSortOrder tests the accepted spellings of the default sort order
func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    SortDirection
		wantErr bool
	}{
		{"", SortUnset, false},
		{"asc", SortAscending, false},
		{"ASC", SortAscending, false},
		{"Ascending", SortAscending, false},
		{" desc ", SortDescending, false},
		{"descending", SortDescending, false},
		{"up", SortUnset, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSortOrder(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSortOrder) {
					t.Errorf("parseSortOrder(%q) error = %v, want ErrInvalidSortOrder", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSortOrder(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseSortOrder(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestOptionsDefaults tests defaults and image URL resolution
func TestOptionsDefaults(t *testing.T) {
	opts := Options{ImageBase: "https://cdn.example.com/img//"}.withDefaults()
	if opts.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want %q", opts.Theme, DefaultTheme)
	}
	if opts.DefaultSortOrder != SortAscending {
		t.Errorf("DefaultSortOrder = %v, want Ascending", opts.DefaultSortOrder)
	}
	if got, want := opts.imageURL(ImagePlaceholder), "https://cdn.example.com/img/default/Transparent.gif"; got != want {
		t.Errorf("imageURL() = %q, want %q", got, want)
	}
	if got := opts.arrowURL(SortUnset); got != "" {
		t.Errorf("arrowURL(Unset) = %q, want empty", got)
	}
}

// TestExclusionRulePredicate tests compiled exclusion rules against rows
func TestExclusionRulePredicate(t *testing.T) {
	subtotal := &Row{
		Attrs: []Attr{{Key: "data-kind", Val: "subtotal"}},
		Cells: []*Cell{{Text: "Subtotal East"}},
	}
	total := &Row{
		Attrs: []Attr{{Key: "data-kind", Val: "total"}},
		Cells: []*Cell{{Text: "Total"}},
	}
	plain := &Row{Cells: []*Cell{{Text: "Widgets"}}}
	empty := &Row{}

	tests := []struct {
		name string
		rule ExclusionRule
		want map[*Row]bool
	}{
		{
			name: "attribute present",
			rule: ExclusionRule{Attribute: "data-kind"},
			want: map[*Row]bool{subtotal: true, total: true, plain: false, empty: false},
		},
		{
			name: "attribute value",
			rule: ExclusionRule{Attribute: "data-kind", Value: "total"},
			want: map[*Row]bool{subtotal: false, total: true, plain: false},
		},
		{
			name: "text match",
			rule: ExclusionRule{TextMatch: "(?i)total"},
			want: map[*Row]bool{subtotal: true, total: true, plain: false, empty: false},
		},
		{
			name: "all conditions must hold",
			rule: ExclusionRule{Attribute: "data-kind", TextMatch: "^Sub"},
			want: map[*Row]bool{subtotal: true, total: false, plain: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := tt.rule.Predicate()
			if err != nil {
				t.Fatalf("Predicate() error = %v", err)
			}
			for r, want := range tt.want {
				if got := pred(r); got != want {
					name := "<empty>"
					if c := r.CellAt(0); c != nil {
						name = c.Text
					}
					t.Errorf("predicate(%s) = %v, want %v", name, got, want)
				}
			}
		})
	}
}

// TestExclusionRuleErrors tests invalid and empty rules
func TestExclusionRuleErrors(t *testing.T) {
	pred, err := ExclusionRule{}.Predicate()
	if err != nil || pred != nil {
		t.Errorf("zero rule = %v, %v, want nil, nil", pred != nil, err)
	}

	for _, rule := range []ExclusionRule{
		{Value: "total"},
		{TextMatch: "("},
	} {
		_, err := rule.Predicate()
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || !errors.Is(err, ErrInvalidExclusion) {
			t.Errorf("Predicate(%+v) error = %v, want ConfigError wrapping ErrInvalidExclusion", rule, err)
		}
	}
}

// TestDecodeOptions tests the yaml options file layered over a base
func TestDecodeOptions(t *testing.T) {
	base := DefaultOptions()
	base.ImageBase = "from-flags"

	t.Run("full file", func(t *testing.T) {
		doc := `
image_base: /static/sort
theme: dark
allow_col_resize: true
default_sort_order: desc
exclude:
  attribute: data-total
`
		opts, err := decodeOptions(strings.NewReader(doc), base)
		if err != nil {
			t.Fatalf("decodeOptions() error = %v", err)
		}
		if opts.ImageBase != "/static/sort" || opts.Theme != "dark" || !opts.AllowColumnResize {
			t.Errorf("decodeOptions() = %+v", opts)
		}
		if opts.DefaultSortOrder != SortDescending {
			t.Errorf("DefaultSortOrder = %v, want Descending", opts.DefaultSortOrder)
		}
		if opts.RowExclusion == nil {
			t.Fatal("RowExclusion not set")
		}
		if !opts.RowExclusion(&Row{Attrs: []Attr{{Key: "data-total"}}}) {
			t.Error("RowExclusion does not exclude a data-total row")
		}
	})

	t.Run("partial file keeps base", func(t *testing.T) {
		opts, err := decodeOptions(strings.NewReader("theme: nord\n"), base)
		if err != nil {
			t.Fatalf("decodeOptions() error = %v", err)
		}
		if opts.ImageBase != "from-flags" || opts.Theme != "nord" {
			t.Errorf("decodeOptions() = %+v", opts)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		opts, err := decodeOptions(strings.NewReader(""), base)
		if err != nil {
			t.Fatalf("decodeOptions() error = %v", err)
		}
		if opts.ImageBase != base.ImageBase || opts.Theme != base.Theme {
			t.Errorf("decodeOptions() = %+v, want base", opts)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		if _, err := decodeOptions(strings.NewReader("colour: red\n"), base); err == nil {
			t.Error("decodeOptions() accepted an unknown key")
		}
	})

	t.Run("bad sort order", func(t *testing.T) {
		_, err := decodeOptions(strings.NewReader("default_sort_order: sideways\n"), base)
		if !errors.Is(err, ErrInvalidSortOrder) {
			t.Errorf("decodeOptions() error = %v, want ErrInvalidSortOrder", err)
		}
	})
}

// TestLoadOptionsFile tests reading options from disk
func TestLoadOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sorttable.yaml")
	if err := os.WriteFile(path, []byte("image_base: img\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := LoadOptionsFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("LoadOptionsFile() error = %v", err)
	}
	if opts.ImageBase != "img" {
		t.Errorf("ImageBase = %q, want img", opts.ImageBase)
	}

	if _, err := LoadOptionsFile(filepath.Join(t.TempDir(), "missing.yaml"), DefaultOptions()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

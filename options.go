// options.go - Sorter options, defaults, validation and the yaml options file
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// RowPredicate reports whether a row should be left out of sorting.
type RowPredicate func(*Row) bool

// Options configures a GroupedTableSorter.
type Options struct {
	// ImageBase is the directory holding the indicator images. Required.
	ImageBase string
	// Theme is the image subdirectory and terminal palette name.
	Theme string
	// AllowColumnResize lets the indicator widen its column instead of overlapping it.
	AllowColumnResize bool
	// RowExclusion removes rows such as subtotals from the sortable set.
	RowExclusion RowPredicate
	// DefaultSortOrder is the direction of the first click on a header.
	DefaultSortOrder SortDirection
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Theme:            DefaultTheme,
		DefaultSortOrder: DefaultSortOrder,
	}
}

// withDefaults fills the fields left at their zero value.
func (o Options) withDefaults() Options {
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.DefaultSortOrder == SortUnset {
		o.DefaultSortOrder = DefaultSortOrder
	}
	return o
}

// Validate checks the required and enumerated options.
func (o Options) Validate() error {
	if strings.TrimSpace(o.ImageBase) == "" {
		return configErrorf("imageBase", ErrMissingImageBase, "")
	}
	switch o.DefaultSortOrder {
	case SortUnset, SortAscending, SortDescending:
	default:
		return configErrorf("defaultSortOrder", ErrInvalidSortOrder, "%s", o.DefaultSortOrder)
	}
	return nil
}

// imageURL resolves an indicator image under the configured base and theme.
func (o Options) imageURL(name string) string {
	return strings.TrimRight(o.ImageBase, "/") + "/" + o.Theme + "/" + name
}

// arrowURL returns the arrow image for a direction.
func (o Options) arrowURL(d SortDirection) string {
	switch d {
	case SortAscending:
		return o.imageURL(ImageArrowUp)
	case SortDescending:
		return o.imageURL(ImageArrowDown)
	default:
		return ""
	}
}

// parseSortOrder accepts asc, ascending, desc and descending in any case.
// The empty string means "use the default".
func parseSortOrder(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return SortUnset, nil
	case "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	default:
		return SortUnset, configErrorf("defaultSortOrder", ErrInvalidSortOrder, "%q", s)
	}
}

// ─── Exclusion Rules ───────────────────────────────────────────────────────────

// ExclusionRule is the declarative form of a row exclusion predicate.
// A row is excluded when every condition that is set holds.
type ExclusionRule struct {
	// Attribute must be present on the row.
	Attribute string `yaml:"attribute"`
	// Value, when set, must equal the attribute's value.
	Value string `yaml:"value"`
	// TextMatch is a regular expression matched against the first cell's text.
	TextMatch string `yaml:"text_match"`
}

// IsZero reports whether the rule has no conditions.
func (r ExclusionRule) IsZero() bool {
	return r.Attribute == "" && r.Value == "" && r.TextMatch == ""
}

// Predicate compiles the rule. A zero rule yields a nil predicate.
func (r ExclusionRule) Predicate() (RowPredicate, error) {
	if r.IsZero() {
		return nil, nil
	}
	if r.Value != "" && r.Attribute == "" {
		return nil, configErrorf("rowExclusion", ErrInvalidExclusion, "value %q given without an attribute", r.Value)
	}
	var re *regexp.Regexp
	if r.TextMatch != "" {
		var err error
		re, err = regexp.Compile(r.TextMatch)
		if err != nil {
			return nil, configErrorf("rowExclusion", ErrInvalidExclusion, "text_match: %v", err)
		}
	}
	return func(row *Row) bool {
		if r.Attribute != "" {
			v, ok := row.Attr(r.Attribute)
			if !ok || (r.Value != "" && v != r.Value) {
				return false
			}
		}
		if re != nil {
			first := row.CellAt(0)
			if first == nil || !re.MatchString(first.Text) {
				return false
			}
		}
		return true
	}, nil
}

// ─── Options File ──────────────────────────────────────────────────────────────

// optionsFile mirrors the yaml layout. Pointers distinguish "absent" from
// the zero value so a file only overrides what it names.
type optionsFile struct {
	ImageBase        *string        `yaml:"image_base"`
	Theme            *string        `yaml:"theme"`
	AllowColResize   *bool          `yaml:"allow_col_resize"`
	DefaultSortOrder *string        `yaml:"default_sort_order"`
	Exclude          *ExclusionRule `yaml:"exclude"`
}

// LoadOptionsFile reads a yaml options file on top of base.
func LoadOptionsFile(path string, base Options) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("open options file: %w", err)
	}
	defer f.Close()

	opts, err := decodeOptions(f, base)
	if err != nil {
		return base, fmt.Errorf("options file %s: %w", path, err)
	}
	return opts, nil
}

func decodeOptions(r io.Reader, base Options) (Options, error) {
	var file optionsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return base, err
	}

	opts := base
	if file.ImageBase != nil {
		opts.ImageBase = *file.ImageBase
	}
	if file.Theme != nil {
		opts.Theme = *file.Theme
	}
	if file.AllowColResize != nil {
		opts.AllowColumnResize = *file.AllowColResize
	}
	if file.DefaultSortOrder != nil {
		order, err := parseSortOrder(*file.DefaultSortOrder)
		if err != nil {
			return base, err
		}
		opts.DefaultSortOrder = order
	}
	if file.Exclude != nil {
		pred, err := file.Exclude.Predicate()
		if err != nil {
			return base, err
		}
		opts.RowExclusion = pred
	}
	return opts, nil
}

// sortkey.go - Per-row sort key extraction for a clicked column
package main

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var integerToken = regexp.MustCompile(`-?[0-9]+`)

// sortKey is the value rows are ordered by. Exactly one of num/str is
// meaningful, chosen by numeric. failed marks a numeric column value with
// no number in it.
type sortKey struct {
	numeric bool
	failed  bool
	num     int64
	str     string
}

// less orders numbers numerically, strings bytewise, and any number before
// any string. Failed numeric keys come before every number.
func (k sortKey) less(o sortKey) bool {
	switch {
	case k.numeric && o.numeric:
		if k.failed || o.failed {
			return k.failed && !o.failed
		}
		return k.num < o.num
	case !k.numeric && !o.numeric:
		return k.str < o.str
	default:
		return k.numeric
	}
}

// resolveCell finds the cell a row is sorted by for column col. Rows with
// merged cells fall back leftwards, taking the sort type from the header of
// the column they land on.
func resolveCell(row *Row, col int, header []*HeaderCell) (*Cell, SortType) {
	st := headerSortType(header, col)
	for i := col; i >= 0; i-- {
		if c := row.CellAt(i); c != nil {
			return c, st
		}
		st = headerSortType(header, i-1)
	}
	return nil, SortUnspecified
}

func headerSortType(header []*HeaderCell, col int) SortType {
	if col < 0 || col >= len(header) {
		return SortUnspecified
	}
	return header[col].SortType
}

// extractSortKey computes the key of row for column col.
func extractSortKey(row *Row, col int, header []*HeaderCell) sortKey {
	cell, st := resolveCell(row, col, header)
	value := ""
	if cell != nil {
		value, _ = cell.SortValue()
	}
	return keyFor(value, st)
}

func keyFor(value string, st SortType) sortKey {
	n, ok := parseNumeric(value)
	switch st {
	case SortNumeric:
		if !ok {
			return sortKey{numeric: true, failed: true}
		}
		return sortKey{numeric: true, num: n}
	case SortLexical:
		return sortKey{str: strings.ToLower(value)}
	default:
		if ok {
			return sortKey{numeric: true, num: n}
		}
		return sortKey{str: strings.ToLower(value)}
	}
}

// parseNumeric strips letters, commas and lone dashes from value and returns
// the first integer left in it. A dash is lone unless a digit follows it.
// Out of range integers saturate.
func parseNumeric(value string) (int64, bool) {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == ',':
			continue
		case c == '-' && (i+1 >= len(value) || value[i+1] < '0' || value[i+1] > '9'):
			continue
		}
		b.WriteByte(c)
	}
	tok := integerToken.FindString(b.String())
	if tok == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// on ErrRange n already holds the saturated bound
	return n, true
}

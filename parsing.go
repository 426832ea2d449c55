// parsing.go - Loading an HTML <table> into the in-memory table model
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// backgroundURL pulls the arrow URL back out of a rendered indicator style.
var backgroundURL = regexp.MustCompile(`background-image:\s*url\(["']?([^"')]*)["']?\)`)

// LoadTableFile parses the first table in an HTML file.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	t, err := ParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// ParseTable parses the first table in an HTML document. The first row
// holding <th> cells is the header; every later row is a body row.
func ParseTable(r io.Reader) (*Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	tableNode := findElement(doc, atom.Table)
	if tableNode == nil {
		return nil, ErrNoTable
	}

	var header []*HeaderCell
	var body []*html.Node
	for _, tr := range tableRows(tableNode) {
		if header == nil {
			if hasChild(tr, atom.Th) {
				header = parseHeaderRow(tr)
			} else {
				log.Debugf("Skipping row before the header row")
			}
			continue
		}
		body = append(body, tr)
	}
	if header == nil {
		return nil, fmt.Errorf("%w: no header row with <th> cells", ErrNoTable)
	}

	t := NewTable(header)
	for _, a := range tableNode.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				t.AddClass(c)
			}
			continue
		}
		t.Attrs = append(t.Attrs, Attr{Key: a.Key, Val: a.Val})
	}

	for i, tr := range body {
		attrs := convertAttrs(tr.Attr)
		level := LevelNone
		if v, ok := lookupAttr(attrs, AttrLevel); ok {
			if level, ok = parseLevel(v); !ok {
				log.Warnf("Row %d: ignoring invalid %s=%q", i+1, AttrLevel, v)
			}
		}
		var cells []*Cell
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || c.DataAtom != atom.Td {
				continue
			}
			cellAttrs := convertAttrs(c.Attr)
			sortAttr, _ := lookupAttr(cellAttrs, AttrSortSource)
			cells = append(cells, &Cell{
				Text:     textContent(c),
				Markup:   innerHTML(c, nil),
				Attrs:    cellAttrs,
				SortAttr: sortAttr,
			})
		}
		t.AppendRow(level, attrs, cells)
	}

	log.WithFields(log.Fields{
		"columns": len(header),
		"rows":    t.Len(),
	}).Debug("Parsed table")
	return t, nil
}

func parseHeaderRow(tr *html.Node) []*HeaderCell {
	var header []*HeaderCell
	for th := tr.FirstChild; th != nil; th = th.NextSibling {
		if th.Type != html.ElementNode || th.DataAtom != atom.Th {
			continue
		}
		h := &HeaderCell{}
		for _, a := range th.Attr {
			switch a.Key {
			case AttrSortDirection:
				h.Direction = parseDirectionAttr(a.Val)
				continue
			case AttrSortType:
				h.SortType = parseSortType(a.Val)
			case AttrSortSource:
				h.SortAttr = a.Val
			}
			h.Attrs = append(h.Attrs, Attr{Key: a.Key, Val: a.Val})
		}

		// An indicator slot left by an earlier render is state, not content.
		slot := findIndicator(th)
		if slot != nil {
			h.Indicator = parseIndicator(slot)
		}
		h.Markup = innerHTML(th, slot)
		h.Label = strings.TrimSpace(textExcept(th, slot))
		header = append(header, h)
	}
	return header
}

func parseDirectionAttr(v string) SortDirection {
	switch strings.ToUpper(v) {
	case "ASC":
		return SortAscending
	case "DESC":
		return SortDescending
	default:
		return SortUnset
	}
}

func findIndicator(th *html.Node) *html.Node {
	for c := th.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Div && hasClass(c, IndicatorClass) {
			return c
		}
	}
	return nil
}

func parseIndicator(div *html.Node) *Indicator {
	ind := &Indicator{AllowResize: hasClass(div, ResizableIndicatorClass)}
	if img := findElement(div, atom.Img); img != nil {
		for _, a := range img.Attr {
			switch a.Key {
			case "src":
				ind.Placeholder = a.Val
			case "style":
				if m := backgroundURL.FindStringSubmatch(a.Val); m != nil {
					ind.Arrow = m[1]
				}
			}
		}
	}
	return ind
}

// ─── Node Helpers ──────────────────────────────────────────────────────────────

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// tableRows returns the <tr> elements of table in document order, looking
// through thead/tbody/tfoot but not into nested tables.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Tr:
				rows = append(rows, c)
			case atom.Thead, atom.Tbody, atom.Tfoot:
				walk(c)
			}
		}
	}
	walk(table)
	return rows
}

func hasChild(n *html.Node, a atom.Atom) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return true
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func convertAttrs(attrs []html.Attribute) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, Attr{Key: a.Key, Val: a.Val})
	}
	return out
}

// textContent concatenates the text below n, trimmed.
func textContent(n *html.Node) string {
	return strings.TrimSpace(textExcept(n, nil))
}

func textExcept(n, skip *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == skip {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func innerHTML(n, skip *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c == skip {
			continue
		}
		if err := html.Render(&buf, c); err != nil {
			log.Warnf("Rendering cell markup: %v", err)
		}
	}
	return strings.TrimSpace(buf.String())
}

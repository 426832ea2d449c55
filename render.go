// render.go - Writing the table model back out as HTML
package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// RenderTable writes t as an HTML table in its current order, with the
// sort direction attributes and indicator slots the sorter maintains.
func RenderTable(w io.Writer, t *Table) error {
	if _, err := io.WriteString(w, RenderTableString(t)); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

// RenderTableString renders t to a string.
func RenderTableString(t *Table) string {
	var b strings.Builder

	b.WriteString("<table")
	if classes := t.Classes(); len(classes) > 0 {
		writeAttr(&b, "class", strings.Join(classes, " "))
	}
	writeAttrs(&b, t.Attrs)
	b.WriteString(">\n")

	b.WriteString("  <tr>")
	for _, h := range t.Header {
		b.WriteString("<th")
		writeAttrs(&b, h.Attrs)
		if d := h.Direction.attr(); d != "" {
			writeAttr(&b, AttrSortDirection, d)
		}
		b.WriteString(">")
		b.WriteString(h.Markup)
		if h.Indicator != nil {
			renderIndicator(&b, h.Indicator)
		}
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n")

	for _, r := range t.Rows() {
		b.WriteString("  <tr")
		writeAttrs(&b, r.Attrs)
		b.WriteString(">")
		for _, c := range r.Cells {
			b.WriteString("<td")
			writeAttrs(&b, c.Attrs)
			b.WriteString(">")
			b.WriteString(c.Markup)
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</table>\n")
	return b.String()
}

func renderIndicator(b *strings.Builder, ind *Indicator) {
	b.WriteString("<div")
	if ind.AllowResize {
		writeAttr(b, "class", IndicatorClass+" "+ResizableIndicatorClass)
	} else {
		writeAttr(b, "class", IndicatorClass)
		writeAttr(b, "style", fmt.Sprintf("margin-right:-%dpx", IndicatorWidth))
	}
	b.WriteString("><img")
	writeAttr(b, "src", ind.Placeholder)
	writeAttr(b, "width", strconv.Itoa(IndicatorWidth))
	writeAttr(b, "height", strconv.Itoa(IndicatorHeight))
	if ind.Arrow != "" {
		writeAttr(b, "style", fmt.Sprintf("background-image:url(%q)", ind.Arrow))
	}
	b.WriteString("/></div>")
}

func writeAttrs(b *strings.Builder, attrs []Attr) {
	for _, a := range attrs {
		writeAttr(b, a.Key, a.Val)
	}
}

func writeAttr(b *strings.Builder, key, val string) {
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(val))
	b.WriteString(`"`)
}

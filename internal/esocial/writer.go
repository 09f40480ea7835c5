// =============================================================================
// Payroll File Encoder - eSocial Element Writer
// =============================================================================
//
// A small recursive element model used by the event assemblers. Scalar
// values render as escaped text nodes, nested elements recurse, and slices
// repeat the tag once per entry. encoding/xml is deliberately not used for
// output: eSocial element ordering is significant and the receiving system
// rejects reordered children, so the document is written by hand in
// declaration order, the same approach the events are assembled with.
//
// ESCAPING:
//   The standard five entities (& < > " ') are escaped exactly once, at
//   render time. Values are stored raw in the tree; nothing pre-escapes.
//
// =============================================================================

package esocial

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Declaration is the XML prolog written before every event document.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

// =============================================================================
// ELEMENT MODEL
// =============================================================================

// Attr is a single XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the document tree. An element carries either Text
// or Children, never both.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []Element
}

// =============================================================================
// GENERIC ELEMENT BUILDER
// =============================================================================

// elem builds an element named name from an arbitrary value:
//   - string, int: text node
//   - bool: "S"/"N" text node
//   - decimal.Decimal: two-decimal text node
//   - time.Time: AAAA-MM-DD text node
//   - Element: single nested child
//   - []Element: the children in order
//
// The three event kinds still have hand-written assembly functions on top
// of this, because their nesting (demonstrative -> establishment -> rubric)
// repeats groups whose field order must be preserved.
func elem(name string, value interface{}) Element {
	switch v := value.(type) {
	case string:
		return Element{Name: name, Text: v}
	case int:
		return Element{Name: name, Text: fmt.Sprintf("%d", v)}
	case bool:
		return Element{Name: name, Text: yesNo(v)}
	case decimal.Decimal:
		return Element{Name: name, Text: v.StringFixed(2)}
	case time.Time:
		return Element{Name: name, Text: v.Format("2006-01-02")}
	case Element:
		return Element{Name: name, Children: []Element{v}}
	case []Element:
		return Element{Name: name, Children: v}
	default:
		panic(fmt.Sprintf("esocial: unsupported element value %T", value))
	}
}

// yesNo renders a closing flag the way the layout wants it.
func yesNo(v bool) string {
	if v {
		return "S"
	}
	return "N"
}

// =============================================================================
// RENDERING
// =============================================================================

// render writes the element tree as a compact document fragment.
func render(e Element) string {
	var b strings.Builder
	writeElement(&b, e)
	return b.String()
}

// writeElement writes one element and its subtree.
func writeElement(b *strings.Builder, e Element) {
	b.WriteString("<")
	b.WriteString(e.Name)
	for _, a := range e.Attrs {
		b.WriteString(fmt.Sprintf(" %s=\"%s\"", a.Name, escape(a.Value)))
	}
	b.WriteString(">")

	if len(e.Children) > 0 {
		for _, c := range e.Children {
			writeElement(b, c)
		}
	} else {
		b.WriteString(escape(e.Text))
	}

	b.WriteString("</")
	b.WriteString(e.Name)
	b.WriteString(">")
}

// escape applies standard five-entity XML escaping once per text node.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

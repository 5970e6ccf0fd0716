/*
Package html renders the tree structure of spatial maps as HTML.

Every node of the tree becomes a list item, labeled with the quadrant it has
been reached from and with its key and value. Children of internal nodes are
nested as unordered lists, in quadrant order NW, NE, SW, SE. Leaves are
rendered as items of class "leaf".
*/
package html

import (
	"fmt"
	"io"

	"github.com/npillmayer/spatialmap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes an HTML fragment for the tree of m to w.
func Render[T, U, V any](m *spatialmap.Map[T, U, V], w io.Writer) error {
	if m == nil || w == nil {
		return spatialmap.ErrIllegalArguments
	}
	b := &builder[T, U, V]{}
	m.Walk(b)
	if b.top == nil {
		return fmt.Errorf("html: no nodes rendered")
	}
	return html.Render(w, b.top)
}

// Node builds the HTML node tree for m without rendering it.
func Node[T, U, V any](m *spatialmap.Map[T, U, V]) *html.Node {
	b := &builder[T, U, V]{}
	m.Walk(b)
	return b.top
}

// builder is a spatialmap.Visitor assembling nested lists.
type builder[T, U, V any] struct {
	top   *html.Node   // outermost <ul>
	stack []*html.Node // open <ul> elements
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// item appends a new <li> to the innermost open list, opening the outermost
// list on first use.
func (b *builder[T, U, V]) item(class, from, label string) *html.Node {
	if b.top == nil {
		b.top = element(atom.Ul, "quadtree")
		b.stack = append(b.stack, b.top)
	}
	li := element(atom.Li, class)
	tag := element(atom.Span, "quadrant")
	tag.AppendChild(text(from))
	li.AppendChild(tag)
	li.AppendChild(text(" " + label))
	b.stack[len(b.stack)-1].AppendChild(li)
	return li
}

func (b *builder[T, U, V]) Enter(e spatialmap.Entry[T, U, V], from string, depth int) {
	li := b.item("node", from, fmt.Sprintf("%s → %v", e.Key, e.Value))
	ul := element(atom.Ul, "")
	li.AppendChild(ul)
	b.stack = append(b.stack, ul)
}

func (b *builder[T, U, V]) Leaf(from string, depth int) {
	b.item("leaf", from, "leaf")
}

func (b *builder[T, U, V]) Exit(e spatialmap.Entry[T, U, V], from string, depth int) {
	b.stack = b.stack[:len(b.stack)-1]
}

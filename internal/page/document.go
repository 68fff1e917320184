// Package page edits host html documents: fills display slots, toggles classes
// and wires in-page anchor navigation.
package page

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrElementNotFound is returned when document has no element with requested id.
var ErrElementNotFound = errors.New("element not found")

// Document is a parsed html page.
type Document struct {
	root *html.Node
}

// Parse reads html document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	return &Document{root: root}, nil
}

// SetInnerHTML replaces content of element with given id by parsed fragment.
func (d *Document) SetInnerHTML(id string, fragment string) error {
	el := d.elementByID(id)
	if el == nil {
		return fmt.Errorf("%w: #%s", ErrElementNotFound, id)
	}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), el)
	if err != nil {
		return fmt.Errorf("parsing fragment for #%s: %w", id, err)
	}

	for c := el.FirstChild; c != nil; c = el.FirstChild {
		el.RemoveChild(c)
	}
	for _, n := range nodes {
		el.AppendChild(n)
	}

	return nil
}

// AddClass adds class to element with given id. Adding existing class is a no-op.
func (d *Document) AddClass(id string, class string) error {
	el := d.elementByID(id)
	if el == nil {
		return fmt.Errorf("%w: #%s", ErrElementNotFound, id)
	}

	if hasClass(el, class) {
		return nil
	}
	classes := strings.Fields(getAttr(el, "class"))
	setAttr(el, "class", strings.Join(append(classes, class), " "))

	return nil
}

func hasClass(el *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(el, "class")) {
		if c == class {
			return true
		}
	}

	return false
}

// Render writes document html.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}

	return nil
}

func (d *Document) elementByID(id string) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && getAttr(n, "id") == id {
			found = n
			return false
		}
		return true
	})

	return found
}

func (d *Document) rootElement() *html.Node {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Html {
			return c
		}
	}

	return nil
}

// walk visits nodes depth first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}

	return true
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key string, val string) {
	for i, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

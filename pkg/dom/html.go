package dom

import (
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-umbra/umbra/pkg/errors"
)

// Parse reads an HTML document into a Document with upgrade support.
// Comments and doctype nodes are dropped; text is folded into the owning
// element's text content.
func Parse(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, &errors.UmbraError{Op: "dom.Parse", Kind: errors.KindParse, Err: err}
	}

	var htmlNode *html.Node
	for n := node.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && n.Data == "html" {
			htmlNode = n
			break
		}
	}

	d := &Document{upgradable: true}
	d.root = fromNode(d, htmlNode)
	for _, c := range d.root.children {
		switch c.tag {
		case "head":
			d.head = c
		case "body":
			d.body = c
		}
	}
	// html.Parse always synthesizes head and body, but guard anyway.
	if d.head == nil {
		d.head = newElement(d, "head")
		d.head.parent = d.root
		d.root.children = append([]*Element{d.head}, d.root.children...)
	}
	if d.body == nil {
		d.body = newElement(d, "body")
		d.body.parent = d.root
		d.root.children = append(d.root.children, d.body)
	}
	return d, nil
}

// ParseFragment parses an HTML fragment in body context and returns the
// resulting detached elements, owned by doc. Non-whitespace text appearing
// outside any element is wrapped in a span.
func ParseFragment(doc *Document, fragment string) ([]*Element, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, &errors.UmbraError{Op: "dom.ParseFragment", Kind: errors.KindParse, Err: err}
	}

	var out []*Element
	for _, n := range nodes {
		switch n.Type {
		case html.ElementNode:
			out = append(out, fromNode(doc, n))
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				span := newElement(doc, "span")
				span.text = text
				out = append(out, span)
			}
		}
	}
	return out, nil
}

// WriteHTML serializes the document. Shadow subtrees are not serialized.
func (d *Document) WriteHTML(w io.Writer) error {
	if err := html.Render(w, toNode(d.root)); err != nil {
		return &errors.UmbraError{Op: "dom.WriteHTML", Kind: errors.KindParse, Err: err}
	}
	return nil
}

// WriteHTML serializes the element and its light-DOM subtree.
func (e *Element) WriteHTML(w io.Writer) error {
	if err := html.Render(w, toNode(e)); err != nil {
		return &errors.UmbraError{Op: "dom.WriteHTML", Kind: errors.KindParse, Err: err}
	}
	return nil
}

func fromNode(doc *Document, n *html.Node) *Element {
	el := newElement(doc, n.Data)
	for _, a := range n.Attr {
		el.SetAttr(a.Key, a.Val)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			child := fromNode(doc, c)
			child.parent = el
			el.children = append(el.children, child)
		case html.TextNode:
			if text := strings.TrimSpace(c.Data); text != "" {
				if el.text != "" {
					el.text += " "
				}
				el.text += text
			}
		}
	}
	return el
}

func toNode(e *Element) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.tag,
		DataAtom: atom.Lookup([]byte(e.tag)),
	}

	keys := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.Attr = append(n.Attr, html.Attribute{Key: k, Val: e.attrs[k]})
	}

	if e.text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.text})
	}
	for _, c := range e.children {
		n.AppendChild(toNode(c))
	}
	return n
}

package markup

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes the tree as HTML. Output is deterministic: attributes are
// written in insertion order and fragments produce no markup of their own.
func Render(w io.Writer, n *Node) error {
	for _, hn := range toHTML(n) {
		if err := html.Render(w, hn); err != nil {
			return err
		}
	}
	return nil
}

// RenderString renders the tree to a string.
func RenderString(n *Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Document renders a complete HTML document with the doctype prepended.
func Document(w io.Writer, root *Node) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	for _, hn := range toHTML(root) {
		doc.AppendChild(hn)
	}
	return html.Render(w, doc)
}

func toHTML(n *Node) []*html.Node {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case TextNode:
		return []*html.Node{{Type: html.TextNode, Data: n.Text}}
	case FragmentNode:
		var out []*html.Node
		for _, child := range n.Children {
			out = append(out, toHTML(child)...)
		}
		return out
	default:
		el := &html.Node{
			Type:     html.ElementNode,
			Data:     n.Tag,
			DataAtom: atom.Lookup([]byte(n.Tag)),
			Attr:     make([]html.Attribute, 0, len(n.Attrs)),
		}
		for _, a := range n.Attrs {
			el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Value})
		}
		for _, child := range n.Children {
			for _, hc := range toHTML(child) {
				el.AppendChild(hc)
			}
		}
		return []*html.Node{el}
	}
}
